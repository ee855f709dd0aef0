package delegate

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-formbind/pkg/schema"
)

// Registry maps field descriptors to delegate factories. Resolution order:
// a per-field override registered for the field's name, then a type-level
// override registered for the field's declared type, then the built-in for
// that type. Lookup never falls back partially; a type with neither
// built-in nor override resolves to ErrNoDelegate.
type Registry struct {
	mu       sync.RWMutex
	builtins map[schema.FieldType]Factory
	types    map[schema.FieldType]Factory
	fields   map[string]Factory
}

// NewRegistry constructs a registry with the built-in delegates registered
// for every supported declared type.
func NewRegistry() *Registry {
	reg := &Registry{
		builtins: make(map[schema.FieldType]Factory),
		types:    make(map[schema.FieldType]Factory),
		fields:   make(map[string]Factory),
	}
	reg.registerBuiltins()
	return reg
}

// RegisterField installs a per-field override. It wins over type-level
// overrides and built-ins for that field name only.
func (r *Registry) RegisterField(name string, factory Factory) error {
	if r == nil {
		return fmt.Errorf("delegate: registry is nil")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("delegate: field name is required")
	}
	if factory == nil {
		return fmt.Errorf("delegate: factory is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields[trimmed] = factory
	return nil
}

// RegisterType installs an override for every field of the declared type
// that has no per-field override.
func (r *Registry) RegisterType(fieldType schema.FieldType, factory Factory) error {
	if r == nil {
		return fmt.Errorf("delegate: registry is nil")
	}
	if fieldType == "" {
		return fmt.Errorf("delegate: field type is required")
	}
	if factory == nil {
		return fmt.Errorf("delegate: factory is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[fieldType] = factory
	return nil
}

// Resolve returns the delegate for a field descriptor, constructed from the
// highest-priority factory available. A missing mapping is a configuration
// error wrapping ErrNoDelegate.
func (r *Registry) Resolve(field schema.Field) (FieldDelegate, error) {
	if r == nil {
		return nil, fmt.Errorf("delegate: registry is nil")
	}

	r.mu.RLock()
	factory, ok := r.fields[strings.TrimSpace(field.Name)]
	if !ok {
		factory, ok = r.types[field.Type]
	}
	if !ok {
		factory, ok = r.builtins[field.Type]
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("field %q (type %q): %w", field.Name, field.Type, ErrNoDelegate)
	}
	return factory(field), nil
}

// Supports reports whether the declared type resolves without overrides.
func (r *Registry) Supports(fieldType schema.FieldType) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.types[fieldType]; ok {
		return true
	}
	_, ok := r.builtins[fieldType]
	return ok
}

func (r *Registry) registerBuiltins() {
	r.builtins[schema.FieldTypeString] = NewTextDelegate
	r.builtins[schema.FieldTypeText] = NewTextAreaDelegate
	r.builtins[schema.FieldTypeInteger] = NewIntegerDelegate
	r.builtins[schema.FieldTypeNumber] = NewNumberDelegate
	r.builtins[schema.FieldTypeBoolean] = NewBooleanDelegate
	r.builtins[schema.FieldTypeDate] = NewDateDelegate(DateLayout)
	r.builtins[schema.FieldTypeTime] = NewDateDelegate(TimeLayout)
	r.builtins[schema.FieldTypeDateTime] = NewDateDelegate(DateTimeLayout)
	r.builtins[schema.FieldTypeEnum] = NewEnumDelegate
}
