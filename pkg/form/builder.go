package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formbind/pkg/delegate"
	"github.com/goliatone/go-formbind/pkg/formstate"
	"github.com/goliatone/go-formbind/pkg/schema"
)

// Option customises the builder configuration.
type Option func(*Builder)

// WithRegistry injects a delegate registry. Field and type overrides passed
// through other options are registered into it.
func WithRegistry(registry *delegate.Registry) Option {
	return func(b *Builder) {
		b.registry = registry
	}
}

// WithFieldDelegate overrides the delegate for one field name, bypassing
// type dispatch entirely for that field.
func WithFieldDelegate(name string, factory delegate.Factory) Option {
	return func(b *Builder) {
		b.fieldOverrides = append(b.fieldOverrides, fieldOverride{name: name, factory: factory})
	}
}

// WithTypeDelegate overrides the delegate for every field of a declared
// type that has no per-field override.
func WithTypeDelegate(fieldType schema.FieldType, factory delegate.Factory) Option {
	return func(b *Builder) {
		b.typeOverrides = append(b.typeOverrides, typeOverride{fieldType: fieldType, factory: factory})
	}
}

// WithValues seeds the form state with initial values. Widgets pick them up
// on the first view refresh.
func WithValues(values map[string]any) Option {
	return func(b *Builder) {
		b.values = values
	}
}

type fieldOverride struct {
	name    string
	factory delegate.Factory
}

type typeOverride struct {
	fieldType schema.FieldType
	factory   delegate.Factory
}

// Builder constructs Form instances from field descriptors. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
type Builder struct {
	registry        *delegate.Registry
	fieldOverrides  []fieldOverride
	typeOverrides   []typeOverride
	values          map[string]any
	initialiseErr   error
	defaultsApplied bool
}

// NewBuilder constructs a Builder applying any provided options.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.applyDefaults()
	return b
}

// Build resolves a delegate for every field exactly once, creates its
// widget and validator, and wires them into a new Form. Any unresolvable
// field aborts construction: a partially built form is never returned.
func (b *Builder) Build(fields []schema.Field) (*Form, error) {
	if !b.defaultsApplied {
		b.applyDefaults()
	}
	if err := b.initialiseErr; err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.New("form: at least one field is required")
	}

	f := &Form{
		state:    formstate.NewWithValues(b.values),
		bindings: make(map[string]*binding, len(fields)),
	}

	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, errors.New("form: field name is required")
		}
		if _, exists := f.bindings[name]; exists {
			return nil, fmt.Errorf("form: duplicate field %q", name)
		}

		d, err := b.registry.Resolve(field)
		if err != nil {
			return nil, fmt.Errorf("form: %w", err)
		}

		w, err := d.CreateFormWidget()
		if err != nil {
			return nil, fmt.Errorf("form: create widget for %q: %w", name, err)
		}
		if w == nil {
			return nil, fmt.Errorf("form: delegate for %q produced no widget", name)
		}

		if v := d.CreateValidator(); v != nil {
			f.state.SetValidator(name, v)
		}

		f.bindings[name] = &binding{field: field, delegate: d, widget: w}
		f.order = append(f.order, name)
	}

	return f, nil
}

func (b *Builder) applyDefaults() {
	if b.defaultsApplied {
		return
	}

	if b.registry == nil {
		b.registry = delegate.NewRegistry()
	}
	for _, override := range b.typeOverrides {
		if err := b.registry.RegisterType(override.fieldType, override.factory); err != nil {
			b.initialiseErr = fmt.Errorf("form: register type delegate: %w", err)
			break
		}
	}
	for _, override := range b.fieldOverrides {
		if b.initialiseErr != nil {
			break
		}
		if err := b.registry.RegisterField(override.name, override.factory); err != nil {
			b.initialiseErr = fmt.Errorf("form: register field delegate: %w", err)
			break
		}
	}

	b.defaultsApplied = true
}
