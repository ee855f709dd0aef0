package formstate

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/validation"
)

// State tracks the current value, validator and validation outcome for each
// field of one form instance, keyed by field name. It is intentionally
// small; widget creation and synchronization live with the field delegates.
//
// A State belongs to exactly one form instance and is not safe for
// concurrent use; the owning form builder serializes access.
type State struct {
	values     map[string]any
	validators map[string]validation.Validator
	results    map[string]validation.Result
}

// New returns an empty state.
func New() *State {
	return NewWithValues(nil)
}

// NewWithValues seeds the state with prefilled values. The map is copied so
// later mutations of the argument do not leak in.
func NewWithValues(values map[string]any) *State {
	seeded := make(map[string]any, len(values))
	for name, value := range values {
		seeded[name] = value
	}
	return &State{
		values:     seeded,
		validators: make(map[string]validation.Validator),
		results:    make(map[string]validation.Result),
	}
}

// Value returns the current value for a field.
func (s *State) Value(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s.values[name]
	return value, ok
}

// SetValue stores the current value for a field.
func (s *State) SetValue(name string, value any) {
	if s == nil {
		return
	}
	s.values[name] = value
}

// ValueText renders a field's value as its canonical string form. Absent
// fields render as the empty string; string values pass through verbatim.
func (s *State) ValueText(name string) string {
	value, ok := s.Value(name)
	if !ok || value == nil {
		return ""
	}
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprint(value)
}

// Values returns the current value map (mutable).
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// Validator returns the validator stored for a field, nil when none.
func (s *State) Validator(name string) validation.Validator {
	if s == nil {
		return nil
	}
	return s.validators[name]
}

// SetValidator stores a shared validator against the field name. A nil
// validator clears the entry.
func (s *State) SetValidator(name string, v validation.Validator) {
	if s == nil {
		return
	}
	if v == nil {
		delete(s.validators, name)
		return
	}
	s.validators[name] = v
}

// Validate runs the field's validator against its canonical text value and
// records the result. Fields without a validator are always valid.
func (s *State) Validate(name string) validation.Result {
	if s == nil {
		return validation.Result{State: validation.Valid}
	}
	v := s.validators[name]
	if v == nil {
		result := validation.Result{State: validation.Valid}
		s.results[name] = result
		return result
	}
	result := v.Validate(s.ValueText(name))
	s.results[name] = result
	return result
}

// ValidateAll validates every field with a stored validator and reports
// whether all passed.
func (s *State) ValidateAll() bool {
	if s == nil {
		return true
	}
	ok := true
	for name := range s.validators {
		if !s.Validate(name).Ok() {
			ok = false
		}
	}
	return ok
}

// Result returns the last recorded validation outcome for a field.
func (s *State) Result(name string) (validation.Result, bool) {
	if s == nil {
		return validation.Result{}, false
	}
	result, ok := s.results[name]
	return result, ok
}
