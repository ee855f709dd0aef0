package form

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/delegate"
	"github.com/goliatone/go-formbind/pkg/formstate"
	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/widget"
)

type binding struct {
	field    schema.Field
	delegate delegate.FieldDelegate
	widget   widget.Widget
}

// Form holds the per-field delegates, widgets and state of one built form
// instance. It owns its delegates for its lifetime; widgets are handed to
// the caller for display and referenced here only to drive synchronization.
// A Form is not safe for concurrent use.
type Form struct {
	state    *formstate.State
	bindings map[string]*binding
	order    []string
}

// State returns the form's value and validation store.
func (f *Form) State() *formstate.State {
	if f == nil {
		return nil
	}
	return f.state
}

// Fields returns the field descriptors in declaration order.
func (f *Form) Fields() []schema.Field {
	if f == nil {
		return nil
	}
	out := make([]schema.Field, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.bindings[name].field)
	}
	return out
}

// Widget returns the widget bound to a field.
func (f *Form) Widget(name string) (widget.Widget, bool) {
	if f == nil {
		return nil, false
	}
	b, ok := f.bindings[name]
	if !ok {
		return nil, false
	}
	return b.widget, true
}

// UpdateViewValue renders the current model value of one field into its
// widget. The typed path runs when the widget carries the canonical text
// accessor; otherwise the generic path runs. A SyncNotHandled result means
// the field opted out of this path and is not an error.
func (f *Form) UpdateViewValue(name string) (delegate.SyncResult, error) {
	b, err := f.binding(name)
	if err != nil {
		return delegate.SyncNotHandled, err
	}
	if typed, ok := b.widget.(widget.TypedValueWidget); ok {
		return b.delegate.UpdateViewValue(f.state, name, typed), nil
	}
	return b.delegate.UpdateViewValueGeneric(f.state, name, b.widget), nil
}

// UpdateModelValue reads one field's widget content back into the model,
// using the same path selection as UpdateViewValue.
func (f *Form) UpdateModelValue(name string) (delegate.SyncResult, error) {
	b, err := f.binding(name)
	if err != nil {
		return delegate.SyncNotHandled, err
	}
	if typed, ok := b.widget.(widget.TypedValueWidget); ok {
		return b.delegate.UpdateModelValue(f.state, name, typed), nil
	}
	return b.delegate.UpdateModelValueGeneric(f.state, name, b.widget), nil
}

// UpdateView refreshes every widget from the model, e.g. after the initial
// build or a programmatic reset.
func (f *Form) UpdateView() {
	if f == nil {
		return
	}
	for _, name := range f.order {
		_, _ = f.UpdateViewValue(name)
	}
}

// UpdateModel reads every widget back into the model, e.g. on submit.
func (f *Form) UpdateModel() {
	if f == nil {
		return
	}
	for _, name := range f.order {
		_, _ = f.UpdateModelValue(name)
	}
}

// Validate runs every stored validator and reports whether all fields pass.
// Per-field outcomes remain available through State().Result.
func (f *Form) Validate() bool {
	if f == nil {
		return true
	}
	return f.state.ValidateAll()
}

func (f *Form) binding(name string) (*binding, error) {
	if f == nil {
		return nil, fmt.Errorf("form: form is nil")
	}
	b, ok := f.bindings[name]
	if !ok {
		return nil, fmt.Errorf("form: unknown field %q", name)
	}
	return b, nil
}
