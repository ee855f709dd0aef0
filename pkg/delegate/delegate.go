package delegate

import (
	"github.com/goliatone/go-formbind/pkg/formstate"
	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/validation"
	"github.com/goliatone/go-formbind/pkg/widget"
)

// SyncResult reports whether a synchronization path performed an update.
// SyncNotHandled is a deliberate opt-out meaning "this field does not
// participate through this path", never a failure.
type SyncResult int

const (
	SyncNotHandled SyncResult = iota
	SyncHandled
)

// Handled reports whether the path performed the update.
func (r SyncResult) Handled() bool {
	return r == SyncHandled
}

// FieldDelegate is the per-field strategy that creates the default widget,
// optionally creates a validator, and moves the field's value between the
// form state and the widget in both directions.
//
// Each direction has two paths. The typed path serves widgets exposing the
// canonical text accessor; its default copies text verbatim. The generic
// path serves widgets without that accessor; its default opts out with
// SyncNotHandled. A concrete delegate overrides either the typed pair or
// the generic pair, never both: the caller selects the path from the static
// capability of the widget it holds, so a delegate producing a generic
// widget must override the generic pair or its field is silently never
// synchronized. Embed TypedDefaults or GenericDefaults accordingly.
type FieldDelegate interface {
	// CreateFormWidget returns a newly constructed widget suitable for
	// editing the bound field. It must not consult the form state; the
	// caller populates the widget afterward through UpdateViewValue.
	CreateFormWidget() (widget.Widget, error)

	// CreateValidator returns the validator matching the field's declared
	// constraints, or nil when the field needs no validation beyond what
	// the widget enforces.
	CreateValidator() validation.Validator

	// UpdateModelValue reads the widget's canonical text into the form
	// state (typed path).
	UpdateModelValue(state *formstate.State, field string, edit widget.TypedValueWidget) SyncResult

	// UpdateModelValueGeneric reads bespoke widget content into the form
	// state (generic path).
	UpdateModelValueGeneric(state *formstate.State, field string, edit widget.Widget) SyncResult

	// UpdateViewValue renders the form state's value into the widget's
	// canonical text (typed path).
	UpdateViewValue(state *formstate.State, field string, edit widget.TypedValueWidget) SyncResult

	// UpdateViewValueGeneric renders the form state's value into bespoke
	// widget content (generic path).
	UpdateViewValueGeneric(state *formstate.State, field string, edit widget.Widget) SyncResult
}

// Factory builds a FieldDelegate bound to the supplied field descriptor.
// The registry resolves a factory per field; the form builder invokes it
// exactly once at construction time.
type Factory func(field schema.Field) FieldDelegate
