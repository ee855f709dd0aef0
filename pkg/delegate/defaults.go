package delegate

import (
	"github.com/goliatone/go-formbind/pkg/formstate"
	"github.com/goliatone/go-formbind/pkg/validation"
	"github.com/goliatone/go-formbind/pkg/widget"
)

// TypedDefaults supplies the default behavior for delegates whose widget
// carries the canonical text accessor: the typed pair copies text verbatim
// between state and widget, the generic pair opts out, and no validator is
// created. Concrete delegates embed this and override what they need.
type TypedDefaults struct{}

func (TypedDefaults) CreateValidator() validation.Validator { return nil }

func (TypedDefaults) UpdateModelValue(state *formstate.State, field string, edit widget.TypedValueWidget) SyncResult {
	if state == nil || edit == nil {
		return SyncNotHandled
	}
	state.SetValue(field, edit.ValueText())
	return SyncHandled
}

func (TypedDefaults) UpdateModelValueGeneric(state *formstate.State, field string, edit widget.Widget) SyncResult {
	return SyncNotHandled
}

func (TypedDefaults) UpdateViewValue(state *formstate.State, field string, edit widget.TypedValueWidget) SyncResult {
	if state == nil || edit == nil {
		return SyncNotHandled
	}
	edit.SetValueText(state.ValueText(field))
	return SyncHandled
}

func (TypedDefaults) UpdateViewValueGeneric(state *formstate.State, field string, edit widget.Widget) SyncResult {
	return SyncNotHandled
}

// GenericDefaults supplies the defaults for delegates whose widget has no
// canonical text accessor. Every path opts out, the typed pair included, so
// the typed path stays an observable no-op on delegates that only implement
// generic synchronization.
type GenericDefaults struct{}

func (GenericDefaults) CreateValidator() validation.Validator { return nil }

func (GenericDefaults) UpdateModelValue(state *formstate.State, field string, edit widget.TypedValueWidget) SyncResult {
	return SyncNotHandled
}

func (GenericDefaults) UpdateModelValueGeneric(state *formstate.State, field string, edit widget.Widget) SyncResult {
	return SyncNotHandled
}

func (GenericDefaults) UpdateViewValue(state *formstate.State, field string, edit widget.TypedValueWidget) SyncResult {
	return SyncNotHandled
}

func (GenericDefaults) UpdateViewValueGeneric(state *formstate.State, field string, edit widget.Widget) SyncResult {
	return SyncNotHandled
}
