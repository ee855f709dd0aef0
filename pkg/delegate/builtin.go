package delegate

import (
	"strconv"

	"github.com/goliatone/go-formbind/pkg/formstate"
	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/validation"
	"github.com/goliatone/go-formbind/pkg/widget"
)

// Layouts used by the built-in date/time delegates.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// NewTextDelegate serves short text fields with a line edit. Validation is
// created only when the field declares constraints.
func NewTextDelegate(field schema.Field) FieldDelegate {
	return &textDelegate{field: field}
}

type textDelegate struct {
	TypedDefaults
	field schema.Field
}

func (d *textDelegate) CreateFormWidget() (widget.Widget, error) {
	edit := widget.NewLineEdit(d.field.Placeholder)
	if max, ok := maxLength(d.field); ok {
		edit.MaxLength = max
	}
	return edit, nil
}

func (d *textDelegate) CreateValidator() validation.Validator {
	return validation.Rules(d.field.Required, d.field.Validations)
}

// NewTextAreaDelegate serves long text fields with a multi-line input.
func NewTextAreaDelegate(field schema.Field) FieldDelegate {
	return &textAreaDelegate{field: field}
}

type textAreaDelegate struct {
	TypedDefaults
	field schema.Field
}

func (d *textAreaDelegate) CreateFormWidget() (widget.Widget, error) {
	return widget.NewTextArea(d.field.Placeholder), nil
}

func (d *textAreaDelegate) CreateValidator() validation.Validator {
	return validation.Rules(d.field.Required, d.field.Validations)
}

// NewIntegerDelegate serves integer fields with a spin box. Numeric fields
// always validate parseability.
func NewIntegerDelegate(field schema.Field) FieldDelegate {
	return &numericDelegate{field: field, integer: true}
}

// NewNumberDelegate serves floating-point fields with a double spin box.
func NewNumberDelegate(field schema.Field) FieldDelegate {
	return &numericDelegate{field: field}
}

type numericDelegate struct {
	TypedDefaults
	field   schema.Field
	integer bool
}

func (d *numericDelegate) CreateFormWidget() (widget.Widget, error) {
	if d.integer {
		return widget.NewSpinBox(), nil
	}
	return widget.NewDoubleSpinBox(), nil
}

func (d *numericDelegate) CreateValidator() validation.Validator {
	return validation.NumericRules(d.field.Required, d.integer, d.field.Validations)
}

// NewDateDelegate serves date, time and timestamp fields with a date edit
// bound to the supplied layout.
func NewDateDelegate(layout string) Factory {
	return func(field schema.Field) FieldDelegate {
		return &dateDelegate{field: field, layout: layout}
	}
}

type dateDelegate struct {
	TypedDefaults
	field  schema.Field
	layout string
}

func (d *dateDelegate) CreateFormWidget() (widget.Widget, error) {
	return widget.NewDateEdit(d.layout), nil
}

func (d *dateDelegate) CreateValidator() validation.Validator {
	return validation.DateLayout(d.field.Required, d.layout)
}

// NewEnumDelegate serves enumerated fields with a combo box over the
// declared options. The combo box carries the canonical text accessor, so
// the default typed synchronization applies unchanged.
func NewEnumDelegate(field schema.Field) FieldDelegate {
	return &enumDelegate{field: field}
}

type enumDelegate struct {
	TypedDefaults
	field schema.Field
}

func (d *enumDelegate) CreateFormWidget() (widget.Widget, error) {
	return widget.NewComboBox(d.field.EnumOptions()), nil
}

func (d *enumDelegate) CreateValidator() validation.Validator {
	return validation.Rules(d.field.Required, nil)
}

// NewBooleanDelegate serves boolean fields with a checkbox. The checkbox
// has no canonical text accessor, so only the generic pair is implemented;
// the typed pair stays the no-op inherited from GenericDefaults.
func NewBooleanDelegate(field schema.Field) FieldDelegate {
	return &booleanDelegate{field: field}
}

type booleanDelegate struct {
	GenericDefaults
	field schema.Field
}

func (d *booleanDelegate) CreateFormWidget() (widget.Widget, error) {
	return widget.NewCheckBox(d.field.DisplayLabel()), nil
}

func (d *booleanDelegate) UpdateModelValueGeneric(state *formstate.State, field string, edit widget.Widget) SyncResult {
	box, ok := edit.(*widget.CheckBox)
	if !ok || state == nil {
		return SyncNotHandled
	}
	state.SetValue(field, box.Checked())
	return SyncHandled
}

func (d *booleanDelegate) UpdateViewValueGeneric(state *formstate.State, field string, edit widget.Widget) SyncResult {
	box, ok := edit.(*widget.CheckBox)
	if !ok || state == nil {
		return SyncNotHandled
	}
	value, _ := state.Value(field)
	box.SetChecked(asBool(value))
	return SyncHandled
}

func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(v)
		return err == nil && parsed
	default:
		return false
	}
}

func maxLength(field schema.Field) (int, bool) {
	for _, rule := range field.Validations {
		if rule.Kind != schema.RuleMaxLength {
			continue
		}
		if val, err := strconv.Atoi(rule.Params["value"]); err == nil && val > 0 {
			return val, true
		}
	}
	return 0, false
}
