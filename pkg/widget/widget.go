package widget

// Kind identifiers for the built-in widgets.
const (
	KindLineEdit      = "line-edit"
	KindTextArea      = "text-area"
	KindSpinBox       = "spin-box"
	KindDoubleSpinBox = "double-spin-box"
	KindDateEdit      = "date-edit"
	KindComboBox      = "combo-box"
	KindCheckBox      = "checkbox"
)

// Widget is an interactive UI element bound to one field for editing or
// display. Ownership transfers to the caller of the factory that produced
// it; delegates only see widgets transiently during synchronization calls.
type Widget interface {
	Kind() string
}

// TypedValueWidget is a widget exposing a canonical text accessor. The
// default synchronization path copies this text verbatim to and from the
// form state without knowing the concrete widget type. Widgets that cannot
// express their content as a single string (a checkbox, for instance) stay
// at the plain Widget tier and are synchronized through the generic path.
type TypedValueWidget interface {
	Widget
	ValueText() string
	SetValueText(text string)
}
