package widget

import (
	"strconv"
	"time"
)

// LineEdit is a single-line text input.
type LineEdit struct {
	Placeholder string
	MaxLength   int

	text string
}

// NewLineEdit constructs an empty line edit with the given placeholder.
func NewLineEdit(placeholder string) *LineEdit {
	return &LineEdit{Placeholder: placeholder}
}

func (w *LineEdit) Kind() string { return KindLineEdit }

func (w *LineEdit) ValueText() string { return w.text }

func (w *LineEdit) SetValueText(text string) {
	if w.MaxLength > 0 && len(text) > w.MaxLength {
		text = text[:w.MaxLength]
	}
	w.text = text
}

// TextArea is a multi-line text input.
type TextArea struct {
	Placeholder string
	Rows        int

	text string
}

// NewTextArea constructs an empty text area.
func NewTextArea(placeholder string) *TextArea {
	return &TextArea{Placeholder: placeholder, Rows: 4}
}

func (w *TextArea) Kind() string { return KindTextArea }

func (w *TextArea) ValueText() string { return w.text }

func (w *TextArea) SetValueText(text string) { w.text = text }

// SpinBox is an integer input. Its canonical text is the decimal rendering
// of the entered value; non-numeric text is kept as typed so validators can
// reject it.
type SpinBox struct {
	text string
}

// NewSpinBox constructs an empty spin box.
func NewSpinBox() *SpinBox {
	return &SpinBox{}
}

func (w *SpinBox) Kind() string { return KindSpinBox }

func (w *SpinBox) ValueText() string { return w.text }

func (w *SpinBox) SetValueText(text string) { w.text = text }

// Value parses the displayed text as an integer.
func (w *SpinBox) Value() (int64, error) {
	return strconv.ParseInt(w.text, 10, 64)
}

// DoubleSpinBox is a floating-point input.
type DoubleSpinBox struct {
	text string
}

// NewDoubleSpinBox constructs an empty double spin box.
func NewDoubleSpinBox() *DoubleSpinBox {
	return &DoubleSpinBox{}
}

func (w *DoubleSpinBox) Kind() string { return KindDoubleSpinBox }

func (w *DoubleSpinBox) ValueText() string { return w.text }

func (w *DoubleSpinBox) SetValueText(text string) { w.text = text }

// Value parses the displayed text as a float.
func (w *DoubleSpinBox) Value() (float64, error) {
	return strconv.ParseFloat(w.text, 64)
}

// DateEdit is a date, time or timestamp input parameterized by a time
// layout. The canonical text is the formatted value.
type DateEdit struct {
	Layout string

	text string
}

// NewDateEdit constructs a date edit using the supplied layout.
func NewDateEdit(layout string) *DateEdit {
	return &DateEdit{Layout: layout}
}

func (w *DateEdit) Kind() string { return KindDateEdit }

func (w *DateEdit) ValueText() string { return w.text }

func (w *DateEdit) SetValueText(text string) { w.text = text }

// Date parses the displayed text with the widget's layout.
func (w *DateEdit) Date() (time.Time, error) {
	return time.Parse(w.Layout, w.text)
}

// SetDate formats a time value into the widget.
func (w *DateEdit) SetDate(t time.Time) {
	w.text = t.Format(w.Layout)
}

// ComboBox is a single-choice selection over a fixed option list. Its
// canonical text is the currently selected option, empty when none is
// selected.
type ComboBox struct {
	options []string
	current int
}

// NewComboBox constructs a combo box with no current selection.
func NewComboBox(options []string) *ComboBox {
	return &ComboBox{
		options: append([]string(nil), options...),
		current: -1,
	}
}

func (w *ComboBox) Kind() string { return KindComboBox }

// Options returns a copy of the option list.
func (w *ComboBox) Options() []string {
	return append([]string(nil), w.options...)
}

// CurrentIndex returns the selected option index, -1 when none.
func (w *ComboBox) CurrentIndex() int { return w.current }

// SetCurrentIndex selects an option by index; out-of-range clears the
// selection.
func (w *ComboBox) SetCurrentIndex(idx int) {
	if idx < 0 || idx >= len(w.options) {
		w.current = -1
		return
	}
	w.current = idx
}

func (w *ComboBox) ValueText() string {
	if w.current < 0 || w.current >= len(w.options) {
		return ""
	}
	return w.options[w.current]
}

// SetValueText selects the option matching the text; unknown text clears
// the selection.
func (w *ComboBox) SetValueText(text string) {
	for idx, option := range w.options {
		if option == text {
			w.current = idx
			return
		}
	}
	w.current = -1
}

// CheckBox is a boolean toggle. It deliberately exposes no canonical text
// accessor; its delegate synchronizes the checked state through the generic
// path.
type CheckBox struct {
	Label string

	checked bool
}

// NewCheckBox constructs an unchecked checkbox.
func NewCheckBox(label string) *CheckBox {
	return &CheckBox{Label: label}
}

func (w *CheckBox) Kind() string { return KindCheckBox }

// Checked reports the toggle state.
func (w *CheckBox) Checked() bool { return w.checked }

// SetChecked updates the toggle state.
func (w *CheckBox) SetChecked(checked bool) { w.checked = checked }

var (
	_ TypedValueWidget = (*LineEdit)(nil)
	_ TypedValueWidget = (*TextArea)(nil)
	_ TypedValueWidget = (*SpinBox)(nil)
	_ TypedValueWidget = (*DoubleSpinBox)(nil)
	_ TypedValueWidget = (*DateEdit)(nil)
	_ TypedValueWidget = (*ComboBox)(nil)
	_ Widget           = (*CheckBox)(nil)
)
