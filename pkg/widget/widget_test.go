package widget

import "testing"

func TestLineEdit_MaxLengthTruncates(t *testing.T) {
	edit := NewLineEdit("")
	edit.MaxLength = 5
	edit.SetValueText("hello world")
	if got := edit.ValueText(); got != "hello" {
		t.Fatalf("text = %q, want %q", got, "hello")
	}
}

func TestComboBox_Selection(t *testing.T) {
	combo := NewComboBox([]string{"draft", "live", "archived"})

	if combo.CurrentIndex() != -1 || combo.ValueText() != "" {
		t.Fatalf("new combo box should have no selection")
	}

	combo.SetValueText("live")
	if combo.CurrentIndex() != 1 || combo.ValueText() != "live" {
		t.Fatalf("selection = %d/%q, want 1/live", combo.CurrentIndex(), combo.ValueText())
	}

	combo.SetValueText("unknown")
	if combo.CurrentIndex() != -1 || combo.ValueText() != "" {
		t.Fatalf("unknown text should clear the selection")
	}

	combo.SetCurrentIndex(99)
	if combo.CurrentIndex() != -1 {
		t.Fatalf("out-of-range index should clear the selection")
	}
}

func TestDateEdit_ParsesWithLayout(t *testing.T) {
	edit := NewDateEdit("2006-01-02")
	edit.SetValueText("2026-08-23")

	parsed, err := edit.Date()
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if parsed.Year() != 2026 || int(parsed.Month()) != 8 || parsed.Day() != 23 {
		t.Fatalf("parsed = %v", parsed)
	}

	edit.SetDate(parsed.AddDate(0, 0, 1))
	if got := edit.ValueText(); got != "2026-08-24" {
		t.Fatalf("text = %q, want %q", got, "2026-08-24")
	}
}

func TestCheckBox_IsNotTypedValueWidget(t *testing.T) {
	var w Widget = NewCheckBox("Active")
	if _, ok := w.(TypedValueWidget); ok {
		t.Fatalf("checkbox must not expose the canonical text accessor")
	}
}

func TestSpinBox_Value(t *testing.T) {
	spin := NewSpinBox()
	spin.SetValueText("42")
	value, err := spin.Value()
	if err != nil || value != 42 {
		t.Fatalf("value = %d err = %v", value, err)
	}

	spin.SetValueText("nope")
	if _, err := spin.Value(); err == nil {
		t.Fatalf("non-numeric text should fail to parse")
	}
}
