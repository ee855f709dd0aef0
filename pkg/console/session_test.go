package console

import (
	"context"
	"testing"

	"github.com/goliatone/go-formbind/pkg/form"
	"github.com/goliatone/go-formbind/pkg/schema"
)

type fakeDriver struct {
	inputs   []string
	confirms []bool
	selects  []int
	infos    []string
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return cfg.Default, nil
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return cfg.Default, nil
	}
	next := d.confirms[0]
	d.confirms = d.confirms[1:]
	return next, nil
}

func (d *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return cfg.DefaultIndex, nil
	}
	next := d.selects[0]
	d.selects = d.selects[1:]
	return next, nil
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func buildForm(t *testing.T, fields []schema.Field, options ...form.Option) *form.Form {
	t.Helper()
	f, err := form.NewBuilder(options...).Build(fields)
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	return f
}

func TestSession_CollectsValues(t *testing.T) {
	f := buildForm(t, []schema.Field{
		{Name: "title", Type: schema.FieldTypeString, Required: true},
		{Name: "isActive", Type: schema.FieldTypeBoolean},
		{Name: "status", Type: schema.FieldTypeEnum, Enum: []any{"draft", "live"}},
	})

	driver := &fakeDriver{
		inputs:   []string{"Hello"},
		confirms: []bool{true},
		selects:  []int{1},
	}
	session := NewSession(WithDriver(driver))

	if err := session.Run(context.Background(), f); err != nil {
		t.Fatalf("run: %v", err)
	}

	state := f.State()
	if got := state.ValueText("title"); got != "Hello" {
		t.Fatalf("title = %q, want %q", got, "Hello")
	}
	if value, _ := state.Value("isActive"); value != true {
		t.Fatalf("isActive = %v, want true", value)
	}
	if got := state.ValueText("status"); got != "live" {
		t.Fatalf("status = %q, want %q", got, "live")
	}
}

func TestSession_RepromptsUntilValid(t *testing.T) {
	f := buildForm(t, []schema.Field{
		{Name: "rating", Type: schema.FieldTypeInteger},
	})

	driver := &fakeDriver{inputs: []string{"abc", "4"}}
	session := NewSession(WithDriver(driver))

	if err := session.Run(context.Background(), f); err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := f.State().ValueText("rating"); got != "4" {
		t.Fatalf("rating = %q, want %q", got, "4")
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected one invalid-input message, got %v", driver.infos)
	}
}

func TestSession_SeedsPromptDefaultsFromState(t *testing.T) {
	f := buildForm(t, []schema.Field{
		{Name: "title", Type: schema.FieldTypeString},
	}, form.WithValues(map[string]any{"title": "Seeded"}))

	// No scripted input: the fake driver echoes the prompt default, which
	// must come from the seeded model value.
	driver := &fakeDriver{}
	session := NewSession(WithDriver(driver))

	if err := session.Run(context.Background(), f); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := f.State().ValueText("title"); got != "Seeded" {
		t.Fatalf("title = %q, want %q", got, "Seeded")
	}
}

func TestSession_RequiresContextAndForm(t *testing.T) {
	session := NewSession(WithDriver(&fakeDriver{}))
	var missing context.Context
	if err := session.Run(missing, nil); err == nil {
		t.Fatalf("nil context should error")
	}
	if err := session.Run(context.Background(), nil); err == nil {
		t.Fatalf("nil form should error")
	}
}
