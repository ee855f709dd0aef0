// Package console runs a built form interactively in the terminal. Each
// field's widget is presented as a prompt; responses flow back into the
// form state through the same delegate synchronization the form uses
// everywhere else.
package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formbind/pkg/form"
	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/widget"
)

// Option customises the session configuration.
type Option func(*Session)

// WithDriver injects a custom prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(s *Session) {
		s.driver = driver
	}
}

// Session drives one interactive editing pass over a form.
type Session struct {
	driver PromptDriver
}

// NewSession constructs a session with the survey-backed driver by default.
func NewSession(options ...Option) *Session {
	s := &Session{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = newSurveyDriver()
	}
	return s
}

// Run prompts for every field in declaration order, committing each
// response to the model and re-prompting until the field validates.
func (s *Session) Run(ctx context.Context, f *form.Form) error {
	if ctx == nil {
		return errors.New("console: context is required")
	}
	if f == nil {
		return errors.New("console: form is required")
	}
	for _, field := range f.Fields() {
		if err := s.promptField(ctx, f, field); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptField(ctx context.Context, f *form.Form, field schema.Field) error {
	w, ok := f.Widget(field.Name)
	if !ok {
		return fmt.Errorf("console: no widget for field %q", field.Name)
	}

	// Seed the widget with the current model value before prompting.
	if _, err := f.UpdateViewValue(field.Name); err != nil {
		return err
	}

	label := field.DisplayLabel()
	for {
		if err := s.promptWidget(ctx, label, field, w); err != nil {
			return err
		}

		if _, err := f.UpdateModelValue(field.Name); err != nil {
			return err
		}

		result := f.State().Validate(field.Name)
		if result.Ok() {
			return nil
		}
		if err := s.driver.Info(ctx, fmt.Sprintf("Invalid %s: %s", field.Name, result.Message)); err != nil {
			return err
		}
	}
}

func (s *Session) promptWidget(ctx context.Context, label string, field schema.Field, w widget.Widget) error {
	switch edit := w.(type) {
	case *widget.CheckBox:
		response, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: edit.Checked(),
			Help:    field.Description,
		})
		if err != nil {
			return err
		}
		edit.SetChecked(response)
		return nil

	case *widget.ComboBox:
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      edit.Options(),
			DefaultIndex: edit.CurrentIndex(),
			Help:         field.Description,
		})
		if err != nil {
			return err
		}
		edit.SetCurrentIndex(idx)
		return nil
	}

	if edit, ok := w.(widget.TypedValueWidget); ok {
		response, err := s.driver.Input(ctx, InputConfig{
			Message: label,
			Default: edit.ValueText(),
			Help:    field.Description,
		})
		if err != nil {
			return err
		}
		edit.SetValueText(response)
		return nil
	}

	return fmt.Errorf("console: no prompt for widget kind %q", w.Kind())
}
