// Package openapi derives field descriptors from OpenAPI 3 component
// schemas so persisted-entity definitions already described for an API can
// drive form construction without a second schema format.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbind/pkg/schema"
)

// Fields extracts field descriptors from the named component schema of an
// OpenAPI document (JSON or YAML payload). The component must be an object
// schema; its properties become fields in name order.
func Fields(ctx context.Context, data []byte, component string) ([]schema.Field, error) {
	if ctx == nil {
		return nil, errors.New("openapi: context is required")
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	if component == "" {
		return nil, errors.New("openapi: component name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	if doc.Components == nil || doc.Components.Schemas == nil {
		return nil, errors.New("openapi: document declares no component schemas")
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: component %q not found", component)
	}

	target := ref.Value
	if target.Type != nil && !target.Type.Is("object") {
		return nil, fmt.Errorf("openapi: component %q is not an object schema", component)
	}
	if len(target.Properties) == 0 {
		return nil, fmt.Errorf("openapi: component %q has no properties", component)
	}

	required := make(map[string]bool, len(target.Required))
	for _, name := range target.Required {
		required[name] = true
	}

	names := make([]string, 0, len(target.Properties))
	for name := range target.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]schema.Field, 0, len(names))
	for _, name := range names {
		prop := target.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		fields = append(fields, convertProperty(name, prop.Value, required[name]))
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("openapi: component %q yielded no fields", component)
	}
	return fields, nil
}

func convertProperty(name string, prop *openapi3.Schema, required bool) schema.Field {
	return schema.Field{
		Name:        name,
		Type:        fieldTypeFor(prop),
		Required:    required,
		Label:       schema.SanitizeText(prop.Title),
		Description: schema.SanitizeText(prop.Description),
		Format:      prop.Format,
		Default:     prop.Default,
		Enum:        append([]any(nil), prop.Enum...),
		Validations: validationsFor(prop),
	}
}

func fieldTypeFor(prop *openapi3.Schema) schema.FieldType {
	if len(prop.Enum) > 0 {
		return schema.FieldTypeEnum
	}

	types := prop.Type
	switch {
	case types == nil:
		// untyped properties edit as text
	case types.Is("integer"):
		return schema.FieldTypeInteger
	case types.Is("number"):
		return schema.FieldTypeNumber
	case types.Is("boolean"):
		return schema.FieldTypeBoolean
	case types.Is("array"):
		return schema.FieldTypeArray
	case types.Is("object"):
		return schema.FieldTypeObject
	}

	switch prop.Format {
	case "date":
		return schema.FieldTypeDate
	case "time":
		return schema.FieldTypeTime
	case "date-time":
		return schema.FieldTypeDateTime
	case "textarea":
		return schema.FieldTypeText
	}
	return schema.FieldTypeString
}

func validationsFor(prop *openapi3.Schema) []schema.ValidationRule {
	var rules []schema.ValidationRule

	if prop.Min != nil {
		rules = append(rules, valueRule(schema.RuleMin, formatFloat(*prop.Min)))
	}
	if prop.Max != nil {
		rules = append(rules, valueRule(schema.RuleMax, formatFloat(*prop.Max)))
	}
	if prop.MinLength > 0 {
		rules = append(rules, valueRule(schema.RuleMinLength, strconv.FormatUint(prop.MinLength, 10)))
	}
	if prop.MaxLength != nil {
		rules = append(rules, valueRule(schema.RuleMaxLength, strconv.FormatUint(*prop.MaxLength, 10)))
	}
	if prop.Pattern != "" {
		rules = append(rules, schema.ValidationRule{
			Kind:   schema.RulePattern,
			Params: map[string]string{"pattern": prop.Pattern},
		})
	}
	return rules
}

func valueRule(kind, value string) schema.ValidationRule {
	return schema.ValidationRule{
		Kind:   kind,
		Params: map[string]string{"value": value},
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
