package schema

import "fmt"

// FieldType is the declared data type of a field in a persisted-entity
// schema. The delegate registry dispatches on this tag alone; formats and
// enums refine the descriptor but never change which built-in is selected.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeText     FieldType = "text"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeDate     FieldType = "date"
	FieldTypeTime     FieldType = "time"
	FieldTypeDateTime FieldType = "datetime"
	FieldTypeEnum     FieldType = "enum"
	FieldTypeArray    FieldType = "array"
	FieldTypeObject   FieldType = "object"
)

const (
	RuleMin       = "min"
	RuleMax       = "max"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RulePattern   = "pattern"
)

// ValidationRule represents a single validation constraint applied to a
// field. Use the Rule* constants to reference canonical constraints
// (min/max, minLength/maxLength, pattern). Numeric bounds and length limits
// encode their threshold in Params["value"] while pattern rules preserve the
// original expression in Params["pattern"].
type ValidationRule struct {
	Kind   string            `json:"kind" yaml:"kind"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Field describes one named, typed slot of a schema that a form edits. The
// name is the key for every form-state and registry lookup and must be
// unique within one schema.
type Field struct {
	Name        string            `json:"name" yaml:"name"`
	Type        FieldType         `json:"type" yaml:"type"`
	Required    bool              `json:"required" yaml:"required"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string            `json:"format,omitempty" yaml:"format,omitempty"`
	Default     any               `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []any             `json:"enum,omitempty" yaml:"enum,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty" yaml:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// DisplayLabel returns the label when set, the field name otherwise.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// EnumOptions renders the enum values as strings in declaration order.
func (f Field) EnumOptions() []string {
	if len(f.Enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.Enum))
	for _, v := range f.Enum {
		out = append(out, fmt.Sprint(v))
	}
	return out
}
