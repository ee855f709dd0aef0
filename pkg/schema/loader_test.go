package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_YAMLDocument(t *testing.T) {
	doc := []byte(`
fields:
  - name: title
    type: string
    required: true
    label: Title
    validations:
      - kind: maxLength
        params:
          value: "120"
  - name: isActive
    type: boolean
    label: Active
`)

	fields, err := Load(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []Field{
		{
			Name:     "title",
			Type:     FieldTypeString,
			Required: true,
			Label:    "Title",
			Validations: []ValidationRule{
				{Kind: RuleMaxLength, Params: map[string]string{"value": "120"}},
			},
		},
		{
			Name:  "isActive",
			Type:  FieldTypeBoolean,
			Label: "Active",
		},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_JSONDocument(t *testing.T) {
	doc := []byte(`{"fields":[{"name":"rating","type":"integer"}]}`)
	fields, err := Load(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(fields) != 1 || fields[0].Type != FieldTypeInteger {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestLoad_SanitizesHumanText(t *testing.T) {
	doc := []byte(`{"fields":[{"name":"title","type":"string","label":"<em>Title</em>","description":"<b>bold</b> text"}]}`)
	fields, err := Load(doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fields[0].Label != "Title" {
		t.Fatalf("label not sanitized: %q", fields[0].Label)
	}
	if strings.Contains(fields[0].Description, "<") {
		t.Fatalf("description not sanitized: %q", fields[0].Description)
	}
}

func TestLoad_Rejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty document", "   "},
		{"no fields", `{"fields":[]}`},
		{"unnamed field", `{"fields":[{"type":"string"}]}`},
		{"untyped field", `{"fields":[{"name":"title"}]}`},
		{"duplicate names", `{"fields":[{"name":"a","type":"string"},{"name":"a","type":"string"}]}`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load([]byte(tc.doc)); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}
