package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/schema"
)

const articleDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "articles", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Article": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {
            "type": "string",
            "title": "Title",
            "maxLength": 120
          },
          "rating": {
            "type": "integer",
            "minimum": 1,
            "maximum": 5
          },
          "isActive": {
            "type": "boolean"
          },
          "publishedOn": {
            "type": "string",
            "format": "date"
          },
          "status": {
            "type": "string",
            "enum": ["draft", "live"]
          }
        }
      }
    }
  }
}`

func TestFields_ConvertsComponentSchema(t *testing.T) {
	fields, err := Fields(context.Background(), []byte(articleDoc), "Article")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}

	want := []schema.Field{
		{
			Name: "isActive",
			Type: schema.FieldTypeBoolean,
		},
		{
			Name:   "publishedOn",
			Type:   schema.FieldTypeDate,
			Format: "date",
		},
		{
			Name: "rating",
			Type: schema.FieldTypeInteger,
			Validations: []schema.ValidationRule{
				{Kind: schema.RuleMin, Params: map[string]string{"value": "1"}},
				{Kind: schema.RuleMax, Params: map[string]string{"value": "5"}},
			},
		},
		{
			Name: "status",
			Type: schema.FieldTypeEnum,
			Enum: []any{"draft", "live"},
		},
		{
			Name:     "title",
			Type:     schema.FieldTypeString,
			Required: true,
			Label:    "Title",
			Validations: []schema.ValidationRule{
				{Kind: schema.RuleMaxLength, Params: map[string]string{"value": "120"}},
			},
		},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFields_MissingComponent(t *testing.T) {
	if _, err := Fields(context.Background(), []byte(articleDoc), "Nope"); err == nil {
		t.Fatalf("unknown component should error")
	}
}

func TestFields_Preconditions(t *testing.T) {
	ctx := context.Background()
	if _, err := Fields(ctx, nil, "Article"); err == nil {
		t.Fatalf("empty payload should error")
	}
	if _, err := Fields(ctx, []byte(articleDoc), ""); err == nil {
		t.Fatalf("empty component should error")
	}
}
