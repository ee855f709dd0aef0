package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Fields []Field `json:"fields" yaml:"fields"`
}

// Load parses a JSON or YAML field-definition document into field
// descriptors. Human-readable text is sanitized; names must be unique and
// non-empty, and every field needs a declared type.
func Load(data []byte) ([]Field, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("schema: document defines no fields")
	}

	seen := make(map[string]struct{}, len(doc.Fields))
	out := make([]Field, 0, len(doc.Fields))
	for idx, field := range doc.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, fmt.Errorf("schema: field %d has no name", idx)
		}
		if _, exists := seen[name]; exists {
			return nil, fmt.Errorf("schema: duplicate field %q", name)
		}
		seen[name] = struct{}{}

		if field.Type == "" {
			return nil, fmt.Errorf("schema: field %q has no declared type", name)
		}

		field.Name = name
		field.Label = SanitizeText(field.Label)
		field.Placeholder = SanitizeText(field.Placeholder)
		field.Description = SanitizeText(field.Description)
		out = append(out, field)
	}
	return out, nil
}

// LoadFile reads and parses a field-definition document from disk.
func LoadFile(path string) ([]Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	fields, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", path, err)
	}
	return fields, nil
}

func parseDocument(data []byte) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("schema: document is empty")
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("schema: document is neither valid JSON nor YAML")
}
