package validation

import (
	"testing"

	"github.com/goliatone/go-formbind/pkg/schema"
)

func TestRules_NilWhenUnconstrained(t *testing.T) {
	if v := Rules(false, nil); v != nil {
		t.Fatalf("optional unconstrained field should yield no validator")
	}
	if v := Rules(true, nil); v == nil {
		t.Fatalf("required field should yield a validator")
	}
}

func TestRules_TextConstraints(t *testing.T) {
	rules := []schema.ValidationRule{
		{Kind: schema.RuleMinLength, Params: map[string]string{"value": "3"}},
		{Kind: schema.RuleMaxLength, Params: map[string]string{"value": "6"}},
		{Kind: schema.RulePattern, Params: map[string]string{"pattern": "^[a-z]+$"}},
	}
	v := Rules(true, rules)

	cases := []struct {
		name  string
		input string
		ok    bool
		state State
	}{
		{"valid", "hello", true, Valid},
		{"empty required", "", false, InvalidEmpty},
		{"too short", "ab", false, Invalid},
		{"too long", "toolongvalue", false, Invalid},
		{"pattern mismatch", "HELLO", false, Invalid},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := v.Validate(tc.input)
			if res.Ok() != tc.ok {
				t.Fatalf("Validate(%q).Ok() = %v, want %v (%s)", tc.input, res.Ok(), tc.ok, res.Message)
			}
			if res.State != tc.state {
				t.Fatalf("Validate(%q).State = %v, want %v", tc.input, res.State, tc.state)
			}
		})
	}
}

func TestNumericRules_IntegerBounds(t *testing.T) {
	rules := []schema.ValidationRule{
		{Kind: schema.RuleMin, Params: map[string]string{"value": "1"}},
		{Kind: schema.RuleMax, Params: map[string]string{"value": "10"}},
	}
	v := NumericRules(false, true, rules)

	cases := []struct {
		input string
		ok    bool
	}{
		{"5", true},
		{"1", true},
		{"10", true},
		{"0", false},
		{"11", false},
		{"2.5", false},
		{"abc", false},
		{"", true},
	}
	for _, tc := range cases {
		if res := v.Validate(tc.input); res.Ok() != tc.ok {
			t.Fatalf("Validate(%q).Ok() = %v, want %v (%s)", tc.input, res.Ok(), tc.ok, res.Message)
		}
	}
}

func TestNumericRules_FloatAcceptsDecimals(t *testing.T) {
	v := NumericRules(false, false, nil)
	if res := v.Validate("2.5"); !res.Ok() {
		t.Fatalf("float field should accept decimals: %s", res.Message)
	}
	if res := v.Validate("x"); res.Ok() {
		t.Fatalf("float field should reject non-numeric input")
	}
}

func TestDateLayout(t *testing.T) {
	v := DateLayout(false, "2006-01-02")
	if res := v.Validate("2026-08-23"); !res.Ok() {
		t.Fatalf("valid date rejected: %s", res.Message)
	}
	if res := v.Validate("08/23/2026"); res.Ok() {
		t.Fatalf("mismatched layout accepted")
	}
	if res := v.Validate(""); !res.Ok() {
		t.Fatalf("optional date should accept empty input")
	}

	required := DateLayout(true, "2006-01-02")
	if res := required.Validate(""); res.State != InvalidEmpty {
		t.Fatalf("required empty date should be InvalidEmpty, got %v", res.State)
	}
}
