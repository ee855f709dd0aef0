package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formbind/pkg/schema"
)

type ruleValidator struct {
	required bool
	numeric  bool
	integer  bool
	min      *float64
	max      *float64
	minLen   *int
	maxLen   *int
	pattern  *regexp.Regexp
}

// Rules builds a validator for text fields from the declared constraints.
// It returns nil when the field is optional and carries no constraint, so
// unconstrained fields keep the default "no validator" behavior.
func Rules(required bool, rules []schema.ValidationRule) Validator {
	v := collect(required, rules)
	if !v.required && v.minLen == nil && v.maxLen == nil && v.pattern == nil {
		return nil
	}
	return v
}

// NumericRules builds a validator for integer and floating-point fields.
// Numeric fields always validate parseability, so this never returns nil.
func NumericRules(required, integer bool, rules []schema.ValidationRule) Validator {
	v := collect(required, rules)
	v.numeric = true
	v.integer = integer
	return v
}

// DateLayout builds a validator that requires input to parse with the given
// time layout. Optional fields accept empty input.
func DateLayout(required bool, layout string) Validator {
	return Func(func(input string) Result {
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			if required {
				return Result{State: InvalidEmpty, Message: "required"}
			}
			return Result{State: Valid}
		}
		if _, err := time.Parse(layout, trimmed); err != nil {
			return Result{State: Invalid, Message: fmt.Sprintf("must match %s", layout)}
		}
		return Result{State: Valid}
	})
}

func collect(required bool, rules []schema.ValidationRule) *ruleValidator {
	v := &ruleValidator{required: required}
	for _, rule := range rules {
		switch rule.Kind {
		case schema.RuleMin:
			if val, ok := parseFloat(rule.Params["value"]); ok {
				v.min = &val
			}
		case schema.RuleMax:
			if val, ok := parseFloat(rule.Params["value"]); ok {
				v.max = &val
			}
		case schema.RuleMinLength:
			if val, ok := parseInt(rule.Params["value"]); ok {
				v.minLen = &val
			}
		case schema.RuleMaxLength:
			if val, ok := parseInt(rule.Params["value"]); ok {
				v.maxLen = &val
			}
		case schema.RulePattern:
			if expr := rule.Params["pattern"]; expr != "" {
				if re, err := regexp.Compile(expr); err == nil {
					v.pattern = re
				}
			}
		}
	}
	return v
}

func (v *ruleValidator) Validate(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		if v.required {
			return Result{State: InvalidEmpty, Message: "required"}
		}
		return Result{State: Valid}
	}

	if v.numeric {
		return v.validateNumber(trimmed)
	}

	if v.minLen != nil && len(input) < *v.minLen {
		return Result{State: Invalid, Message: fmt.Sprintf("min length %d", *v.minLen)}
	}
	if v.maxLen != nil && len(input) > *v.maxLen {
		return Result{State: Invalid, Message: fmt.Sprintf("max length %d", *v.maxLen)}
	}
	if v.pattern != nil && !v.pattern.MatchString(input) {
		return Result{State: Invalid, Message: "does not match required pattern"}
	}
	return Result{State: Valid}
}

func (v *ruleValidator) validateNumber(input string) Result {
	var value float64
	if v.integer {
		parsed, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return Result{State: Invalid, Message: "must be an integer"}
		}
		value = float64(parsed)
	} else {
		parsed, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return Result{State: Invalid, Message: "must be a number"}
		}
		value = parsed
	}

	if v.min != nil && value < *v.min {
		return Result{State: Invalid, Message: fmt.Sprintf("min %v", *v.min)}
	}
	if v.max != nil && value > *v.max {
		return Result{State: Invalid, Message: fmt.Sprintf("max %v", *v.max)}
	}
	return Result{State: Valid}
}

func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	return val, err == nil
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	return val, err == nil
}
