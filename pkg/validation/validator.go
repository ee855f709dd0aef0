package validation

// State classifies a validation outcome.
type State int

const (
	// Valid means the input satisfies every constraint.
	Valid State = iota
	// InvalidEmpty means a mandatory field received no input.
	InvalidEmpty
	// Invalid means the input violates a constraint.
	Invalid
)

// Result carries the outcome of validating one field along with the message
// a form can surface next to the widget.
type Result struct {
	State   State
	Message string
}

// Ok reports whether the result represents a passing validation.
func (r Result) Ok() bool {
	return r.State == Valid
}

// Validator checks a field's canonical text value against its constraints.
// A nil Validator means the field requires no validation beyond what its
// widget enforces.
type Validator interface {
	Validate(input string) Result
}

// Func adapts a plain function into a Validator.
type Func func(input string) Result

// Validate calls the underlying function.
func (fn Func) Validate(input string) Result {
	return fn(input)
}
