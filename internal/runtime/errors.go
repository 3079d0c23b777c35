package runtime

import "fmt"

// ============================================================================
// Runtime error kinds
// ============================================================================
//
// Mewar's error taxonomy (§7) is exhaustive and fatal: every kind below
// halts the interpreter's main loop once raised. Each is a distinct Go
// type so callers can type-switch when they need the kind (the CLI and
// the block engine don't; tests use it to assert the kind raised).
// ============================================================================

// NameNotFoundError is raised when an identifier is not bound in any scope.
type NameNotFoundError struct {
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("name not found: %s", e.Name)
}

// TypeError is raised when an operation is applied to the wrong kind of value.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// IndexOutOfRangeError is raised when a list index falls outside [1, length].
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for list of length %d", e.Index, e.Length)
}

// ArityError is raised when a function call supplies the wrong argument count.
type ArityError struct {
	Function string
	Want     int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("function %s expects %d argument(s), got %d", e.Function, e.Want, e.Got)
}

// DivideByZeroError is raised when the divisor of `/` evaluates to zero.
type DivideByZeroError struct{}

func (e *DivideByZeroError) Error() string { return "division by zero" }

// ComparisonTypeError is raised when an ordering comparison involves a
// non-numeric operand.
type ComparisonTypeError struct {
	Left, Right Value
}

func (e *ComparisonTypeError) Error() string {
	return fmt.Sprintf("cannot compare %s with %s", e.Left.Type(), e.Right.Type())
}

// SyntaxError is raised for malformed statements, unknown commands, and
// unmatched block terminators.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }
