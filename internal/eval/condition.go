package eval

import (
	"strings"

	"github.com/veerlang/veer/internal/runtime"
)

// conditionOperators lists the comparison tokens recognized in an `if`
// or `while` condition, longest first so "isnot" isn't cut short by "is".
var conditionOperators = []string{"isnot", "is", "==", "<=", ">=", "<", ">"}

// EvalCondition evaluates a condition string (the text between `if`/
// `while` and the trailing `then`) to a boolean, per §4.A: equality via
// `is`/`==` is structural with numeric cross-comparison, ordering
// coerces both sides to Real and raises ComparisonTypeError on a
// non-numeric operand.
func EvalCondition(cond string, env *runtime.Environment) (bool, error) {
	cond = strings.TrimSpace(cond)
	lhsText, op, rhsText, err := splitCondition(cond)
	if err != nil {
		return false, err
	}

	lhs, err := Eval(lhsText, env)
	if err != nil {
		return false, err
	}
	rhs, err := Eval(rhsText, env)
	if err != nil {
		return false, err
	}

	switch op {
	case "is", "==":
		return runtime.Equal(lhs, rhs)
	case "isnot":
		eq, err := runtime.Equal(lhs, rhs)
		return !eq, err
	case "<", ">", "<=", ">=":
		cmp, err := runtime.Compare(lhs, rhs)
		if err != nil {
			return false, err
		}
		switch op {
		case "<":
			return cmp < 0, nil
		case ">":
			return cmp > 0, nil
		case "<=":
			return cmp <= 0, nil
		case ">=":
			return cmp >= 0, nil
		}
	}
	return false, &runtime.SyntaxError{Message: "unknown comparison operator: " + op}
}

// splitCondition finds the first recognized comparison operator that
// appears as a standalone, whitespace-delimited token outside any
// quoted region, and splits the condition around it.
func splitCondition(cond string) (lhs, op, rhs string, err error) {
	inQuote := false
	for i := 0; i < len(cond); i++ {
		c := cond[i]
		if c == '"' {
			inQuote = !inQuote
			continue
		}
		if inQuote {
			continue
		}
		for _, candidate := range conditionOperators {
			if !matchesTokenAt(cond, i, candidate) {
				continue
			}
			lhs = strings.TrimSpace(cond[:i])
			rhs = strings.TrimSpace(cond[i+len(candidate):])
			if lhs == "" || rhs == "" {
				continue
			}
			return lhs, candidate, rhs, nil
		}
	}
	return "", "", "", &runtime.SyntaxError{Message: "missing comparison operator in condition: " + cond}
}

// matchesTokenAt reports whether candidate occurs at position i in s as
// a standalone token: preceded and followed by a space, a tab, or the
// string boundary. This applies to the symbolic operators too, so
// "x<5" has no recognized operator.
func matchesTokenAt(s string, i int, candidate string) bool {
	if i+len(candidate) > len(s) || s[i:i+len(candidate)] != candidate {
		return false
	}
	if i > 0 && !isBoundary(s[i-1]) {
		return false
	}
	after := i + len(candidate)
	if after < len(s) && !isBoundary(s[after]) {
		return false
	}
	return true
}

func isBoundary(c byte) bool {
	return c == ' ' || c == '\t'
}
