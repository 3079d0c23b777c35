// Package eval implements Mewar's expression grammar (§4.B): a small
// recursive-descent evaluator over a trimmed expression substring,
// grounded on the original interpreter's get_value and rewritten with
// the rightmost-operator split and quote-aware splitting §4.B mandates.
package eval

import (
	"strconv"
	"strings"

	"github.com/veerlang/veer/internal/lexer"
	"github.com/veerlang/veer/internal/runtime"
)

// arithmeticOperators is the operator set scanned by the rightmost
// binary-arithmetic rule (§4.B.3). Order doesn't matter: a single
// rightmost scan covers all four.
const arithmeticOperators = "+-*/"

// Eval evaluates a trimmed expression string against env, following
// the ordered recognition rules in §4.B.
func Eval(expr string, env *runtime.Environment) (runtime.Value, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &runtime.SyntaxError{Message: "empty expression"}
	}

	// Rule 1: empty quoted literal.
	if expr == `""` || expr == "''" {
		return &runtime.StringValue{Value: ""}, nil
	}

	// Rule 2: list literal.
	if strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]") {
		return evalList(expr[1:len(expr)-1], env)
	}

	// Rule 3: binary arithmetic via rightmost operator split.
	if idx := lexer.IndexOutsideQuotes(expr, arithmeticOperators); idx > 0 {
		left := strings.TrimSpace(expr[:idx])
		op := expr[idx]
		right := strings.TrimSpace(expr[idx+1:])
		if left == "" || right == "" {
			return nil, &runtime.SyntaxError{Message: "malformed arithmetic expression: " + expr}
		}
		lv, err := Eval(left, env)
		if err != nil {
			return nil, err
		}
		rv, err := Eval(right, env)
		if err != nil {
			return nil, err
		}
		return applyOperator(op, lv, rv)
	}

	// Rule 4: string literal.
	if len(expr) >= 2 && expr[0] == '"' && expr[len(expr)-1] == '"' {
		return &runtime.StringValue{Value: expr[1 : len(expr)-1]}, nil
	}

	// Rule 5: integer literal.
	if isIntegerLiteral(expr) {
		n, err := strconv.ParseInt(expr, 10, 64)
		if err == nil {
			return &runtime.IntegerValue{Value: n}, nil
		}
	}

	// Rule 6: indexed access name[expr].
	if strings.HasSuffix(expr, "]") {
		if open := strings.IndexByte(expr, '['); open > 0 {
			name := expr[:open]
			if isIdentifier(name) {
				indexExpr := expr[open+1 : len(expr)-1]
				return evalIndexed(name, indexExpr, env)
			}
		}
	}

	// Rule 7: identifier.
	if isIdentifier(expr) {
		return env.Lookup(expr)
	}

	return nil, &runtime.SyntaxError{Message: "unknown expression: " + expr}
}

func evalList(body string, env *runtime.Environment) (runtime.Value, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return runtime.NewList(nil), nil
	}
	items := lexer.SplitOutsideQuotes(body, ',')
	elements := make([]runtime.Value, len(items))
	for i, item := range items {
		v, err := Eval(strings.TrimSpace(item), env)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return runtime.NewList(elements), nil
}

func evalIndexed(name, indexExpr string, env *runtime.Environment) (runtime.Value, error) {
	listVal, err := env.Lookup(name)
	if err != nil {
		return nil, err
	}
	list, ok := listVal.(*runtime.ListValue)
	if !ok {
		return nil, &runtime.TypeError{Message: name + " is not a list"}
	}
	idxVal, err := Eval(indexExpr, env)
	if err != nil {
		return nil, err
	}
	idxInt, ok := idxVal.(*runtime.IntegerValue)
	if !ok {
		return nil, &runtime.TypeError{Message: "list index must be an integer"}
	}
	return list.Get(int(idxInt.Value))
}

func applyOperator(op byte, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case '+':
		return runtime.Add(left, right)
	case '-':
		return runtime.Sub(left, right)
	case '*':
		return runtime.Mul(left, right)
	case '/':
		return runtime.Div(left, right)
	default:
		return nil, &runtime.SyntaxError{Message: "unknown operator"}
	}
}

func isIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
		if !isAlnum {
			return false
		}
	}
	first := s[0]
	return !(first >= '0' && first <= '9')
}
