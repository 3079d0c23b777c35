package interp

import (
	"strings"

	"github.com/veerlang/veer/internal/eval"
	"github.com/veerlang/veer/internal/lexer"
	"github.com/veerlang/veer/internal/runtime"
)

// performCall implements `call NAME [with E1, E2, …]` (§4.E, §4.G):
// evaluate arguments in the caller's scope, bind them positionally in a
// fresh callee scope, and jump the program counter into the function
// body. Because the engine is program-counter driven rather than
// recursive, the call does not return a value here — `return` restores
// control and, if targetName was supplied (from `set X to call F…`),
// writes the value there.
func (e *Engine) performCall(tail string, targetName string, hasTarget bool) (runtime.Value, error) {
	name, argExprs, err := parseCallTail(tail)
	if err != nil {
		return nil, err
	}

	fn, ok := e.functions[name]
	if !ok {
		return nil, &runtime.SyntaxError{Message: "call to undefined function '" + name + "'"}
	}
	if len(argExprs) != len(fn.params) {
		return nil, &runtime.ArityError{Function: name, Want: len(fn.params), Got: len(argExprs)}
	}

	args := make([]runtime.Value, len(argExprs))
	for i, argExpr := range argExprs {
		v, err := eval.Eval(argExpr, e.env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	e.env.PushScope()
	for i, param := range fn.params {
		e.env.Define(param, args[i])
	}

	e.calls = append(e.calls, callFrame{
		returnPC:      e.pc,
		targetBinding: targetName,
		hasTarget:     hasTarget,
	})
	e.pc = fn.bodyStart
	return nil, nil
}

// execReturn implements `return [EXPR]` (§4.E): evaluate EXPR (if any)
// in the callee's still-open scope, then unwind.
func (e *Engine) execReturn(tail string) error {
	if len(e.calls) == 0 {
		return &runtime.SyntaxError{Message: "'return' outside of a function call"}
	}

	value := runtime.Value(runtime.Nil)
	if strings.TrimSpace(tail) != "" {
		v, err := eval.Eval(tail, e.env)
		if err != nil {
			return err
		}
		value = v
	}
	return e.doReturn(value)
}

// doReturn pops the innermost call frame and its scope, restores the
// caller's program counter, and either writes the return value to the
// call's target binding or publishes it to the pending-return slot for
// a bare `call` statement (§3.5, §4.E).
func (e *Engine) doReturn(value runtime.Value) error {
	frame := e.calls[len(e.calls)-1]
	e.calls = e.calls[:len(e.calls)-1]
	e.env.PopScope()
	e.pc = frame.returnPC

	if frame.hasTarget {
		e.env.Assign(frame.targetBinding, value)
	} else {
		e.pendingReturn = value
	}
	return nil
}

// parseCallTail parses "NAME [with E1, E2, …]".
func parseCallTail(tail string) (name string, argExprs []string, err error) {
	before, after, found := lexer.SplitKeyword(tail, "with")
	if !found {
		name = strings.TrimSpace(tail)
		if name == "" {
			return "", nil, &runtime.SyntaxError{Message: "expected a function name after 'call'"}
		}
		return name, nil, nil
	}

	name = strings.TrimSpace(before)
	for _, part := range lexer.SplitOutsideQuotes(after, ',') {
		part = strings.TrimSpace(part)
		if part != "" {
			argExprs = append(argExprs, part)
		}
	}
	return name, argExprs, nil
}
