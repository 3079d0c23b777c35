package interp

import (
	"fmt"
	"strings"

	"github.com/veerlang/veer/internal/eval"
	"github.com/veerlang/veer/internal/lexer"
	"github.com/veerlang/veer/internal/runtime"
)

// execSay implements `say ARG[, ARG…]` (§4.E): evaluate each
// comma-separated argument, join their display forms with a single
// space, emit one line.
func (e *Engine) execSay(tail string) error {
	if strings.TrimSpace(tail) == "" {
		fmt.Fprintln(e.out)
		return nil
	}
	args := lexer.SplitOutsideQuotes(tail, ',')
	parts := make([]string, len(args))
	for i, arg := range args {
		v, err := eval.Eval(strings.TrimSpace(arg), e.env)
		if err != nil {
			return err
		}
		parts[i] = v.Display()
	}
	fmt.Fprintln(e.out, strings.Join(parts, " "))
	return nil
}

// execSet implements `set TARGET to EXPR` (§4.E), dispatching on
// whether EXPR is an `ask` prompt, a `call`, or a plain expression.
func (e *Engine) execSet(tail string) error {
	targetText, exprText, ok := lexer.SplitKeyword(tail, "to")
	if !ok {
		return &runtime.SyntaxError{Message: "expected 'set TARGET to EXPR'"}
	}

	switch {
	case strings.HasPrefix(exprText, "ask "):
		return e.execAskInto(targetText, strings.TrimSpace(exprText[len("ask "):]))
	case exprText == "call" || strings.HasPrefix(exprText, "call "):
		_, err := e.performCall(strings.TrimSpace(strings.TrimPrefix(exprText, "call")), targetText, true)
		return err
	default:
		value, err := eval.Eval(exprText, e.env)
		if err != nil {
			return err
		}
		return e.assignTarget(targetText, value)
	}
}

// execAskInto implements the `ask "PROMPT"` form of `set` (§4.E, §6):
// write "PROMPT " without a newline, read one line, coerce it, assign.
func (e *Engine) execAskInto(target, promptExpr string) error {
	prompt := strings.TrimSpace(promptExpr)
	if len(prompt) >= 2 && prompt[0] == '"' && prompt[len(prompt)-1] == '"' {
		prompt = prompt[1 : len(prompt)-1]
	}
	fmt.Fprint(e.out, prompt+" ")

	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		line = ""
	}
	line = strings.TrimRight(line, "\r\n")

	return e.assignTarget(target, runtime.CoerceFromInput(line))
}

// assignTarget implements the TARGET grammar shared by `set`: either a
// simple name or an indexed `name[expr]` assignment (§4.C).
func (e *Engine) assignTarget(target string, value runtime.Value) error {
	target = strings.TrimSpace(target)
	if strings.HasSuffix(target, "]") {
		open := strings.IndexByte(target, '[')
		if open <= 0 {
			return &runtime.SyntaxError{Message: "malformed assignment target: " + target}
		}
		name := target[:open]
		indexExpr := target[open+1 : len(target)-1]
		return e.assignIndexed(name, indexExpr, value)
	}
	e.env.Assign(target, value)
	return nil
}

func (e *Engine) assignIndexed(name, indexExpr string, value runtime.Value) error {
	listVal, err := e.env.Lookup(name)
	if err != nil {
		return err
	}
	list, ok := listVal.(*runtime.ListValue)
	if !ok {
		return &runtime.TypeError{Message: name + " is not a list"}
	}
	idxVal, err := eval.Eval(indexExpr, e.env)
	if err != nil {
		return err
	}
	idxInt, ok := idxVal.(*runtime.IntegerValue)
	if !ok {
		return &runtime.TypeError{Message: "list index must be an integer"}
	}
	return list.Set(int(idxInt.Value), value)
}

// execAppend implements `append EXPR to NAME` (§4.E).
func (e *Engine) execAppend(tail string) error {
	exprText, name, ok := lexer.SplitKeyword(tail, "to")
	if !ok {
		return &runtime.SyntaxError{Message: "expected 'append EXPR to NAME'"}
	}
	listVal, err := e.env.Lookup(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	list, ok := listVal.(*runtime.ListValue)
	if !ok {
		return &runtime.TypeError{Message: name + " is not a list"}
	}
	value, err := eval.Eval(exprText, e.env)
	if err != nil {
		return err
	}
	list.Append(value)
	return nil
}

// execSwap implements `swap A and B` (§4.E), grounded on the original
// interpreter's execute_swap.
func (e *Engine) execSwap(tail string) error {
	left, right, ok := lexer.SplitKeyword(tail, "and")
	if !ok {
		return &runtime.SyntaxError{Message: "expected 'swap A and B'"}
	}
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)

	leftVal, err := e.env.Lookup(left)
	if err != nil {
		return err
	}
	rightVal, err := e.env.Lookup(right)
	if err != nil {
		return err
	}
	e.env.Assign(left, rightVal)
	e.env.Assign(right, leftVal)
	return nil
}
