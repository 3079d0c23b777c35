package interp

import (
	"strings"

	"github.com/veerlang/veer/internal/eval"
	"github.com/veerlang/veer/internal/lexer"
	"github.com/veerlang/veer/internal/runtime"
)

// execIf implements `if COND then` (§4.E): the If frame is always
// pushed so the matching `end`/`else` has something to pop, and the
// program counter skips to the matching else-or-end when COND is false.
func (e *Engine) execIf(headerLine int, tail string) error {
	taken, err := eval.EvalCondition(stripThen(tail), e.env)
	if err != nil {
		return err
	}
	e.pushBlock(&ifFrame{headerLine: headerLine, taken: taken})
	if taken {
		return nil
	}
	end, err := findMatchingEnd(e.lines, e.pc, true)
	if err != nil {
		return err
	}
	e.pc = end
	return nil
}

// execElse implements `else` (§4.E): legal only directly under an open
// If frame. A taken If skips the else arm; an untaken If falls through
// into it.
func (e *Engine) execElse(lineIdx int) error {
	top, ok := e.topBlock().(*ifFrame)
	if !ok {
		return &runtime.SyntaxError{Message: "'else' without matching 'if'"}
	}
	if !top.taken {
		return nil
	}
	end, err := findMatchingEnd(e.lines, lineIdx+1, false)
	if err != nil {
		return err
	}
	e.pc = end
	return nil
}

// execWhile implements `while COND then` (§4.E, §4.F). Re-entry at the
// same header line (the `end` handler jumping back to re-evaluate) is
// distinguished from a fresh entry by the top-of-stack frame.
func (e *Engine) execWhile(headerLine int, tail string) error {
	cond := stripThen(tail)

	if wf, ok := e.topBlock().(*whileFrame); ok && wf.headerLine == headerLine {
		again, err := eval.EvalCondition(cond, e.env)
		if err != nil {
			return err
		}
		if again {
			return nil
		}
		e.popBlock()
		end, err := findMatchingEnd(e.lines, headerLine+1, false)
		if err != nil {
			return err
		}
		e.pc = end + 1
		return nil
	}

	enter, err := eval.EvalCondition(cond, e.env)
	if err != nil {
		return err
	}
	if enter {
		e.pushBlock(&whileFrame{headerLine: headerLine})
		return nil
	}
	end, err := findMatchingEnd(e.lines, e.pc, false)
	if err != nil {
		return err
	}
	e.pc = end + 1
	return nil
}

// execFor implements `for each X in LIST` (§4.E, §4.F). A re-entry at
// the header line is a pure pass-through: the matching `end` already
// advanced the index and rebound the iterator before jumping back.
func (e *Engine) execFor(headerLine int, tail string) error {
	if ff, ok := e.topBlock().(*forFrame); ok && ff.headerLine == headerLine {
		return nil
	}

	iterName, listExpr, err := parseForHeader(tail)
	if err != nil {
		return err
	}
	listVal, err := eval.Eval(listExpr, e.env)
	if err != nil {
		return err
	}
	list, ok := listVal.(*runtime.ListValue)
	if !ok {
		return &runtime.TypeError{Message: "'for each' requires a list, got " + listVal.Type()}
	}

	if list.Len() == 0 {
		end, err := findMatchingEnd(e.lines, e.pc, false)
		if err != nil {
			return err
		}
		e.pc = end + 1
		return nil
	}

	first, _ := list.Get(1)
	e.env.Assign(iterName, first)
	e.pushBlock(&forFrame{headerLine: headerLine, iterName: iterName, list: list, index: 1})
	return nil
}

// execRepeat implements `repeat N times [as NAME]` (§4.E, §4.F), the
// same re-entry pass-through as `for`.
func (e *Engine) execRepeat(headerLine int, tail string) error {
	if rf, ok := e.topBlock().(*repeatFrame); ok && rf.headerLine == headerLine {
		return nil
	}

	countExpr, iterName, err := parseRepeatHeader(tail)
	if err != nil {
		return err
	}
	countVal, err := eval.Eval(countExpr, e.env)
	if err != nil {
		return err
	}
	countInt, ok := countVal.(*runtime.IntegerValue)
	if !ok {
		return &runtime.TypeError{Message: "repeat count must be an integer"}
	}

	if countInt.Value <= 0 {
		end, err := findMatchingEnd(e.lines, e.pc, false)
		if err != nil {
			return err
		}
		e.pc = end + 1
		return nil
	}

	if iterName != "" {
		e.env.Assign(iterName, &runtime.IntegerValue{Value: 1})
	}
	e.pushBlock(&repeatFrame{headerLine: headerLine, iterName: iterName, total: int(countInt.Value), iteration: 1})
	return nil
}

// execEnd implements §4.F's `end` dispatch: close or loop the
// innermost block frame, or fall back to an implicit return, or raise
// SyntaxError if neither is open.
func (e *Engine) execEnd() error {
	switch f := e.topBlock().(type) {
	case *ifFrame:
		e.popBlock()
		return nil

	case *whileFrame:
		e.pc = f.headerLine
		return nil

	case *forFrame:
		if f.index < f.list.Len() {
			f.index++
			elem, _ := f.list.Get(f.index)
			e.env.Assign(f.iterName, elem)
			e.pc = f.headerLine
		} else {
			e.popBlock()
		}
		return nil

	case *repeatFrame:
		f.iteration++
		if f.iteration <= f.total {
			if f.iterName != "" {
				e.env.Assign(f.iterName, &runtime.IntegerValue{Value: int64(f.iteration)})
			}
			e.pc = f.headerLine
		} else {
			e.popBlock()
		}
		return nil

	default:
		if len(e.calls) > 0 {
			return e.doReturn(runtime.Nil)
		}
		return &runtime.SyntaxError{Message: "unexpected 'end'"}
	}
}

// parseForHeader parses "each X in LIST".
func parseForHeader(tail string) (iterName, listExpr string, err error) {
	tail = strings.TrimSpace(tail)
	if !strings.HasPrefix(tail, "each ") {
		return "", "", &runtime.SyntaxError{Message: "expected 'for each X in LIST'"}
	}
	rest := strings.TrimSpace(tail[len("each "):])
	name, list, found := lexer.SplitKeyword(rest, "in")
	if !found {
		return "", "", &runtime.SyntaxError{Message: "expected 'for each X in LIST'"}
	}
	return strings.TrimSpace(name), strings.TrimSpace(list), nil
}

// parseRepeatHeader parses "N times" or "N times as NAME".
func parseRepeatHeader(tail string) (countExpr, iterName string, err error) {
	body := tail
	if before, after, found := lexer.SplitKeyword(tail, "as"); found {
		body, iterName = before, strings.TrimSpace(after)
	}
	body = strings.TrimSpace(body)
	if !strings.HasSuffix(body, "times") {
		return "", "", &runtime.SyntaxError{Message: "expected 'repeat N times'"}
	}
	return strings.TrimSpace(strings.TrimSuffix(body, "times")), iterName, nil
}
