// Package interp implements Veer's block engine (§4.F): the program
// counter, block stack, and call stack that drive execution of a
// classified Mewar line at a time, grounded on the teacher's
// Interpreter/Eval dispatch loop but keyed on the classified command
// string rather than an AST node type, since Mewar re-classifies each
// line on the fly instead of parsing a persistent tree.
package interp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/veerlang/veer/internal/lexer"
	"github.com/veerlang/veer/internal/runtime"
	"github.com/veerlang/veer/internal/veererr"
)

// Engine is a single interpreter instance: one owned object per program
// invocation, with no process-wide mutable state (§9 "one owned instance").
type Engine struct {
	lines     []string
	source    string
	pc        int
	blocks    []blockFrame
	calls     []callFrame
	functions map[string]*funcDef
	env       *runtime.Environment

	out io.Writer
	in  *bufio.Reader

	// pendingReturn holds the value of the most recent return from a
	// bare `call F` statement. `set X to call F ...` writes its target
	// directly and does not use this field, and nothing currently reads it.
	pendingReturn runtime.Value
}

// New creates an Engine that writes `say`/`ask`-prompt output to out
// and reads `ask` responses from in.
func New(out io.Writer, in io.Reader) *Engine {
	return &Engine{
		env: runtime.NewEnvironment(),
		out: out,
		in:  bufio.NewReader(in),
	}
}

// Run executes source to completion or until a runtime error occurs.
func (e *Engine) Run(source string) error {
	e.source = source
	e.lines = splitLines(source)
	e.functions = preScanFunctions(e.lines)
	e.pc = 0

	for e.pc < len(e.lines) {
		lineNum := e.pc + 1
		raw := e.lines[e.pc]
		e.pc++

		cl := lexer.Classify(raw)
		if cl.Blank {
			continue
		}

		if cl.Command == "function" {
			end, err := findMatchingEnd(e.lines, e.pc, false)
			if err != nil {
				return e.wrap(lineNum, err)
			}
			e.pc = end + 1
			continue
		}

		if err := e.exec(lineNum, cl); err != nil {
			return e.wrap(lineNum, err)
		}
	}
	return nil
}

func (e *Engine) wrap(line int, err error) error {
	return &veererr.RuntimeError{Line: line, Cause: err, Source: e.source}
}

func splitLines(source string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lines = append(lines, source[start:i])
			start = i + 1
		}
	}
	lines = append(lines, source[start:])
	return lines
}

// exec dispatches one classified, non-blank line to its statement
// executor (§4.E's table, one function per row).
func (e *Engine) exec(lineNum int, cl lexer.Line) error {
	switch cl.Command {
	case "say":
		return e.execSay(cl.Tail)
	case "set":
		return e.execSet(cl.Tail)
	case "append":
		return e.execAppend(cl.Tail)
	case "swap":
		return e.execSwap(cl.Tail)
	case "if":
		return e.execIf(lineNum-1, cl.Tail)
	case "else":
		return e.execElse(lineNum - 1)
	case "while":
		return e.execWhile(lineNum-1, cl.Tail)
	case "for":
		return e.execFor(lineNum-1, cl.Tail)
	case "repeat":
		return e.execRepeat(lineNum-1, cl.Tail)
	case "call":
		_, err := e.performCall(cl.Tail, "", false)
		return err
	case "return":
		return e.execReturn(cl.Tail)
	case "end":
		return e.execEnd()
	default:
		return &runtime.SyntaxError{Message: fmt.Sprintf("unknown command '%s'", cl.Command)}
	}
}

func (e *Engine) pushBlock(f blockFrame) { e.blocks = append(e.blocks, f) }

func (e *Engine) topBlock() blockFrame {
	if len(e.blocks) == 0 {
		return nil
	}
	return e.blocks[len(e.blocks)-1]
}

func (e *Engine) popBlock() {
	if len(e.blocks) > 0 {
		e.blocks = e.blocks[:len(e.blocks)-1]
	}
}
