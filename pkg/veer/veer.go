// Package veer is Veer's public embedding API: construct an
// interpreter over an output/input pair and run Mewar source, mirroring
// the teacher's pkg/dwscript surface (a thin façade over the internal
// interpreter) so the CLI and any future embedder share one entry point.
package veer

import (
	"io"

	"github.com/veerlang/veer/internal/interp"
)

// Interpreter runs Mewar programs. Each Interpreter owns exactly one
// runtime instance (§9 "one owned instance") — create a new one per
// program run rather than reusing it across unrelated sources.
type Interpreter struct {
	engine *interp.Engine
}

// New creates an Interpreter. out receives `say` output and `ask`
// prompts; in supplies `ask` responses.
func New(out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{engine: interp.New(out, in)}
}

// Run executes source to completion. The returned error, if non-nil,
// is always a *veererr.RuntimeError and already carries the offending
// line number (§7).
func (i *Interpreter) Run(source string) error {
	return i.engine.Run(source)
}
