package interp

import (
	"strings"

	"github.com/veerlang/veer/internal/lexer"
	"github.com/veerlang/veer/internal/runtime"
)

// blockFrame is one of the four kinds described in §3.4. Each records
// enough state for the block engine to decide, at the matching `end`,
// whether to loop or close.
type blockFrame interface {
	header() int
}

type ifFrame struct {
	headerLine int
	taken      bool
}

func (f *ifFrame) header() int { return f.headerLine }

type whileFrame struct {
	headerLine int
}

func (f *whileFrame) header() int { return f.headerLine }

type forFrame struct {
	headerLine int
	iterName   string
	list       *runtime.ListValue
	index      int // 1-based index of the currently bound element
}

func (f *forFrame) header() int { return f.headerLine }

type repeatFrame struct {
	headerLine int
	iterName   string // empty if the loop has no bound iterator ("as NAME" omitted)
	total      int
	iteration  int
}

func (f *repeatFrame) header() int { return f.headerLine }

// headerKeywords are the commands that open a block, counted by the
// matching-end scanner's nesting counter (§4.F).
var headerKeywords = map[string]bool{
	"if": true, "while": true, "for": true, "repeat": true, "function": true,
}

// findMatchingEnd scans forward from just after an opening header,
// returning the 0-based index of the matching `end`. If stopAtElse is
// true, the scan also stops at a sibling `else` when the nesting
// counter is exactly one (used when an `if` needs its else arm).
// The scan is comment- and quote-aware because it reclassifies each
// line with the same lexer used by the main loop (§4.F, final note).
func findMatchingEnd(lines []string, start int, stopAtElse bool) (int, error) {
	nesting := 1
	for i := start; i < len(lines); i++ {
		cl := lexer.Classify(lines[i])
		if cl.Blank {
			continue
		}
		switch {
		case headerKeywords[cl.Command]:
			nesting++
		case cl.Command == "end":
			nesting--
			if nesting == 0 {
				return i, nil
			}
		case stopAtElse && cl.Command == "else" && nesting == 1:
			return i, nil
		}
	}
	return 0, &runtime.SyntaxError{Message: "missing matching 'end'"}
}

// stripThen removes a mandatory trailing "then" from an `if`/`while`
// header's tail, per their grammar in §4.E.
func stripThen(tail string) string {
	tail = strings.TrimSpace(tail)
	tail = strings.TrimSuffix(tail, "then")
	return strings.TrimSpace(tail)
}
