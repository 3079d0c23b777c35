// Package veererr formats runtime errors with the source line they
// occurred on, grounded on the teacher's internal/errors package
// (position + message + source, rendered with a line-number header).
package veererr

import (
	"fmt"
	"strings"
)

// RuntimeError is a line-tagged, fatal interpreter error (§7). Every
// Mewar error kind is wrapped in one of these before it reaches the
// driver, so the line number travels with the underlying cause.
type RuntimeError struct {
	Line   int // 1-based source line
	Cause  error
	Source string // full program source, for verbose formatting
}

// Error renders exactly the §6 wire format:
// "Veer Runtime Error (Line N): MESSAGE".
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Veer Runtime Error (Line %d): %s", e.Line, e.Cause.Error())
}

// Unwrap exposes the underlying runtime error kind for errors.As/Is.
func (e *RuntimeError) Unwrap() error { return e.Cause }

// Verbose renders the error together with the offending source line,
// for the CLI's --verbose mode. This is an ambient diagnostic
// convenience beyond §6's minimal wire format.
func (e *RuntimeError) Verbose() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if line := sourceLine(e.Source, e.Line); line != "" {
		sb.WriteString(fmt.Sprintf("\n%4d | %s", e.Line, line))
	}
	return sb.String()
}

func sourceLine(source string, n int) string {
	if source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}

// UsageError signals a command-line misuse (a missing file argument) —
// distinct from a RuntimeError because it happens before the
// interpreter ever starts (§6). An unreadable source file is reported
// by the driver directly, not through this type.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }
