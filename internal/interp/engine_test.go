package interp

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	e := New(&buf, strings.NewReader(""))
	err := e.Run(source)
	return buf.String(), err
}

func mustRun(t *testing.T, source string) string {
	t.Helper()
	out, err := run(t, source)
	if err != nil {
		t.Fatalf("Run(%q): %v", source, err)
	}
	return out
}

func TestSayArithmetic(t *testing.T) {
	out := mustRun(t, `
set total to 2 + 3
say total
`)
	if out != "5\n" {
		t.Fatalf("out = %q, want \"5\\n\"", out)
	}
}

func TestStringConcatenationViaPlus(t *testing.T) {
	out := mustRun(t, `say "hello, " + "world"`)
	if out != "hello, world\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestIfElse(t *testing.T) {
	out := mustRun(t, `
set x to 10
if x > 5 then
say "big"
else
say "small"
end
`)
	if out != "big\n" {
		t.Fatalf("out = %q, want \"big\\n\"", out)
	}
}

func TestIfElseFalseBranch(t *testing.T) {
	out := mustRun(t, `
set x to 1
if x > 5 then
say "big"
else
say "small"
end
`)
	if out != "small\n" {
		t.Fatalf("out = %q, want \"small\\n\"", out)
	}
}

func TestWhileLoop(t *testing.T) {
	out := mustRun(t, `
set i to 0
while i < 3 then
say i
set i to i + 1
end
`)
	if out != "0\n1\n2\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestRepeatWithIterator(t *testing.T) {
	out := mustRun(t, `
repeat 3 times as n
say n
end
`)
	if out != "1\n2\n3\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestRepeatZeroTimesSkipsBody(t *testing.T) {
	out := mustRun(t, `
repeat 0 times
say "never"
end
say "after"
`)
	if out != "after\n" {
		t.Fatalf("out = %q, want body to be skipped entirely", out)
	}
}

func TestForEachOverList(t *testing.T) {
	out := mustRun(t, `
set items to [1, 2, 3]
for each n in items
say n
end
`)
	if out != "1\n2\n3\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestForEachEmptyListSkipsBody(t *testing.T) {
	out := mustRun(t, `
set items to []
for each n in items
say n
end
say "done"
`)
	if out != "done\n" {
		t.Fatalf("out = %q, want body skipped for an empty list", out)
	}
}

func TestFunctionWithParamsAndReturn(t *testing.T) {
	out := mustRun(t, `
function add with a, b then
return a + b
end

set result to call add with 2, 3
say result
`)
	if out != "5\n" {
		t.Fatalf("out = %q, want \"5\\n\"", out)
	}
}

func TestBareCallIgnoresReturnValue(t *testing.T) {
	out := mustRun(t, `
function greet then
say "hi"
return
end

call greet
say "after"
`)
	if out != "hi\nafter\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestAppendAndIndexList(t *testing.T) {
	out := mustRun(t, `
set items to [1, 2]
append 3 to items
say items[3]
`)
	if out != "3\n" {
		t.Fatalf("out = %q, want \"3\\n\"", out)
	}
}

func TestListAliasingAcrossVariables(t *testing.T) {
	out := mustRun(t, `
set a to [1]
set b to a
append 2 to a
say b[2]
`)
	if out != "2\n" {
		t.Fatalf("out = %q, want \"2\\n\" (b aliases a, so b must observe the append)", out)
	}
}

func TestSwap(t *testing.T) {
	out := mustRun(t, `
set a to 1
set b to 2
swap a and b
say a
say b
`)
	if out != "2\n1\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestNestedIfInsideWhile(t *testing.T) {
	out := mustRun(t, `
set i to 0
while i < 4 then
if i is 2 then
say "two"
end
set i to i + 1
end
`)
	if out != "two\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestRuntimeErrorCarriesLineNumber(t *testing.T) {
	_, err := run(t, "say 1\nsay 1 / 0\n")
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Line 2") {
		t.Fatalf("err = %v, want it to name line 2", err)
	}
}

func TestNameNotFoundIsFatal(t *testing.T) {
	_, err := run(t, "say missing")
	if err == nil || !strings.Contains(err.Error(), "name not found") {
		t.Fatalf("err = %v, want a name-not-found runtime error", err)
	}
}

func TestUnmatchedEndIsSyntaxError(t *testing.T) {
	_, err := run(t, "end")
	if err == nil || !strings.Contains(err.Error(), "unexpected 'end'") {
		t.Fatalf("err = %v, want unexpected 'end'", err)
	}
}

func TestCommentsAndBlankLinesAreSkipped(t *testing.T) {
	out := mustRun(t, `
# a leading comment

say "hi"  # trailing comment
`)
	if out != "hi\n" {
		t.Fatalf("out = %q", out)
	}
}
