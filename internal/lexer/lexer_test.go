package lexer

import "testing"

func TestClassifyBasic(t *testing.T) {
	cl := Classify(`say "hello"`)
	if cl.Command != "say" || cl.Tail != `"hello"` {
		t.Fatalf("Classify = %+v", cl)
	}
}

func TestClassifyBlank(t *testing.T) {
	for _, raw := range []string{"", "   ", "# just a comment"} {
		if !Classify(raw).Blank {
			t.Errorf("Classify(%q).Blank = false, want true", raw)
		}
	}
}

func TestClassifyCommandOnly(t *testing.T) {
	cl := Classify("end")
	if cl.Command != "end" || cl.Tail != "" {
		t.Fatalf("Classify(\"end\") = %+v", cl)
	}
}

func TestStripCommentIgnoresHashInQuotes(t *testing.T) {
	got := StripComment(`say "price: #1"  # trailing`)
	want := `say "price: #1"  `
	if got != want {
		t.Fatalf("StripComment = %q, want %q", got, want)
	}
}

func TestSplitOutsideQuotes(t *testing.T) {
	parts := SplitOutsideQuotes(`1, "a, b", 3`, ',')
	want := []string{"1", ` "a, b"`, " 3"}
	if len(parts) != len(want) {
		t.Fatalf("SplitOutsideQuotes = %#v, want %#v", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part %d = %q, want %q", i, parts[i], want[i])
		}
	}
}

func TestSplitKeywordStandaloneOnly(t *testing.T) {
	before, after, found := SplitKeyword("total to 5", "to")
	if !found || before != "total" || after != "5" {
		t.Fatalf("SplitKeyword = (%q, %q, %v)", before, after, found)
	}
}

func TestSplitKeywordDoesNotMatchSubstring(t *testing.T) {
	// "total" contains "to" but not as a standalone token.
	_, _, found := SplitKeyword("total 5", "to")
	if found {
		t.Fatal("SplitKeyword matched 'to' inside 'total'")
	}
}

func TestSplitKeywordMatchesFirstStandaloneOccurrence(t *testing.T) {
	// The first standalone "to" is the statement's own keyword; the one
	// inside the quoted string must not be split on instead.
	before, after, found := SplitKeyword(`set x to "go to the store"`, "to")
	if !found || before != "set x" || after != `"go to the store"` {
		t.Fatalf("SplitKeyword = (%q, %q, %v)", before, after, found)
	}
}

func TestIndexOutsideQuotesRightmost(t *testing.T) {
	idx := IndexOutsideQuotes("1+2-3", "+-*/")
	if idx != 3 || "1+2-3"[idx] != '-' {
		t.Fatalf("IndexOutsideQuotes = %d, want the rightmost '-' at index 3", idx)
	}
}

func TestIndexOutsideQuotesSkipsLeadingUnaryMinus(t *testing.T) {
	idx := IndexOutsideQuotes("-5", "+-*/")
	if idx != -1 {
		t.Fatalf("IndexOutsideQuotes(\"-5\") = %d, want -1 (leading '-' at position 0 is unary)", idx)
	}
}

func TestIndexOutsideQuotesIgnoresQuotedOperators(t *testing.T) {
	idx := IndexOutsideQuotes(`"a+b"`, "+-*/")
	if idx != -1 {
		t.Fatalf("IndexOutsideQuotes(%q) = %d, want -1 (operator is inside quotes)", `"a+b"`, idx)
	}
}
