package interp

import (
	"strings"

	"github.com/veerlang/veer/internal/lexer"
)

// funcDef is the function table record from §3.3: where its body
// starts, and the parameter names it binds on call.
type funcDef struct {
	bodyStart int // 0-based index of the first body line
	params    []string
}

// callFrame is the call-stack record from §3.5: where to resume after
// return, and which variable (if any) should receive the return value.
type callFrame struct {
	returnPC      int
	targetBinding string
	hasTarget     bool
}

// preScanFunctions implements §4.G: walk every physical line once,
// registering each `function` header's name, parameters, and body
// start. A duplicate name's last definition wins.
func preScanFunctions(lines []string) map[string]*funcDef {
	functions := make(map[string]*funcDef)
	for i, raw := range lines {
		cl := lexer.Classify(raw)
		if cl.Command != "function" {
			continue
		}
		name, params := parseFunctionHeader(cl.Tail)
		if name == "" {
			continue
		}
		functions[name] = &funcDef{bodyStart: i + 1, params: params}
	}
	return functions
}

// parseFunctionHeader parses "NAME [with P1, P2, ...] then".
func parseFunctionHeader(tail string) (name string, params []string) {
	tail = strings.TrimSuffix(strings.TrimSpace(tail), "then")
	tail = strings.TrimSpace(tail)

	before, after, found := lexer.SplitKeyword(tail, "with")
	if !found {
		return strings.TrimSpace(tail), nil
	}
	name = strings.TrimSpace(before)
	for _, p := range strings.Split(after, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			params = append(params, p)
		}
	}
	return name, params
}
