package runtime

import "testing"

func TestLookupUnbound(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Lookup("x"); err == nil {
		t.Fatal("Lookup of unbound name should fail")
	}
}

func TestAssignCreatesInInnermostWhenUnbound(t *testing.T) {
	env := NewEnvironment()
	env.PushScope()
	env.Assign("x", &IntegerValue{Value: 1})

	env.PopScope()
	if env.Has("x") {
		t.Fatal("Assign on an unbound name should have created it in the scope active at the time, not the global scope")
	}
}

func TestAssignUpdatesExistingOuterScope(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &IntegerValue{Value: 1})
	env.PushScope()
	env.Assign("x", &IntegerValue{Value: 2})
	env.PopScope()

	v, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v.(*IntegerValue).Value != 2 {
		t.Fatalf("x = %v, want 2 (Assign should update the existing global binding)", v)
	}
}

func TestDefineShadowsOuterBinding(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &IntegerValue{Value: 1})
	env.PushScope()
	env.Define("x", &IntegerValue{Value: 99})

	v, _ := env.Lookup("x")
	if v.(*IntegerValue).Value != 99 {
		t.Fatalf("x = %v, want 99 (Define must shadow in the innermost scope)", v)
	}

	env.PopScope()
	v, _ = env.Lookup("x")
	if v.(*IntegerValue).Value != 1 {
		t.Fatalf("x = %v, want 1 (outer binding must be unaffected by the shadow)", v)
	}
}

func TestLookupScansInnermostToOutermost(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &IntegerValue{Value: 1})
	env.PushScope()
	env.PushScope()
	env.Define("x", &IntegerValue{Value: 2})

	v, _ := env.Lookup("x")
	if v.(*IntegerValue).Value != 2 {
		t.Fatalf("Lookup found %v, want the innermost binding (2)", v)
	}
}
