package runtime

import "testing"

func TestGetSearchesOutward(t *testing.T) {
	root := NewEnvironment(nil, map[string]Value{
		"a": NumberValue{Val: 1},
		"b": NumberValue{Val: 2},
	})
	child := root.Extend(map[string]Value{
		"b": NumberValue{Val: 20},
	})

	val, err := child.Get("a")
	if err != nil {
		t.Fatalf("lookup through parent failed: %v", err)
	}
	if num := val.(NumberValue); num.Val != 1 {
		t.Fatalf("expected 1, got %v", num.Val)
	}

	val, err = child.Get("b")
	if err != nil {
		t.Fatalf("shadowed lookup failed: %v", err)
	}
	if num := val.(NumberValue); num.Val != 20 {
		t.Fatalf("inner frame must shadow outer, got %v", num.Val)
	}
}

func TestGetFailsAtRoot(t *testing.T) {
	root := NewEnvironment(nil, nil)
	_, err := root.Get("missing")
	if err == nil {
		t.Fatalf("expected unbound variable error")
	}
	evalErr, ok := AsEvalError(err)
	if !ok || evalErr.Code != CodeUnboundVariable || evalErr.Name != "missing" {
		t.Fatalf("unexpected error %#v", err)
	}
}

func TestExtendDoesNotMutateParent(t *testing.T) {
	root := NewEnvironment(nil, map[string]Value{
		"x": NumberValue{Val: 1},
	})
	child := root.Extend(map[string]Value{
		"x": NumberValue{Val: 2},
		"y": NumberValue{Val: 3},
	})
	if child.Parent() != root {
		t.Fatalf("child must link to its parent")
	}
	if keys := root.Keys(); len(keys) != 1 || keys[0] != "x" {
		t.Fatalf("parent frame changed: %v", keys)
	}
	val, _ := root.Get("x")
	if num := val.(NumberValue); num.Val != 1 {
		t.Fatalf("parent binding changed: %v", num.Val)
	}
	if _, err := root.Get("y"); err == nil {
		t.Fatalf("parent must not see child bindings")
	}
}

func TestNewEnvironmentCopiesBindings(t *testing.T) {
	bindings := map[string]Value{"x": NumberValue{Val: 1}}
	env := NewEnvironment(nil, bindings)
	bindings["x"] = NumberValue{Val: 99}
	bindings["y"] = NumberValue{Val: 2}

	val, err := env.Get("x")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if num := val.(NumberValue); num.Val != 1 {
		t.Fatalf("frame shares the caller's map: %v", num.Val)
	}
	if _, err := env.Get("y"); err == nil {
		t.Fatalf("frame shares the caller's map")
	}
}

func TestSnapshotExcludesParents(t *testing.T) {
	root := NewEnvironment(nil, map[string]Value{"a": NumberValue{Val: 1}})
	child := root.Extend(map[string]Value{"b": NumberValue{Val: 2}})
	snap := child.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected only own bindings, got %v", snap)
	}
	if _, ok := snap["b"]; !ok {
		t.Fatalf("missing own binding in %v", snap)
	}
}
