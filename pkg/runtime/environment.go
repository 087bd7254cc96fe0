package runtime

import "sort"

// Environment provides lexical scoping for Lyre runtime values. A frame's
// bindings are fixed at construction: extending a scope allocates a child
// frame and never touches the parent, so frames can be shared freely
// between closures and nested scopes.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a frame with the given bindings, optionally
// nested under a parent. The bindings map is copied.
func NewEnvironment(parent *Environment, bindings map[string]Value) *Environment {
	values := make(map[string]Value, len(bindings))
	for name, value := range bindings {
		values[name] = value
	}
	return &Environment{values: values, parent: parent}
}

// Parent exposes the lexical parent (nil at the root).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Get retrieves a binding, searching outward through the scope chain so
// that inner frames shadow outer ones. A miss at the root fails with
// UnboundVariable.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, NewUnboundVariable(name)
}

// Extend allocates a child frame holding exactly the given bindings.
func (e *Environment) Extend(bindings map[string]Value) *Environment {
	return NewEnvironment(e, bindings)
}

// Snapshot returns a copy of this frame's own bindings (parents excluded).
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns this frame's binding names in sorted order (useful for
// determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
