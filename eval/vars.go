package eval

import "github.com/howerj/q"

// Variables is a named-variable environment for an Evaluator.
type Variables map[string]q.Q

// Set assigns name to v, overwriting any previous value.
func (v Variables) Set(name string, val q.Q) { v[name] = val }

// Get looks up name, reporting whether it was bound.
func (v Variables) Get(name string) (q.Q, bool) {
	if v == nil {
		return 0, false
	}
	val, ok := v[name]
	return val, ok
}

// Delete unbinds name, if it was bound.
func (v Variables) Delete(name string) { delete(v, name) }
