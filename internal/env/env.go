// Package env implements the evaluator's de Bruijn environment: a stack
// of bound values, pushed and popped in scoped blocks that guarantee a
// matching pop on every exit path, including errors.
package env

import "github.com/MangoIV/polarity/internal/value"

// Env is a stack of values indexed by de Bruijn index: distance from the
// innermost binder. Index 0 is always the most recently pushed value.
type Env struct {
	values []value.Value
}

// Empty returns a fresh, empty environment.
func Empty() *Env { return &Env{} }

// Bound returns a fresh environment with vals already bound, vals[0]
// ending up at the highest index. Unlike WithBindings, the binding is
// not scoped to a callback: used where a closure's captured environment
// is built once from a fixed argument list and never mutated again
// (e.g. a top-level def/codef invocation evaluating its own body under
// no ambient environment, §4.2).
func Bound(vals []value.Value) *Env {
	cp := make([]value.Value, len(vals))
	copy(cp, vals)
	return &Env{values: cp}
}

// Lookup returns the value bound at de Bruijn index idx.
func (e *Env) Lookup(idx int) value.Value {
	return e.values[len(e.values)-1-idx]
}

// Depth reports how many values are currently bound. Used by tests to
// assert the environment-discipline invariant: depth on exit of a scoped
// block equals depth on entry.
func (e *Env) Depth() int { return len(e.values) }

// Clone returns a value-disjoint copy of e: mutating the returned
// environment (or the original) afterwards never affects the other. This
// is what a Closure snapshots at capture time (§4.2 "captured copy is
// disjoint from caller's env").
func (e *Env) Clone() value.Env {
	cp := make([]value.Value, len(e.values))
	copy(cp, e.values)
	return &Env{values: cp}
}

// WithBindings pushes vals (in order, so vals[0] ends up at the highest
// index) onto e, runs f, and restores e to its prior depth before
// returning — on every exit path, including f returning an error. This is
// the only way callers extend an environment; there is no public Push
// without a matching guaranteed pop.
func WithBindings[T any](e *Env, vals []value.Value, f func(*Env) (T, error)) (T, error) {
	base := len(e.values)
	e.values = append(e.values, vals...)
	defer func() { e.values = e.values[:base] }()
	return f(e)
}

// AsEnv recovers the concrete *Env from the value.Env interface a Closure
// stores, for use inside the eval package. Closures only ever capture
// environments built by this package, so the assertion cannot fail for
// well-formed programs.
func AsEnv(v value.Env) *Env {
	if v == nil {
		return Empty()
	}
	return v.(*Env)
}
