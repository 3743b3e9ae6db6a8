package pathtree

import "fmt"

// Maybe holds either a value of type V or nothing.
// Nothing is distinct from every value of V, including its zero value.
// The zero value of Maybe is nothing.
type Maybe[V any] struct {
	value V
	ok    bool
}

// Some returns a Maybe holding v.
func Some[V any](v V) Maybe[V] {
	return Maybe[V]{value: v, ok: true}
}

// None returns an empty Maybe.
func None[V any]() Maybe[V] {
	return Maybe[V]{}
}

// Get returns the held value and whether there is one.
func (m Maybe[V]) Get() (V, bool) {
	return m.value, m.ok
}

func (m Maybe[V]) IsSome() bool { return m.ok }
func (m Maybe[V]) IsNone() bool { return !m.ok }

// OrElse returns the held value, or v if m is empty.
func (m Maybe[V]) OrElse(v V) V {
	if m.ok {
		return m.value
	}
	return v
}

func (m Maybe[V]) String() string {
	if !m.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

// presence is 1 for a held value and 0 otherwise.
func (m Maybe[V]) presence() int {
	if m.ok {
		return 1
	}
	return 0
}

// FillResult is what a FillProvider returns at each level of a FillPath
// walk: either a value to assign (which may be None) or a request to stop.
type FillResult[V any] struct {
	value Maybe[V]
	stop  bool
}

// Continue assigns v at the current level and moves on to the next one.
func Continue[V any](v Maybe[V]) FillResult[V] {
	return FillResult[V]{value: v}
}

// ContinueWith is Continue(Some(v)).
func ContinueWith[V any](v V) FillResult[V] {
	return FillResult[V]{value: Some(v)}
}

// Stop ends the walk without touching the current level.
func Stop[V any]() FillResult[V] {
	return FillResult[V]{stop: true}
}

// Stopped reports whether r ends the walk.
func (r FillResult[V]) Stopped() bool { return r.stop }

// Value returns the value r assigns. It is None for a stop.
func (r FillResult[V]) Value() Maybe[V] { return r.value }
