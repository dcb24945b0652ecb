// Package monostack stack type, ordering policies and sentinel errors.
package monostack

import (
	"cmp"
	"errors"
)

// ErrEmptyStack is returned by Pop and Peek on an empty stack.
var ErrEmptyStack = errors.New("monostack: pop from empty stack")

// Direction selects the ordering maintained from bottom to top.
type Direction int

const (
	// NonDecreasing keeps bottom ≤ … ≤ top.
	NonDecreasing Direction = iota

	// NonIncreasing keeps bottom ≥ … ≥ top.
	NonIncreasing
)

// Stack is a monotonic stack over ordered values. The zero value is not
// usable; construct with New.
type Stack[T cmp.Ordered] struct {
	items []T
	dir   Direction
}

// New returns an empty monotonic stack maintaining dir order.
func New[T cmp.Ordered](dir Direction) *Stack[T] {
	return &Stack[T]{dir: dir}
}

// Push evicts from the top while the top violates the ordering relative
// to v, then appends v. Evicted elements are discarded.
func (s *Stack[T]) Push(v T) {
	for len(s.items) > 0 && s.violates(s.items[len(s.items)-1], v) {
		s.items = s.items[:len(s.items)-1]
	}
	s.items = append(s.items, v)
}

// violates reports whether keeping top under incoming would break the
// configured ordering.
func (s *Stack[T]) violates(top, incoming T) bool {
	if s.dir == NonDecreasing {
		return incoming < top
	}

	return incoming > top
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack when the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T

		return zero, ErrEmptyStack
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return top, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack when the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T

		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// Len returns the number of stored elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Direction returns the ordering policy fixed at construction.
func (s *Stack[T]) Direction() Direction { return s.dir }

// Values returns a bottom-to-top copy of the stored elements.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
