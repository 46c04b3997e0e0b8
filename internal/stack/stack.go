// Package stack provides the last-in-first-out buffer used by the
// expression pipeline. It is a thin wrapper over a Go slice.
package stack

// Stack is a LIFO buffer. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity elements.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(capacity, 0))}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	return s.items[n-1], true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
