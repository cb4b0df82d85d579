// Package seq wraps already-read sequences (of characters, of lines)
// into a forward cursor with direct indexed access.
package seq

// Sequence owns a slice and a cursor over it. The slice contents are
// never modified, only the cursor moves.
type Sequence[T any] struct {
	index int
	inner []T
}

// Chars is a sequence of Unicode scalar values.
type Chars = Sequence[rune]

// Lines is a sequence of lines of text, without terminators.
type Lines = Sequence[string]

// From takes ownership of src: callers must not modify it afterwards.
func From[T any](src []T) *Sequence[T] {
	return &Sequence[T]{
		index: 0,
		inner: src,
	}
}

func (s *Sequence[T]) First() (T, bool) {
	return s.Get(0)
}

func (s *Sequence[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= len(s.inner) {
		var zero T
		return zero, false
	}
	return s.inner[idx], true
}

func (s *Sequence[T]) Len() int {
	return len(s.inner)
}

// Next moves the cursor forward, then returns the element under it.
// The cursor starts on index 0 and moves before the first read, so
// iteration begins at index 1: use First or Get(0) for the first element.
func (s *Sequence[T]) Next() (T, bool) {
	var v T
	var ok bool
	s.index, v, ok = step(s.inner, s.index)
	return v, ok
}

func step[T any](inner []T, index int) (int, T, bool) {
	if index < len(inner) {
		index++
	}
	if index < len(inner) {
		return index, inner[index], true
	}
	var zero T
	return index, zero, false
}
