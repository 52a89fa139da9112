package sources

import (
	"github.com/elastiflow/pipes"
)

// array is a source that outputs the values of a slice, one per trigger.
type array[T any] struct {
	values []T
	index  int
}

// FromArray creates a finite source over the values of a slice. Each trigger
// outputs the next element as a present Option; once the slice is spent every
// further trigger outputs the absent Option. The backing slice is retained,
// so the source is restartable via Reset.
func FromArray[T any](values []T) pipes.Pipe[pipes.Unit, pipes.Option[T]] {
	return &array[T]{values: values}
}

// Next outputs the next element, or the absent Option when the slice is
// spent.
func (s *array[T]) Next(pipes.Unit) pipes.Option[T] {
	if s.index >= len(s.values) {
		return pipes.None[T]()
	}
	v := s.values[s.index]
	s.index++
	return pipes.Some(v)
}

// Reset rewinds the source to the first element.
func (s *array[T]) Reset() {
	s.index = 0
}
