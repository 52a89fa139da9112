package sources

import (
	"github.com/elastiflow/pipes"
)

// counter outputs 0, 1, 2, … without end.
type counter struct {
	index int
}

// Counter creates an unbounded source over the indices 0, 1, 2, …. Every
// output is present, so it composes cleanly with pipes.MustSome.
func Counter() pipes.Pipe[pipes.Unit, pipes.Option[int]] {
	return &counter{}
}

// Next outputs the current index and counts up.
func (s *counter) Next(pipes.Unit) pipes.Option[int] {
	v := s.index
	s.index++
	return pipes.Some(v)
}

// Reset rewinds the counter to zero.
func (s *counter) Reset() {
	s.index = 0
}
