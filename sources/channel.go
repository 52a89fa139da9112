package sources

import (
	"github.com/elastiflow/pipes"
)

// channelSource pulls one value per trigger from a receive channel.
type channelSource[T any] struct {
	in   <-chan T
	done bool
}

// FromChannel creates a source that receives one value from ch per trigger,
// blocking until a value arrives. The source is exhausted when ch is closed
// and drained; exhaustion is terminal.
func FromChannel[T any](ch <-chan T) pipes.Pipe[pipes.Unit, pipes.Option[T]] {
	return &channelSource[T]{in: ch}
}

// Next receives the next value, or outputs the absent Option forever once
// the channel has closed.
func (s *channelSource[T]) Next(pipes.Unit) pipes.Option[T] {
	if s.done {
		return pipes.None[T]()
	}
	v, ok := <-s.in
	if !ok {
		s.done = true
		return pipes.None[T]()
	}
	return pipes.Some(v)
}
