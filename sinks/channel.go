package sinks

import (
	"github.com/elastiflow/pipes"
)

// channelSink forwards each input to a send channel.
type channelSink[T any] struct {
	out chan<- T
}

// ToChannel creates a sink that sends each input value to ch, blocking until
// the send completes. Closing ch remains the caller's responsibility.
func ToChannel[T any](ch chan<- T) pipes.Pipe[T, pipes.Unit] {
	return &channelSink[T]{out: ch}
}

// Next sends the value.
func (s *channelSink[T]) Next(v T) pipes.Unit {
	s.out <- v
	return pipes.Trigger
}
