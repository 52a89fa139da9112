package pipes

import "iter"

// SeqSource adapts a pull iterator into a pipe. Its input is a Unit trigger
// and each call to Next pulls exactly one element, outputting it as a present
// Option, or the absent Option once the sequence ends.
//
// Exhaustion is terminal: after the first absent output the underlying
// iterator is released and never pulled again, and every further call keeps
// outputting the absent Option. SeqSource does not implement Resetter; a
// restartable pipeline needs a restartable source such as sources.FromArray.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq wraps a standard iterator sequence as a SeqSource.
func FromSeq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

// FromPull wraps a raw pull function as a SeqSource. stop may be nil; when
// present it is called exactly once, on exhaustion.
func FromPull[T any](next func() (T, bool), stop func()) *SeqSource[T] {
	return &SeqSource[T]{next: next, stop: stop}
}

// Next pulls the next element, or outputs the absent Option forever once the
// sequence is exhausted.
func (s *SeqSource[T]) Next(Unit) Option[T] {
	if s.done {
		return None[T]()
	}
	v, ok := s.next()
	if !ok {
		s.exhaust()
		return None[T]()
	}
	return Some(v)
}

func (s *SeqSource[T]) exhaust() {
	s.done = true
	s.next = nil
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

// ToSeq drives p as an iterator sequence, triggering it once per element
// until it outputs an absent Option. It is the inverse of FromSeq and lets a
// whole pipeline sit on the right-hand side of a range statement.
func ToSeq[T any](p Pipe[Unit, Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := p.Next(Trigger).Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains p into a slice. It does not return on an unbounded pipe.
func Collect[T any](p Pipe[Unit, Option[T]]) []T {
	var out []T
	for v := range ToSeq(p) {
		out = append(out, v)
	}
	return out
}
