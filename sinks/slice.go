package sinks

// WriteState reports the outcome of writing one value into a bounded sink.
type WriteState int

const (
	// Written means the value was stored and capacity remains.
	Written WriteState = iota
	// Last means the value was stored into the final free slot.
	Last
	// Full means the sink was already full and the value was dropped.
	Full
)

func (s WriteState) String() string {
	switch s {
	case Written:
		return "written"
	case Last:
		return "last"
	case Full:
		return "full"
	}
	return ""
}

// SliceSink writes each input into the next free slot of a fixed buffer.
type SliceSink[T any] struct {
	buf   []T
	index int
}

// ToSlice creates a sink over buf. Each call to Next stores the input in
// order and reports whether capacity remains; inputs past the end of the
// buffer are dropped and reported as Full. The caller keeps ownership of buf
// and reads the results from it.
func ToSlice[T any](buf []T) *SliceSink[T] {
	return &SliceSink[T]{buf: buf}
}

// Next stores the value and reports the buffer state.
func (s *SliceSink[T]) Next(v T) WriteState {
	if s.index >= len(s.buf) {
		return Full
	}
	s.buf[s.index] = v
	s.index++
	if s.index == len(s.buf) {
		return Last
	}
	return Written
}

// Reset rewinds the write position to the start of the buffer.
func (s *SliceSink[T]) Reset() {
	s.index = 0
}
