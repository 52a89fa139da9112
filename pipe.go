package pipes

// Pipe is the contract for a single processing stage: one input item in, one
// output item out, per call. Implementations may keep whatever internal state
// they need between calls, but all of it is owned by the value itself.
//
// Next is synchronous and runs to completion. The contract carries no error
// channel; a stage that can fail encodes failure in its output type (see
// Result). A Pipe instance assumes a single caller at a time — any
// synchronization is the implementation's own concern.
type Pipe[I, O any] interface {
	Next(in I) O
}

// Unit is the trigger type for stages whose input carries no information,
// such as pull sources.
type Unit struct{}

// Trigger is the canonical Unit value.
var Trigger = Unit{}

// Resetter is implemented by pipes that can rewind to the state they had
// before the first call to Next. Combinators in this package propagate Reset
// to every sub-pipe that supports it; pipes that cannot rewind simply do not
// implement the interface.
type Resetter interface {
	Reset()
}

// Reset rewinds p if it implements Resetter and reports whether it did.
func Reset(p any) bool {
	r, ok := p.(Resetter)
	if ok {
		r.Reset()
	}
	return ok
}
