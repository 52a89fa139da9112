package pipes

// Result is a success-or-failure output item. The Pipe contract has no error
// channel, so a stage that can fail outputs Result values instead; downstream
// stages and callers decide what a carried error means. The composition layer
// never interprets it.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result carrying err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Unwrap returns the held value and error.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Must returns the held value, panicking if the Result carries an error.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic("pipes: Must called on failed Result: " + r.err.Error())
	}
	return r.value
}

// LiftErr adapts a fallible function into a pipe that outputs Results. It is
// the bridge for the common func(I) (O, error) processor signature.
func LiftErr[I, O any](fn func(I) (O, error)) Func[I, Result[O]] {
	return func(in I) Result[O] {
		v, err := fn(in)
		if err != nil {
			return Err[O](err)
		}
		return Ok(v)
	}
}
