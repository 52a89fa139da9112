package pipes

// Func adapts an ordinary function into a stateless Pipe. It holds nothing
// beyond the function itself, so repeated calls with the same input yield the
// same output unless the function closes over external state.
type Func[I, O any] func(I) O

// Next applies the wrapped function.
func (f Func[I, O]) Next(in I) O {
	return f(in)
}

// Lift wraps fn as a Func with the type parameters inferred from its
// signature. Useful for trivial inline stages where a named type would be
// ceremony:
//
//	double := pipes.Lift(func(v int) int { return v * 2 })
func Lift[I, O any](fn func(I) O) Func[I, O] {
	return fn
}
