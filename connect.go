package pipes

// Connector glues two pipes end to end. It is itself a Pipe whose input is
// the first pipe's input and whose output is the second pipe's output.
type Connector[I, M, O any] struct {
	first  Pipe[I, M]
	second Pipe[M, O]
}

// Connect composes two pipes into one. The output type of the first must
// match the input type of the second; mismatches are compile errors.
//
// Each call to Next steps first, then second, exactly once each:
//
//	Connect(a, b).Next(x) == b.Next(a.Next(x))
//
// Composition is associative, so pipelines can be assembled incrementally in
// any grouping without changing behavior.
func Connect[I, M, O any](first Pipe[I, M], second Pipe[M, O]) *Connector[I, M, O] {
	return &Connector[I, M, O]{first: first, second: second}
}

// Next feeds the input through both pipes in order.
func (c *Connector[I, M, O]) Next(in I) O {
	return c.second.Next(c.first.Next(in))
}

// Reset rewinds both sub-pipes, where supported.
func (c *Connector[I, M, O]) Reset() {
	Reset(c.first)
	Reset(c.second)
}

// Identity returns a pipe that outputs its input unchanged.
func Identity[T any]() Pipe[T, T] {
	return Func[T, T](func(in T) T { return in })
}
