package pipes

// Decorations: convenience combinators built from the contract itself. Where
// a decoration is pure re-plumbing it is defined as a composition of Connect
// and Lift rather than as a new mechanism. Go methods cannot introduce type
// parameters, so the whole family is spelled as package-level functions.

// MapOutput post-processes every output of p with fn:
//
//	MapOutput(p, fn).Next(x) == fn(p.Next(x))
func MapOutput[I, O, R any](p Pipe[I, O], fn func(O) R) Pipe[I, R] {
	return Connect[I, O, R](p, Lift(fn))
}

// MapInput pre-processes every input of p with fn:
//
//	MapInput(fn, p).Next(x) == p.Next(fn(x))
func MapInput[H, I, O any](fn func(H) I, p Pipe[I, O]) Pipe[H, O] {
	return Connect[H, I, O](Lift(fn), p)
}

// MustSome unwraps the Option outputs of p, panicking on an absent value.
// Use it where exhaustion is impossible by construction, such as behind an
// unbounded source.
func MustSome[I, T any](p Pipe[I, Option[T]]) Pipe[I, T] {
	return MapOutput(p, Option[T].Must)
}

// optional short-circuits absent inputs around an inner pipe.
type optional[I, O any] struct {
	pipe Pipe[I, O]
}

// Optional lifts p to operate on Option items. A present input is unwrapped,
// stepped through p and rewrapped; an absent input is passed through without
// stepping p at all. Composed after a finite source, it lets a per-item stage
// ride out exhaustion untouched.
func Optional[I, O any](p Pipe[I, O]) Pipe[Option[I], Option[O]] {
	return &optional[I, O]{pipe: p}
}

func (o *optional[I, O]) Next(in Option[I]) Option[O] {
	v, ok := in.Get()
	if !ok {
		return None[O]()
	}
	return Some(o.pipe.Next(v))
}

func (o *optional[I, O]) Reset() {
	Reset(o.pipe)
}

// Indexed pairs an output item with its zero-based position.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerator counts the outputs of an inner pipe.
type Enumerator[I, O any] struct {
	pipe     Pipe[I, O]
	progress int
}

// Enumerate decorates p so that each output carries a zero-based index,
// counted up by one per call.
func Enumerate[I, O any](p Pipe[I, O]) *Enumerator[I, O] {
	return &Enumerator[I, O]{pipe: p}
}

// Next steps the inner pipe and tags its output with the current index.
func (e *Enumerator[I, O]) Next(in I) Indexed[O] {
	out := Indexed[O]{Index: e.progress, Value: e.pipe.Next(in)}
	e.progress++
	return out
}

// Reset rewinds the index to zero along with the inner pipe.
func (e *Enumerator[I, O]) Reset() {
	e.progress = 0
	Reset(e.pipe)
}

// Pair holds the two halves of a joined or bypassed item.
type Pair[A, B any] struct {
	First  A
	Second B
}

// bypass returns each input alongside the inner pipe's output.
type bypass[I, O any] struct {
	pipe Pipe[I, O]
}

// Bypass decorates p so that each output is the Pair of the original input
// and p's output for it. The input is handed back as-is, which for value
// types is a copy; pointer or slice inputs are shared with the inner pipe.
func Bypass[I, O any](p Pipe[I, O]) Pipe[I, Pair[I, O]] {
	return &bypass[I, O]{pipe: p}
}

func (b *bypass[I, O]) Next(in I) Pair[I, O] {
	return Pair[I, O]{First: in, Second: b.pipe.Next(in)}
}

func (b *bypass[I, O]) Reset() {
	Reset(b.pipe)
}

// joined steps two independent pipes side by side.
type joined[I0, O0, I1, O1 any] struct {
	p0 Pipe[I0, O0]
	p1 Pipe[I1, O1]
}

// Join pairs two pipes into one that takes a Pair of inputs and yields a
// Pair of outputs, stepping each sub-pipe once per call, first then second.
func Join[I0, O0, I1, O1 any](p0 Pipe[I0, O0], p1 Pipe[I1, O1]) Pipe[Pair[I0, I1], Pair[O0, O1]] {
	return &joined[I0, O0, I1, O1]{p0: p0, p1: p1}
}

func (j *joined[I0, O0, I1, O1]) Next(in Pair[I0, I1]) Pair[O0, O1] {
	return Pair[O0, O1]{First: j.p0.Next(in.First), Second: j.p1.Next(in.Second)}
}

func (j *joined[I0, O0, I1, O1]) Reset() {
	Reset(j.p0)
	Reset(j.p1)
}
