// Package pipes provides a minimal contract for synchronous, single-step
// stream processing stages and a small algebra for composing them.
//
// The heart of the package is the Pipe interface: one input item in, one
// output item out, per call. Granular stages can be implemented and tested
// in isolation, then connected into larger pipes that satisfy the same
// contract. A pipeline is a value, not a running process — it is assembled
// once, statically typed end to end, and then driven by whoever owns it,
// one explicit Next call at a time. The package schedules nothing, buffers
// nothing across calls, and runs nothing concurrently; for channel-fed
// concurrent pipelines, see github.com/elastiflow/pipelines.
//
// Implementing Pipe takes a type with a Next method:
//
//	// phase maps a running index onto a periodic 0.0..1.0 ramp.
//	type phase struct {
//		period int
//	}
//
//	func (p *phase) Next(index int) float64 {
//		return float64(index%p.period) / float64(p.period)
//	}
//
// Stages connect with Connect, stateless stages lift straight from
// functions, and pull sources (iterators, slices, channels) join in through
// adapters that output Option items until they are exhausted. Adjoining item
// types are checked by the compiler; when the operands are concrete types the
// type arguments are spelled out:
//
//	index := pipes.MustSome[pipes.Unit, int](sources.Counter())
//	ramp := pipes.Connect[pipes.Unit, int, float64](index, &phase{period: 4})
//	square := pipes.Connect[pipes.Unit, float64, float64](ramp, pipes.Lift(func(v float64) float64 {
//		if v < 0.5 {
//			return -1.0
//		}
//		return 1.0
//	}))
//
//	for i := 0; i < 8; i++ {
//		fmt.Println(square.Next(pipes.Trigger))
//	}
//
// Decorations such as MapOutput, MapInput, Enumerate and Optional derive new
// pipes from existing ones without introducing any further mechanism.
package pipes
