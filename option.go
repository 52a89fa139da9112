package pipes

// Option is a value that is either present or absent. Pull sources output
// Option items, with the absent value signalling exhaustion; exhaustion is a
// normal outcome, not a failure.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Must returns the held value, panicking if it is absent. Reserve it for
// cases where absence is impossible by construction; the panic signals a
// broken invariant, not a condition to recover from.
func (o Option[T]) Must() T {
	if !o.ok {
		panic("pipes: Must called on absent Option")
	}
	return o.value
}

// OrZero returns the held value, or the zero value if absent.
func (o Option[T]) OrZero() T {
	return o.value
}
