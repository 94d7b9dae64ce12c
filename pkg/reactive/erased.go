package reactive

// Erased is a type-erased view of a Signal[T]. Its method set satisfies the
// component core's Source interface structurally, so components can bridge
// any signal without a dependency from this package on the component core.
type Erased struct {
	value     func() any
	subscribe func(func(any)) func()
}

// Erased returns a type-erased view of the signal.
func (s *Signal[T]) Erased() *Erased {
	return &Erased{
		value: func() any { return s.Get() },
		subscribe: func(fn func(any)) func() {
			return s.Subscribe(func(v T) { fn(v) })
		},
	}
}

// Value returns the signal's current value.
func (e *Erased) Value() any { return e.value() }

// Subscribe registers fn for future values and returns the unsubscribe
// function.
func (e *Erased) Subscribe(fn func(any)) func() {
	return e.subscribe(fn)
}
