package component

// Source is an external reactive value the component can subscribe to.
// reactive.Erased satisfies it; any value source with these two methods
// works.
type Source interface {
	// Value returns the source's current value.
	Value() any

	// Subscribe registers fn for future values and returns the
	// unsubscribe function.
	Subscribe(fn func(any)) (unsubscribe func())
}

// AddSource subscribes the component to src. The source's current value is
// recorded in a slot indexed by registration order; each notification whose
// value is identical to the recorded one is ignored, otherwise the slot is
// updated and the component re-renders in place without firing hooks or
// effects.
//
// The returned unsubscribe function is the caller's responsibility;
// releasing the subscription is not tied to unmount.
func (c *Core) AddSource(src Source) func() {
	idx := len(c.observed)
	c.observed = append(c.observed, src.Value())

	return src.Subscribe(func(v any) {
		if identical(v, c.observed[idx]) {
			return
		}
		c.observed[idx] = v
		c.reRender()
	})
}
