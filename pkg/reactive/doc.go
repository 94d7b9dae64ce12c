// Package reactive provides the external signal primitive that Glint
// components can subscribe to.
//
// Signal[T] is a reactive value container:
//
//	count := reactive.NewSignal(0)
//	value := count.Get()  // Read current value
//	count.Set(5)          // Write (notifies subscribers if changed)
//	count.Update(func(n int) int { return n + 1 })
//
// Subscribe registers a callback for future values and returns the
// unsubscribe function:
//
//	stop := count.Subscribe(func(n int) { fmt.Println("now", n) })
//	defer stop()
//
// Erased returns a type-erased view of the signal whose method set
// satisfies the component core's Source interface, so any Signal[T] can be
// bridged into a component without the component package knowing T.
package reactive
