package component

// Cleanup is an optional function returned by an effect callback. It runs
// immediately before that effect's next invocation and is not called at any
// other time.
type Cleanup func()

// effectEntry is one (callback, dependency producer) registration plus the
// dependency values observed at its previous run.
type effectEntry struct {
	fn      func() Cleanup
	deps    func() []any
	prev    []any
	hasRun  bool
	cleanup Cleanup
}

// AddEffect appends an effect registration. The callback is not invoked
// here; it first runs on the next effect pass (after mount or a state
// update). deps must return a sequence of stable arity; elements are
// compared positionally by identity between runs, and the callback runs
// only when one differs. A nil deps registers an effect that runs on every
// pass.
func (c *Core) AddEffect(fn func() Cleanup, deps func() []any) {
	c.effects = append(c.effects, effectEntry{fn: fn, deps: deps})
}

// runEffects walks the registry in registration order, re-running each
// effect whose dependencies changed since its previous run. The first run
// after registration always executes. Execution is synchronous and
// unisolated: a panicking callback aborts the rest of the pass.
func (c *Core) runEffects() {
	for i := range c.effects {
		e := &c.effects[i]

		var cur []any
		if e.deps != nil {
			cur = e.deps()
		}
		if e.hasRun && e.deps != nil && sameDeps(e.prev, cur) {
			continue
		}

		if e.cleanup != nil {
			e.cleanup()
			e.cleanup = nil
		}
		e.cleanup = e.fn()
		e.prev = cur
		e.hasRun = true
	}
}

// sameDeps compares two dependency sequences positionally by identity.
func sameDeps(prev, cur []any) bool {
	if len(prev) != len(cur) {
		return false
	}
	for i := range cur {
		if !identical(prev[i], cur[i]) {
			return false
		}
	}
	return true
}
