package component

import (
	"fmt"
	"log/slog"

	"github.com/glint-ui/glint/pkg/dom"
)

// Props is a component's immutable input map, set once at mount.
type Props map[string]any

// State is a component's mutable state map. It is replaced wholesale on
// every update, never merged.
type State map[string]any

// Renderer is the one required capability of a component: producing the
// root node from current props and state. Render must be a pure function
// of props/state and must not touch lifecycle bookkeeping.
type Renderer interface {
	Render() *dom.Node
}

// Mounter is implemented by components that want a hook after each call to
// the mount accessor. The hook may run more than once per mount; guard it
// if the work is not idempotent.
type Mounter interface {
	Mounted()
}

// Updater is implemented by components that want a hook after every state
// change, before effects re-run.
type Updater interface {
	Updated()
}

// Unmounter is implemented by components that want to observe removal of
// their root node from the document. Only components implementing this
// interface register tree observation.
type Unmounter interface {
	Unmounted()
}

// hasCore is satisfied by any struct that embeds Core, so Mount can accept
// the concrete component directly.
type hasCore interface {
	core() *Core
}

func (c *Core) core() *Core { return c }

// Core holds a component's lifecycle bookkeeping. Embed it by value in the
// concrete component struct and bind it with Init (or use Mount, which does
// both binding and the first render).
type Core struct {
	self  Renderer
	doc   *dom.Document
	props Props
	state State

	// root is the single rendered node; nil until first render.
	root  *dom.Node
	watch *dom.Observation

	// hasUnmount caches the Unmounter assertion, checked once at first render.
	unmountChecked bool
	hasUnmount     bool
	unmounted      bool

	effects  []effectEntry
	observed []any

	// inPass guards against re-entrant state updates: a SetState issued
	// from a hook or effect is queued and coalesced, then applied when the
	// current pass finishes.
	inPass    bool
	queued    State
	hasQueued bool

	log *slog.Logger
}

// Init binds the core to its concrete component. self must be the struct
// embedding this Core. doc may be nil for components that are never
// attached to a document; such components still render and run hooks and
// effects, but removal can never be observed.
func (c *Core) Init(self Renderer, doc *dom.Document, props Props) {
	c.self = self
	c.doc = doc
	c.props = props
	c.state = State{}
}

// Mount constructs and mounts a component in one step: binds the core,
// performs the first render, fires the mount hook, runs pending effects,
// and returns the root node ready to attach. The concrete type must embed
// component.Core.
func Mount(self Renderer, doc *dom.Document, props Props) *dom.Node {
	h, ok := self.(hasCore)
	if !ok {
		panic(fmt.Sprintf("component: %T does not embed component.Core", self))
	}
	core := h.core()
	core.Init(self, doc, props)
	return core.Node()
}

// Props returns the component's input props.
func (c *Core) Props() Props { return c.props }

// State returns the current state map. Treat it as read-only; replace it
// via SetState or UpdateState.
func (c *Core) State() State { return c.state }

// Node is the mount accessor. On first call it renders the root, registers
// removal observation when the component implements Unmounter, then fires
// the mount hook and runs pending effects. Subsequent calls without an
// intervening state or signal change return the same root reference and
// fire the mount hook and effects again.
func (c *Core) Node() *dom.Node {
	if c.root == nil {
		c.root = c.self.Render()
		if !c.unmountChecked {
			c.unmountChecked = true
			_, c.hasUnmount = c.self.(Unmounter)
		}
		if c.hasUnmount && c.doc != nil {
			c.activateWatcher()
		}
	}

	c.runPass(func() {
		if m, ok := c.self.(Mounter); ok {
			m.Mounted()
		}
		c.runEffects()
	})

	return c.root
}

// SetState replaces the state map. If next is reference-identical to the
// current state the call is a no-op: no render, no hooks, no effects. A
// distinct reference always triggers a full pass, attached or not.
func (c *Core) SetState(next State) {
	c.setResolved(next)
}

// UpdateState resolves fn against the current state and applies the result
// with SetState semantics. Returning the received map unchanged is the
// idiomatic no-op.
func (c *Core) UpdateState(fn func(prev State) State) {
	c.setResolved(fn(c.state))
}

func (c *Core) setResolved(next State) {
	if identical(next, c.state) {
		return
	}
	if c.inPass {
		c.queued = next
		c.hasQueued = true
		return
	}
	c.runPass(func() {
		c.applyState(next)
	})
}

// applyState runs one full update pass: replace state, render a new root,
// swap it in place if attached, fire the update hook, re-run effects.
func (c *Core) applyState(next State) {
	c.state = next
	c.swapRoot(c.self.Render())
	if u, ok := c.self.(Updater); ok {
		u.Updated()
	}
	c.runEffects()
}

// runPass executes fn with the re-entrancy guard held, then drains any
// state updates queued during the pass, coalesced to the latest value.
func (c *Core) runPass(fn func()) {
	c.inPass = true
	defer func() { c.inPass = false }()

	fn()

	for c.hasQueued {
		next := c.queued
		c.hasQueued = false
		if identical(next, c.state) {
			continue
		}
		c.applyState(next)
	}
}

// reRender reflects an external signal's new value into the rendered
// output. It swaps the root like a state update but fires no hooks and
// runs no effects.
func (c *Core) reRender() {
	if c.root == nil {
		return
	}
	c.swapRoot(c.self.Render())
}

// swapRoot adopts newRoot as the component's root. If the previous root is
// attached it is replaced in place, preserving parent linkage and sibling
// order, and an active removal observation is retargeted to the new node.
func (c *Core) swapRoot(newRoot *dom.Node) {
	old := c.root
	c.root = newRoot
	if old != nil && old.Parent() != nil {
		old.ReplaceWith(newRoot)
	}
	if c.watch != nil {
		c.watch.Retarget(newRoot)
	}
}

// activateWatcher registers one-shot removal observation for the current
// root. Fires the unmount hook exactly once, then stops observing; a node
// reattached and removed again is never reported.
func (c *Core) activateWatcher() {
	c.watch = c.doc.Observe(c.root, func() {
		if c.unmounted {
			return
		}
		c.unmounted = true
		c.watch.Stop()
		c.watch = nil
		c.self.(Unmounter).Unmounted()
	})
}

// Query returns the first descendant of the root matching the selector.
// A miss logs one diagnostic naming the selector and the component type,
// and returns nil. Never panics.
func (c *Core) Query(selector string) *dom.Node {
	if c.root != nil {
		if n := c.root.Query(selector); n != nil {
			return n
		}
	}
	c.logger().Warn("no descendant matches selector",
		"selector", selector,
		"component", fmt.Sprintf("%T", c.self))
	return nil
}

// SetLogger overrides the logger used for diagnostics. Defaults to
// slog.Default.
func (c *Core) SetLogger(l *slog.Logger) { c.log = l }

func (c *Core) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return slog.Default()
}
