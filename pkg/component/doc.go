// Package component provides the lifecycle and reactivity core for Glint
// components.
//
// A component is any type that embeds Core and implements Renderer. The
// embedded Core owns the lifecycle bookkeeping: the single root node, the
// effect registry, signal subscriptions, and unmount observation. Optional
// lifecycle hooks are plain interfaces (Mounter, Updater, Unmounter) that a
// component implements only when it needs them; the core detects them by
// type assertion, so a component that declares no Unmounted method never
// pays for tree observation.
//
// # Defining a Component
//
//	type Counter struct {
//	    component.Core
//	}
//
//	func (c *Counter) Render() *dom.Node {
//	    n, _ := c.State()["count"].(int)
//	    return dom.El("button", dom.Textf("clicked %d times", n))
//	}
//
//	func (c *Counter) Mounted() { log.Println("counter on screen") }
//
// Mount is the convenience entry point: it binds the core, renders once,
// fires the mount hook, runs pending effects, and returns the root node
// ready to attach:
//
//	doc := dom.NewDocument()
//	node := component.Mount(&Counter{}, doc, component.Props{"step": 1})
//	doc.Root().AppendChild(node)
//
// # State
//
// State is replaced wholesale, never merged, and the no-op check is
// reference identity: passing back the exact map currently held does
// nothing, while a fresh map with equal contents triggers a full
// re-render. Effects and signal bridging use the same identity semantics.
package component
