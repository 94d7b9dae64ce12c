package main

import (
	"github.com/glint-ui/glint/pkg/component"
	"github.com/glint-ui/glint/pkg/dom"
)

// counterDisplay renders the current count and cleans up on removal.
type counterDisplay struct {
	component.Core
}

func (c *counterDisplay) Render() *dom.Node {
	n, _ := c.State()["count"].(int)
	label, _ := c.Props()["label"].(string)
	return dom.El("div", dom.Attrs{"class": "counter"},
		dom.El("h1", dom.Text(label)),
		dom.El("p", dom.Attrs{"id": "count"}, dom.Textf("count: %d", n)),
	)
}

// counterApp wires client events to counter state.
type counterApp struct {
	counter *counterDisplay
}

func (a *counterApp) Mount(doc *dom.Document) *dom.Node {
	a.counter = &counterDisplay{}
	node := component.Mount(a.counter, doc, component.Props{"label": "Glint demo"})
	doc.Root().AppendChild(node)
	return node
}

func (a *counterApp) HandleEvent(name string) {
	n, _ := a.counter.State()["count"].(int)
	switch name {
	case "increment":
		a.counter.SetState(component.State{"count": n + 1})
	case "decrement":
		a.counter.SetState(component.State{"count": n - 1})
	}
}
