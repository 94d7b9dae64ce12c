package component

import (
	"context"
	"log/slog"
	"testing"

	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/reactive"
)

// counter is the workhorse test component: no optional hooks.
type counter struct {
	Core
	renders int
}

func (c *counter) Render() *dom.Node {
	c.renders++
	n, _ := c.State()["count"].(int)
	return dom.El("div", dom.Attrs{"class": "counter"},
		dom.El("button", dom.Attrs{"class": "bump"}, dom.Textf("%d", n)),
	)
}

// hooked records every lifecycle hook invocation in order.
type hooked struct {
	Core
	renders int
	calls   []string
}

func (h *hooked) Render() *dom.Node {
	h.renders++
	return dom.El("div", dom.Attrs{"class": "hooked"})
}

func (h *hooked) Mounted()   { h.calls = append(h.calls, "mounted") }
func (h *hooked) Updated()   { h.calls = append(h.calls, "updated") }
func (h *hooked) Unmounted() { h.calls = append(h.calls, "unmounted") }

func count(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}

func TestNodeReturnsSameRootAcrossCalls(t *testing.T) {
	c := &counter{}
	c.Init(c, nil, nil)

	first := c.Node()
	second := c.Node()

	if first != second {
		t.Error("repeated Node calls without a state change must return the same root reference")
	}
	if c.renders != 1 {
		t.Errorf("expected exactly 1 render, got %d", c.renders)
	}
}

func TestNodeRefiresMountHookAndEffects(t *testing.T) {
	h := &hooked{}
	h.Init(h, nil, nil)

	effectRuns := 0
	h.AddEffect(func() Cleanup {
		effectRuns++
		return nil
	}, func() []any { return nil })

	h.Node()
	h.Node()

	if got := count(h.calls, "mounted"); got != 2 {
		t.Errorf("expected mount hook fired on every accessor call, got %d", got)
	}
	// Unchanged dependencies: effect runs once, on its first pass.
	if effectRuns != 1 {
		t.Errorf("expected 1 effect run, got %d", effectRuns)
	}
}

func TestSetStateIdenticalIsNoOp(t *testing.T) {
	h := &hooked{}
	h.Init(h, nil, nil)
	h.Node()

	renders := h.renders
	effectRuns := 0
	h.AddEffect(func() Cleanup { effectRuns++; return nil }, nil)

	h.SetState(h.State())

	if h.renders != renders {
		t.Error("identical state must not render")
	}
	if count(h.calls, "updated") != 0 {
		t.Error("identical state must not fire the update hook")
	}
	if effectRuns != 0 {
		t.Error("identical state must not run effects")
	}
}

func TestSetStateDistinctFiresUpdateThenEffects(t *testing.T) {
	h := &hooked{}
	h.Init(h, nil, nil) // never attached to a document

	h.AddEffect(func() Cleanup {
		h.calls = append(h.calls, "effect")
		return nil
	}, func() []any { return []any{h.State()["n"]} })

	h.Node()
	h.calls = nil

	h.SetState(State{"n": 1})

	want := []string{"updated", "effect"}
	if len(h.calls) != len(want) || h.calls[0] != want[0] || h.calls[1] != want[1] {
		t.Errorf("expected update hook then effect, exactly once each, got %v", h.calls)
	}
}

func TestSetStateSwapsRootInPlace(t *testing.T) {
	doc := dom.NewDocument()
	c := &counter{}
	c.Init(c, doc, nil)

	before := dom.El("p", dom.Text("before"))
	after := dom.El("p", dom.Text("after"))
	doc.Root().AppendChild(before)
	doc.Root().AppendChild(c.Node())
	doc.Root().AppendChild(after)

	r0 := c.Node()
	c.SetState(State{"count": 1})
	r1 := c.Node()

	if r0 == r1 {
		t.Fatal("state change must produce a new root reference")
	}
	children := doc.Root().Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[0] != before || children[1] != r1 || children[2] != after {
		t.Error("replacement did not preserve sibling order")
	}
	if r0.IsAttached() {
		t.Error("old root should be detached")
	}
}

func TestUpdateStateResolver(t *testing.T) {
	c := &counter{}
	c.Init(c, nil, nil)
	c.Node()

	c.UpdateState(func(prev State) State {
		return State{"count": 7}
	})
	if c.State()["count"] != 7 {
		t.Errorf("expected count 7, got %v", c.State()["count"])
	}

	// Returning the received map unchanged is a no-op.
	renders := c.renders
	c.UpdateState(func(prev State) State { return prev })
	if c.renders != renders {
		t.Error("returning the previous state reference must not re-render")
	}
}

func TestEffectDependencyDiffByIdentity(t *testing.T) {
	c := &counter{}
	c.Init(c, nil, nil)

	dep := "a"
	runs := 0
	c.AddEffect(func() Cleanup { runs++; return nil }, func() []any { return []any{dep} })

	c.Node()
	if runs != 1 {
		t.Fatalf("expected first run, got %d", runs)
	}

	// Same dependency: not re-invoked.
	c.SetState(State{"tick": 1})
	if runs != 1 {
		t.Errorf("unchanged dependency must not re-run effect, got %d runs", runs)
	}

	// Distinct dependency: re-invoked.
	dep = "b"
	c.SetState(State{"tick": 2})
	if runs != 2 {
		t.Errorf("changed dependency must re-run effect, got %d runs", runs)
	}
}

func TestEffectOrderAndIsolation(t *testing.T) {
	c := &counter{}
	c.Init(c, nil, nil)

	var order []int
	c.AddEffect(func() Cleanup { order = append(order, 1); return nil }, nil)
	c.AddEffect(func() Cleanup { order = append(order, 2); return nil }, nil)
	c.AddEffect(func() Cleanup { order = append(order, 3); return nil }, nil)

	c.Node()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("effects must run in registration order, got %v", order)
	}
}

func TestEffectCleanupBeforeRerun(t *testing.T) {
	c := &counter{}
	c.Init(c, nil, nil)

	dep := 0
	var trace []string
	c.AddEffect(func() Cleanup {
		trace = append(trace, "run")
		return func() { trace = append(trace, "cleanup") }
	}, func() []any { return []any{dep} })

	c.Node()
	dep = 1
	c.SetState(State{"tick": 1})

	want := []string{"run", "cleanup", "run"}
	if len(trace) != len(want) {
		t.Fatalf("expected %v, got %v", want, trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, trace)
		}
	}
}

// fakeSource is a hand-rolled Source for driving notifications directly.
type fakeSource struct {
	value     any
	listeners []func(any)
	unsubbed  int
}

func (f *fakeSource) Value() any { return f.value }

func (f *fakeSource) Subscribe(fn func(any)) func() {
	f.listeners = append(f.listeners, fn)
	return func() { f.unsubbed++ }
}

func (f *fakeSource) emit(v any) {
	f.value = v
	for _, fn := range f.listeners {
		fn(v)
	}
}

func TestSourceNotificationReRenders(t *testing.T) {
	doc := dom.NewDocument()
	c := &counter{}
	c.Init(c, doc, nil)

	src := &fakeSource{value: "v0"}
	c.AddSource(src)

	doc.Root().AppendChild(c.Node())
	r0 := c.Node()
	renders := c.renders

	src.emit("v1")

	r1 := doc.Root().Children()[0]
	if r1 == r0 {
		t.Error("signal change must replace the root in the host tree")
	}
	if c.renders != renders+1 {
		t.Errorf("expected exactly one re-render, got %d", c.renders-renders)
	}

	// Identical value again: ignored.
	src.emit("v1")
	if c.renders != renders+1 {
		t.Errorf("unchanged value must not re-render, got %d extra", c.renders-renders-1)
	}
}

func TestSourceReRenderFiresNoHooks(t *testing.T) {
	h := &hooked{}
	h.Init(h, nil, nil)

	src := &fakeSource{value: 1}
	h.AddSource(src)
	h.Node()
	h.calls = nil

	src.emit(2)

	if len(h.calls) != 0 {
		t.Errorf("signal re-render must not fire hooks, got %v", h.calls)
	}
}

func TestReactiveSignalSatisfiesSource(t *testing.T) {
	doc := dom.NewDocument()
	c := &counter{}
	c.Init(c, doc, nil)

	sig := reactive.NewSignal("v0")
	unsub := c.AddSource(sig.Erased())
	defer unsub()

	doc.Root().AppendChild(c.Node())
	renders := c.renders

	sig.Set("v1")
	if c.renders != renders+1 {
		t.Errorf("expected one re-render from signal change, got %d", c.renders-renders)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	c := &counter{}
	c.Init(c, nil, nil)

	sig := reactive.NewSignal(0)
	unsub := c.AddSource(sig.Erased())
	c.Node()
	renders := c.renders

	unsub()
	sig.Set(1)

	if c.renders != renders {
		t.Error("unsubscribed source must not trigger re-renders")
	}
}

func TestUnmountHookFiresExactlyOnce(t *testing.T) {
	doc := dom.NewDocument()
	h := &hooked{}
	h.Init(h, doc, nil)

	doc.Root().AppendChild(h.Node())
	root := h.Node()

	root.Remove()

	if got := count(h.calls, "unmounted"); got != 1 {
		t.Errorf("expected unmount exactly once, got %d", got)
	}

	// Reattach and remove again: one-shot, never reported twice.
	doc.Root().AppendChild(root)
	root.Remove()
	if got := count(h.calls, "unmounted"); got != 1 {
		t.Errorf("unmount is one-shot, got %d", got)
	}
}

func TestUnmountObservesRootSwappedByState(t *testing.T) {
	doc := dom.NewDocument()
	h := &hooked{}
	h.Init(h, doc, nil)

	doc.Root().AppendChild(h.Node())
	h.SetState(State{"n": 1})

	// The watcher was rebound to the new root on swap.
	newRoot := doc.Root().Children()[0]
	newRoot.Remove()

	if got := count(h.calls, "unmounted"); got != 1 {
		t.Errorf("expected unmount on removal of the swapped-in root, got %d", got)
	}
}

func TestNoObservationWithoutUnmounter(t *testing.T) {
	doc := dom.NewDocument()
	c := &counter{}
	c.Init(c, doc, nil)

	doc.Root().AppendChild(c.Node())

	if doc.ObservationCount() != 0 {
		t.Errorf("component without Unmounted must not register observation, got %d", doc.ObservationCount())
	}
}

// countingHandler counts slog records.
type countingHandler struct {
	records int
}

func (h *countingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h *countingHandler) Handle(context.Context, slog.Record) error { h.records++; return nil }
func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h *countingHandler) WithGroup(string) slog.Handler             { return h }

func TestQueryMissLogsOnceAndReturnsNil(t *testing.T) {
	c := &counter{}
	c.Init(c, nil, nil)
	handler := &countingHandler{}
	c.SetLogger(slog.New(handler))
	c.Node()

	if got := c.Query(".missing"); got != nil {
		t.Errorf("expected nil for missing selector, got %v", got)
	}
	if handler.records != 1 {
		t.Errorf("expected exactly one diagnostic, got %d", handler.records)
	}
}

func TestQueryFindsDescendant(t *testing.T) {
	c := &counter{}
	c.Init(c, nil, nil)
	c.Node()

	if got := c.Query(".bump"); got == nil {
		t.Error("expected to find rendered descendant")
	}
}

func TestReentrantSetStateIsCoalesced(t *testing.T) {
	h := &hooked{}
	h.Init(h, nil, nil)

	// An effect that pushes one follow-up update during its own pass.
	h.AddEffect(func() Cleanup {
		if h.State()["n"] == 1 {
			h.SetState(State{"n": 2})
		}
		return nil
	}, func() []any { return []any{h.State()["n"]} })

	h.Node()
	h.SetState(State{"n": 1})

	if h.State()["n"] != 2 {
		t.Errorf("queued update must apply after the pass, got %v", h.State()["n"])
	}
	// Two update passes total: n=1, then the queued n=2.
	if got := count(h.calls, "updated"); got != 2 {
		t.Errorf("expected 2 update hook calls, got %d", got)
	}
}

func TestMountConvenience(t *testing.T) {
	doc := dom.NewDocument()
	h := &hooked{}

	node := Mount(h, doc, Props{"label": "x"})

	if node == nil {
		t.Fatal("Mount returned nil")
	}
	if h.renders != 1 {
		t.Errorf("expected one render, got %d", h.renders)
	}
	if count(h.calls, "mounted") != 1 {
		t.Errorf("expected mount hook once, got %d", count(h.calls, "mounted"))
	}
	if h.Props()["label"] != "x" {
		t.Error("props not bound")
	}
}

// Full lifecycle walk: identity semantics end to end.
func TestEndToEndIdentitySemantics(t *testing.T) {
	doc := dom.NewDocument()
	h := &hooked{}
	h.Init(h, doc, Props{"count": 0})

	effectRuns := 0
	h.AddEffect(func() Cleanup { effectRuns++; return nil },
		func() []any { return []any{h.State()["count"]} })

	r0 := h.Node()
	doc.Root().AppendChild(r0)

	if count(h.calls, "mounted") != 1 || effectRuns != 1 {
		t.Fatalf("first mount: mounted=%d effects=%d", count(h.calls, "mounted"), effectRuns)
	}

	h.SetState(State{"count": 1})
	r1 := doc.Root().Children()[0]
	if r1 == r0 {
		t.Fatal("expected distinct root after state change")
	}
	if count(h.calls, "updated") != 1 || effectRuns != 2 {
		t.Fatalf("after update: updated=%d effects=%d", count(h.calls, "updated"), effectRuns)
	}

	// A fresh map with the same field values is NOT a no-op: the check is
	// identity, not value equality.
	h.SetState(State{"count": 1})
	r2 := doc.Root().Children()[0]
	if r2 == r1 {
		t.Error("value-equal but reference-distinct state must trigger a full cycle")
	}
	if count(h.calls, "updated") != 2 {
		t.Errorf("expected second update hook, got %d", count(h.calls, "updated"))
	}
	// count slot holds the same int value, so the effect does not re-run.
	if effectRuns != 2 {
		t.Errorf("identical dependency values must not re-run effect, got %d", effectRuns)
	}
}
