package dom

// Document owns one live tree and fans removal notifications out to
// registered observations.
//
// Removal delivery is filtered: an observation only fires when the exact
// node reference it targets appears in a removal batch. This keeps the
// per-mutation cost proportional to the number of registered observations
// rather than the size of the tree.
type Document struct {
	root *Node
	obs  []*Observation
}

// NewDocument creates a document whose root is an empty <body> element.
func NewDocument() *Document {
	d := &Document{}
	body := El("body")
	body.setDocument(d)
	d.root = body
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Node { return d.root }

// Observation is a registered interest in the removal of one specific node.
type Observation struct {
	doc     *Document
	target  *Node
	fn      func()
	stopped bool
}

// Observe registers fn to be called when exactly target is removed from
// the tree. The observation stays active until Stop is called; callers that
// need one-shot semantics stop it from inside fn.
func (d *Document) Observe(target *Node, fn func()) *Observation {
	o := &Observation{
		doc:    d,
		target: target,
		fn:     fn,
	}
	d.obs = append(d.obs, o)
	return o
}

// Target returns the node this observation currently watches.
func (o *Observation) Target() *Node { return o.target }

// Retarget moves the observation's interest to a different node.
// Used when a logical slot's node is swapped in place.
func (o *Observation) Retarget(n *Node) {
	o.target = n
}

// Stop deactivates the observation. Safe to call more than once, including
// from inside the observation's own callback.
func (o *Observation) Stop() {
	if o.stopped {
		return
	}
	o.stopped = true
	for i, obs := range o.doc.obs {
		if obs == o {
			o.doc.obs = append(o.doc.obs[:i], o.doc.obs[i+1:]...)
			return
		}
	}
}

// ObservationCount returns the number of active observations.
func (d *Document) ObservationCount() int { return len(d.obs) }

// deliverRemovals hands one discrete removal batch to the observers.
// The observation list is snapshotted first so callbacks may stop or
// register observations without corrupting the iteration.
func (d *Document) deliverRemovals(removed []*Node) {
	if len(d.obs) == 0 {
		return
	}
	snapshot := make([]*Observation, len(d.obs))
	copy(snapshot, d.obs)

	for _, o := range snapshot {
		if o.stopped {
			continue
		}
		for _, r := range removed {
			if o.target == r {
				o.fn()
				break
			}
		}
	}
}
