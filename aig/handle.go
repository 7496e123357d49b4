// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

// Handle is an external, reference-counted reference to a vertex of some
// Mgr's DAG, in the same spirit as this module's bdd.Node.
type Handle struct {
	mgr *Mgr
	e   Edge
	pin *handlePin // finalizer target kept alive by every copy of this Handle; nil for constants
}

// handlePin is the heap cell box's finalizer is attached to. Go copies
// Handle by value on every return and assignment, so a finalizer set
// directly on a Handle would be watching a value that stops being
// reachable the instant the function that set it returns. Routing the
// finalizer through a pointer field instead means it only fires once the
// last copy of the Handle holding that pointer is gone.
type handlePin struct{}

func (h Handle) checkmgr(m *Mgr) bool { return h.mgr == m }

// Mgr returns the manager that produced h.
func (h Handle) Mgr() *Mgr { return h.mgr }

// IsConst, IsZero, IsOne report whether h is a constant handle.
func (h Handle) IsConst() bool { return h.e.IsConst() }
func (h Handle) IsZero() bool  { return h.e.IsZero() }
func (h Handle) IsOne() bool   { return h.e.IsOne() }

// IsInput reports whether h is (the possibly inverted literal of) a
// primary input.
func (h Handle) IsInput() bool {
	if h.e.IsConst() {
		return false
	}
	return h.mgr.nodes[h.e.index()].kind == kindInput
}

// IsAnd reports whether h is (the possibly inverted literal of) an AND
// node.
func (h Handle) IsAnd() bool {
	if h.e.IsConst() {
		return false
	}
	return h.mgr.nodes[h.e.index()].kind == kindAnd
}

// InputID returns the input index of h; it is an error to call this on
// anything but an input literal.
func (h Handle) InputID() int {
	if !h.IsInput() {
		h.mgr.seterror(InvalidArgument, "InputID: handle is not a primary input")
		return -1
	}
	return int(h.mgr.nodes[h.e.index()].inputID)
}

// Fanin0 and Fanin1 return h's two fanin handles; it is an error to call
// these on anything but an AND literal.
func (h Handle) Fanin0() Handle {
	if !h.IsAnd() {
		h.mgr.seterror(InvalidArgument, "Fanin0: handle is not an AND node")
		return h.mgr.Zero()
	}
	n := &h.mgr.nodes[h.e.index()]
	return h.mgr.box(n.fanin0)
}

func (h Handle) Fanin1() Handle {
	if !h.IsAnd() {
		h.mgr.seterror(InvalidArgument, "Fanin1: handle is not an AND node")
		return h.mgr.Zero()
	}
	n := &h.mgr.nodes[h.e.index()]
	return h.mgr.box(n.fanin1)
}

// ExFaninList returns the extended fanin list: for an AND node, its two
// fanins; for an input or a constant, an empty list.
func (h Handle) ExFaninList() []Handle {
	if !h.IsAnd() {
		return nil
	}
	n := &h.mgr.nodes[h.e.index()]
	return []Handle{h.mgr.box(n.fanin0), h.mgr.box(n.fanin1)}
}

// Not returns the complement of h; like bdd.Node.Not, this is O(1).
func (h Handle) Not() Handle {
	return h.mgr.box(h.e.Not())
}

// Equal reports whether h and g denote the same vertex in the same
// manager.
func (h Handle) Equal(g Handle) bool {
	return h.mgr == g.mgr && h.e == g.e
}

// Less provides an arbitrary but stable total order over handles of the
// same manager, useful for canonical sorting (e.g. before AndMany).
func (h Handle) Less(g Handle) bool {
	return h.e < g.e
}

// Index returns h's raw node index, ignoring polarity.
func (h Handle) Index() int { return int(h.e.index()) }

// Hash returns a structural hash of h.
func (h Handle) Hash() uint64 { return uint64(h.e) }
