// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// uniqueMake returns the edge for the node (level, e0, e1), allocating a new
// table slot only if no structurally identical node exists yet. It enforces
// the two BDD reduction rules:
//
//   - elimination: if e0 == e1 the node is redundant, so its own edge (not a
//     freshly allocated node) is returned directly.
//   - sharing: otherwise the (level, e0, e1) triple is looked up in the
//     unique table; an existing match is reused verbatim.
//
// It also enforces edge canonicity: the stored e0 is never itself
// complemented. If the caller's e0 carries the complement bit, both
// children are flipped before insertion/lookup and the returned edge is
// complemented to compensate, so f and Not(f) always resolve to the same
// table slot with opposite polarity.
func (b *Mgr) uniqueMake(level int32, e0, e1 edge) edge {
	if e0 == e1 {
		return e0
	}
	compl := e0.inv()
	if compl {
		e0 = e0.not()
		e1 = e1.not()
	}
	key := nodekey{level: level, e0: e0, e1: e1}
	if idx, ok := b.unique[key]; ok {
		return mkedge(idx, compl)
	}
	idx := b.allocnode()
	if idx == 0 {
		return edgeFalse
	}
	n := &b.nodes[idx]
	n.level = level
	n.e0 = e0
	n.e1 = e1
	n.refs = 0
	b.unique[key] = idx
	return mkedge(idx, compl)
}

// allocnode returns the index of a free slot, growing the table (and
// triggering a GC pass first if the configured threshold is reached) as
// needed. It returns 0 (the terminal, never a free slot) when the table is
// full and cannot grow; growtable has then set the error condition.
func (b *Mgr) allocnode() int32 {
	if b.freenum == 0 {
		if b.gcenabled && b.NodeCount() >= b.gclimit {
			b.gbc()
			b.gclimit *= 2
		}
		if b.freenum == 0 {
			b.growtable()
		}
		if b.freenum == 0 {
			return 0
		}
	}
	idx := b.freepos
	n := &b.nodes[idx]
	b.freepos = n.next
	b.freenum--
	return idx
}

func (b *Mgr) growtable() {
	oldsize := len(b.nodes)
	newsize := oldsize * 2
	if b.maxnodeincrease > 0 && newsize-oldsize > b.maxnodeincrease {
		newsize = oldsize + b.maxnodeincrease
	}
	newsize = primeGte(newsize)
	if b.maxnodesize > 0 && newsize > b.maxnodesize {
		newsize = b.maxnodesize
	}
	if newsize <= oldsize {
		b.seterror(LogicError, "cannot grow node table past maxnodesize (%d)", b.maxnodesize)
		return
	}
	grown := make([]node, newsize)
	copy(grown, b.nodes)
	b.nodes = grown
	b.initfreelist(int32(oldsize))
	b.cacheresize(newsize)
}

// freeNode returns idx to the free list and drops its unique-table entry.
// Callers (the GC sweep) must have already verified idx carries no
// remaining references.
func (b *Mgr) freeNode(idx int32) {
	n := &b.nodes[idx]
	delete(b.unique, nodekey{level: n.level, e0: n.e0, e1: n.e1})
	n.level = -1
	n.e0 = edgeFalse
	n.e1 = edgeFalse
	n.next = b.freepos
	b.freepos = idx
	b.freenum++
}
