// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// A bdd edge is a node table index together with a one-bit complement flag,
// packed into a single int32 as (index<<1 | inv). This lets every operation
// that only cares about "which node" ignore polarity, and every operation
// that cares about polarity mask out a single bit instead of chasing a
// separate field.
//
// Complementing an edge is O(1) (flip the low bit) and is the reason we
// generalize the table's original node representation this way: Not(f) never
// allocates or touches the unique table.
//
// The node at index 0 is the shared terminal; edge(0,0) is the constant
// False and edge(0,1) is the constant True. Every other index refers to a
// decision node allocated in the node table (see node.go).
//
// Invariant: inside a stored node, e0 (the low/then branch) is never itself
// complemented. When uniqueMake is asked to build a node whose natural low
// edge is complemented, it complements both children and complements the
// edge it returns instead, so the table never needs two entries for a node
// and its negation.

type edge int32

const (
	edgeFalse edge = 0 // index 0, inv 0
	edgeTrue  edge = 1 // index 0, inv 1
)

func mkedge(index int32, inv bool) edge {
	if inv {
		return edge(index<<1 | 1)
	}
	return edge(index << 1)
}

func (e edge) index() int32 {
	return int32(e) >> 1
}

func (e edge) inv() bool {
	return int32(e)&1 != 0
}

func (e edge) not() edge {
	return e ^ 1
}

// withInv returns e with its complement bit forced to inv.
func (e edge) withInv(inv bool) edge {
	if inv {
		return edge(e.index()<<1 | 1)
	}
	return edge(e.index() << 1)
}

func (e edge) isConst() bool {
	return e.index() == 0
}

func (e edge) isFalse() bool {
	return e == edgeFalse
}

func (e edge) isTrue() bool {
	return e == edgeTrue
}
