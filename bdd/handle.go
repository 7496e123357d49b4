// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// RootVar returns the variable level of n's top node. It is an error to
// call it on a constant.
func (b *Mgr) RootVar(n Node) int {
	if n.e.isConst() {
		b.seterror(InvalidArgument, "RootVar: node is a constant")
		return -1
	}
	return int(b.level(n.e))
}

// RootCofactor0 returns n's low (variable-false) branch at the top level.
func (b *Mgr) RootCofactor0(n Node) Node {
	if n.e.isConst() {
		b.seterror(InvalidArgument, "RootCofactor0: node is a constant")
		return b.Zero()
	}
	return b.box(b.low(n.e))
}

// RootCofactor1 returns n's high (variable-true) branch at the top level.
func (b *Mgr) RootCofactor1(n Node) Node {
	if n.e.isConst() {
		b.seterror(InvalidArgument, "RootCofactor1: node is a constant")
		return b.Zero()
	}
	return b.box(b.high(n.e))
}

// RootInv reports whether n's top-level edge carries the complement bit.
func (b *Mgr) RootInv(n Node) bool {
	return n.e.inv()
}

// Size returns the number of distinct decision nodes in n's DAG.
func (b *Mgr) Size(n Node) int {
	if n.e.isConst() {
		return 0
	}
	seen := make(map[int32]bool)
	var walk func(e edge)
	walk = func(e edge) {
		if e.isConst() || seen[e.index()] {
			return
		}
		seen[e.index()] = true
		nd := &b.nodes[e.index()]
		walk(nd.e0)
		walk(nd.e1)
	}
	walk(n.e)
	return len(seen)
}

// Hash returns a structural hash of n, usable as a cheap (non-canonical
// across managers) equality pre-filter; within one manager it is exact
// since the unique table already guarantees structural sharing.
func (n Node) Hash() uint64 {
	return uint64(n.e)
}

// IsVariable reports whether n is exactly the positive literal of some
// variable (level, low=False, high=True with no complement).
func (b *Mgr) IsVariable(n Node) bool {
	if n.e.isConst() || n.e.inv() {
		return false
	}
	nd := &b.nodes[n.e.index()]
	return nd.e0.isFalse() && nd.e1.isTrue()
}

// IsLiteral reports whether n is a single variable in either polarity.
func (b *Mgr) IsLiteral(n Node) bool {
	if n.e.isConst() {
		return false
	}
	nd := &b.nodes[n.e.index()]
	return (nd.e0.isFalse() && nd.e1.isTrue()) || (nd.e0.isTrue() && nd.e1.isFalse())
}

// IsCube reports whether n is a conjunction of literals (every node on the
// path from the root has one child equal to False).
func (b *Mgr) IsCube(n Node) bool {
	e := n.e
	for !e.isConst() {
		low, high := b.low(e), b.high(e)
		if !low.isFalse() && !high.isFalse() {
			return false
		}
		if low.isFalse() {
			e = high
		} else {
			e = low
		}
	}
	return e.isTrue()
}

// IsPosiCube reports whether n is a cube made only of positive literals.
func (b *Mgr) IsPosiCube(n Node) bool {
	e := n.e
	for !e.isConst() {
		low, high := b.low(e), b.high(e)
		if !low.isFalse() {
			return false
		}
		e = high
	}
	return e.isTrue()
}

// ToLitList returns n's literals if n is a cube, in ascending level order,
// each written as level+1 for a positive literal and -(level+1) for a
// negated one; it returns nil and sets the error condition otherwise.
func (b *Mgr) ToLitList(n Node) []int {
	if !b.IsCube(n) {
		b.seterror(InvalidArgument, "ToLitList: node is not a cube")
		return nil
	}
	res := []int{}
	e := n.e
	for !e.isConst() {
		level := int(b.level(e))
		low, high := b.low(e), b.high(e)
		if low.isFalse() {
			res = append(res, level+1)
			e = high
		} else {
			res = append(res, -(level + 1))
			e = low
		}
	}
	return res
}
