// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// BddVar describes a manager variable: its fixed index of creation and its
// current position (level) in the variable order.
type BddVar struct {
	Index int
	Level int
}

// BddLit is a single literal: a variable index together with a polarity.
type BddLit struct {
	Var      int
	Inverted bool
}

// Variable returns the BddVar for index i, under the manager's current
// variable order. Index and Level coincide under the initial identity
// order and differ after SetVariableOrder installs another permutation.
func (b *Mgr) Variable(i int) BddVar {
	if i < 0 || i >= b.varnum {
		b.seterror(OutOfRange, "Variable: index %d out of range", i)
		return BddVar{}
	}
	return BddVar{Index: i, Level: int(b.varorder[i])}
}

// VariableList returns every manager variable, ordered by index.
func (b *Mgr) VariableList() []BddVar {
	res := make([]BddVar, b.varnum)
	for i := range res {
		res[i] = b.Variable(i)
	}
	return res
}

// VariableOrder returns the current level-to-index permutation: the
// variable index occupying each successive level.
func (b *Mgr) VariableOrder() []int {
	res := make([]int, b.varnum)
	for i, lvl := range b.varorder {
		res[lvl] = i
	}
	return res
}

// SetVariableOrder installs a new level-to-index permutation. Unlike a
// sifting-based reordering pass (an explicit Non-goal), this discards the
// whole node table and the caches and rebuilds only the variable nodes
// under the new order; no other BDD is carried over. It is therefore
// refused (with a LogicError) while any external Node handle is still
// live: reordering while externally pinned nodes exist would either
// silently reinterpret them under the new order or require a much more
// invasive in-place level swap (the sifting algorithm this package does
// not implement). Callers must drop every Node they hold before calling
// this.
func (b *Mgr) SetVariableOrder(order []int) error {
	if len(order) != b.varnum {
		b.seterror(InvalidArgument, "SetVariableOrder: permutation length %d != varnum %d", len(order), b.varnum)
		return b.err
	}
	seen := make([]bool, b.varnum)
	for _, idx := range order {
		if idx < 0 || idx >= b.varnum || seen[idx] {
			b.seterror(InvalidArgument, "SetVariableOrder: not a permutation of [0,%d)", b.varnum)
			return b.err
		}
		seen[idx] = true
	}
	if b.liveHandles > 0 {
		b.seterror(LogicError, "SetVariableOrder: %d external Node handles still live", b.liveHandles)
		return b.err
	}
	b.varorder = make([]int32, b.varnum)
	for lvl, idx := range order {
		b.varorder[idx] = int32(lvl)
	}
	b.nodes = b.nodes[:1]
	b.unique = make(map[nodekey]int32, len(b.nodes))
	b.initfreelist(1)
	b.cachereset()
	for i := 0; i < b.varnum; i++ {
		b.varhandles[i] = b.uniqueMake(b.varorder[i], edgeFalse, edgeTrue)
		b.nodes[b.varhandles[i].index()].refs = _MAXREFCOUNT
	}
	return nil
}
