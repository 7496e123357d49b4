// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Makeset returns the cube (conjunction of positive literals) for the given
// variable levels. It is the dual of Scanset: Scanset(Makeset(vs)) == vs for
// any sorted vs. Makeset sets the error condition and returns False if a
// level is out of range.
func (b *Mgr) Makeset(levels []int) Node {
	res := b.One()
	for _, lvl := range levels {
		if lvl < 0 || lvl >= b.varnum {
			b.seterror(OutOfRange, "Makeset: level %d out of range", lvl)
			return b.Zero()
		}
		res = b.Apply(OPand, res, b.Ithvar(lvl))
	}
	return res
}

// Scanset returns the variable levels making up the cube n, in ascending
// level order, following n's high branch. n is expected to have been built
// by Makeset or an equivalent conjunction of positive literals; it returns
// nil for a constant.
func (b *Mgr) Scanset(n Node) []int {
	if !b.checkmgr(n) {
		b.seterror(InvalidArgument, "Scanset: node belongs to a different manager")
		return nil
	}
	if n.e.isConst() {
		return nil
	}
	res := []int{}
	for e := n.e; !e.isConst(); e = b.high(e) {
		res = append(res, int(b.level(e)))
	}
	return res
}

// Support returns the cube of every variable n's function actually depends
// on.
func (b *Mgr) Support(n Node) Node {
	if !b.checkmgr(n) {
		b.seterror(InvalidArgument, "Support: node belongs to a different manager")
		return b.Zero()
	}
	seen := make(map[int32]bool)
	levels := map[int32]bool{}
	var walk func(e edge)
	walk = func(e edge) {
		if e.isConst() || seen[e.index()] {
			return
		}
		seen[e.index()] = true
		levels[b.level(e)] = true
		nd := &b.nodes[e.index()]
		walk(nd.e0)
		walk(nd.e1)
	}
	walk(n.e)
	lvls := make([]int, 0, len(levels))
	for l := range levels {
		lvls = append(lvls, int(l))
	}
	sortInts(lvls)
	return b.Makeset(lvls)
}

// SupportSize returns the number of variables n depends on.
func (b *Mgr) SupportSize(n Node) int {
	return len(b.Scanset(b.Support(n)))
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

// And returns the conjunction of a sequence of nodes, folding right to
// left; And() with no operand returns True.
func (b *Mgr) And(n ...Node) Node {
	if len(n) == 0 {
		return b.One()
	}
	if len(n) == 1 {
		return n[0]
	}
	return b.Apply(OPand, n[0], b.And(n[1:]...))
}

// Or returns the disjunction of a sequence of nodes; Or() with no operand
// returns False.
func (b *Mgr) Or(n ...Node) Node {
	if len(n) == 0 {
		return b.Zero()
	}
	if len(n) == 1 {
		return n[0]
	}
	return b.Apply(OPor, n[0], b.Or(n[1:]...))
}

// Imp returns n1 => n2.
func (b *Mgr) Imp(n1, n2 Node) Node {
	return b.Apply(OPimp, n1, n2)
}

// Equiv returns n1 <=> n2.
func (b *Mgr) Equiv(n1, n2 Node) Node {
	return b.Apply(OPbiimp, n1, n2)
}

// From returns the constant node for the given boolean value.
func (b *Mgr) From(v bool) Node {
	if v {
		return b.One()
	}
	return b.Zero()
}
