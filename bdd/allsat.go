// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// GetOnePath returns one satisfying cube of n, as a cube node (a conjunction
// of literals, positive for a variable fixed to true, negative for a
// variable fixed to false). It follows the high branch whenever it is not
// False, the low branch otherwise, so it always exists unless n is False
// itself.
func (b *Mgr) GetOnePath(n Node) Node {
	return b.getpath(n, true)
}

// GetZeroPath is the dual of GetOnePath: it returns one cube on which n
// evaluates to False.
func (b *Mgr) GetZeroPath(n Node) Node {
	return b.getpath(n, false)
}

func (b *Mgr) getpath(n Node, wantTrue bool) Node {
	if !b.checkmgr(n) {
		b.seterror(InvalidArgument, "GetOnePath/GetZeroPath: node belongs to a different manager")
		return b.Zero()
	}
	bad := edgeFalse
	if !wantTrue {
		bad = edgeTrue
	}
	terms := []Node{}
	e := n.e
	for !e.isConst() {
		level := b.level(e)
		low, high := b.low(e), b.high(e)
		if high != bad {
			terms = append(terms, b.Ithvar(int(level)))
			e = high
		} else {
			terms = append(terms, b.NIthvar(int(level)))
			e = low
		}
	}
	if e == bad {
		b.seterror(LogicError, "GetOnePath/GetZeroPath: n has no satisfying path of the requested polarity")
		return b.Zero()
	}
	return b.And(terms...)
}

// CheckSup reports whether n depends on variable level.
func (b *Mgr) CheckSup(n Node, level int) bool {
	for _, l := range b.Scanset(b.Support(n)) {
		if l == level {
			return true
		}
	}
	return false
}

// CheckSym reports whether variables lvl1 and lvl2 are symmetric in n, i.e.
// swapping them leaves the function unchanged: Cofactor(n, lvl1=1,
// lvl2=0) == Cofactor(n, lvl1=0, lvl2=1).
func (b *Mgr) CheckSym(n Node, lvl1, lvl2 int) bool {
	a := b.Cofactor(b.Cofactor(n, b.Ithvar(lvl1)), b.NIthvar(lvl2))
	c := b.Cofactor(b.Cofactor(n, b.NIthvar(lvl1)), b.Ithvar(lvl2))
	return a.Equal(c)
}
