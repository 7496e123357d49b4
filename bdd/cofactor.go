// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Cofactor restricts n by the literal lit (a node built with Ithvar or
// NIthvar), substituting lit's variable with the constant its polarity
// implies and returning the reduced function. Cofactor by a positive
// literal is sometimes called the positive cofactor, by a negative literal
// the negative cofactor.
func (b *Mgr) Cofactor(n, lit Node) Node {
	if !b.checkmgr(n) || !b.checkmgr(lit) {
		b.seterror(InvalidArgument, "Cofactor: operand belongs to a different manager")
		return b.Zero()
	}
	if lit.e.isConst() {
		b.seterror(InvalidArgument, "Cofactor: lit must be a single literal")
		return b.Zero()
	}
	level := b.level(lit.e)
	value := b.high(lit.e).isTrue() // true if lit is the positive literal
	memo := make(map[int32]edge)
	var rec func(e edge) edge
	rec = func(e edge) edge {
		if e.isConst() || b.level(e) > level {
			return e
		}
		if b.level(e) < level {
			idx := int32(e)
			if v, ok := memo[idx]; ok {
				return v
			}
			low := b.pushref(rec(b.low(e)))
			high := b.pushref(rec(b.high(e)))
			res := b.makenode(b.level(e), low, high)
			b.popref(2)
			memo[idx] = res
			return res
		}
		// b.level(e) == level: substitute directly, no further recursion
		// needed below this point along this branch.
		if value {
			return b.high(e)
		}
		return b.low(e)
	}
	return b.box(rec(n.e))
}

// CofactorCube restricts n simultaneously by every literal in the cube
// built with Makeset/And of literals.
func (b *Mgr) CofactorCube(n, cube Node) Node {
	if !b.checkmgr(n) || !b.checkmgr(cube) {
		b.seterror(InvalidArgument, "CofactorCube: operand belongs to a different manager")
		return b.Zero()
	}
	res := n
	e := cube.e
	for !e.isConst() {
		lvl := b.level(e)
		value := b.high(e).isTrue()
		lit := b.Ithvar(int(lvl))
		if !value {
			lit = b.NIthvar(int(lvl))
		}
		res = b.Cofactor(res, lit)
		if value {
			e = b.high(e)
		} else {
			e = b.low(e)
		}
	}
	return res
}
