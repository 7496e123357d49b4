// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// makenode forwards to uniqueMake; the mixed-manager checks are done by the
// public entry points in this file (see checkmgr), not here.
func (b *Mgr) makenode(level int32, e0, e1 edge) edge {
	return b.uniqueMake(level, e0, e1)
}

func (b *Mgr) checkmgr(n Node) bool {
	return n.mgr == b
}

// Not returns the negation of n. Thanks to complemented edges this never
// touches the unique table or the node arena: it is a single bit flip.
func (b *Mgr) Not(n Node) Node {
	if !b.checkmgr(n) {
		b.seterror(InvalidArgument, "Not: node belongs to a different manager")
		return b.Zero()
	}
	return b.box(n.e.not())
}

// Apply performs one of the ten binary Boolean operations described by op on
// n1 and n2; see Operator in operator.go for the full table.
func (b *Mgr) Apply(op Operator, n1, n2 Node) Node {
	if op >= opnot {
		b.seterror(InvalidArgument, "Apply: operator %s is unary", op)
		return b.Zero()
	}
	if !b.checkmgr(n1) || !b.checkmgr(n2) {
		b.seterror(InvalidArgument, "Apply: operand belongs to a different manager")
		return b.Zero()
	}
	b.applycache.op = int32(op)
	res := b.apply(n1.e, n2.e)
	return b.box(res)
}

func (b *Mgr) apply(left, right edge) edge {
	op := Operator(b.applycache.op)
	switch op {
	case OPand:
		if left == right {
			return left
		}
		if left.isFalse() || right.isFalse() {
			return edgeFalse
		}
		if left.isTrue() {
			return right
		}
		if right.isTrue() {
			return left
		}
	case OPor:
		if left == right {
			return left
		}
		if left.isTrue() || right.isTrue() {
			return edgeTrue
		}
		if left.isFalse() {
			return right
		}
		if right.isFalse() {
			return left
		}
	case OPxor:
		if left == right {
			return edgeFalse
		}
		if left.isFalse() {
			return right
		}
		if right.isFalse() {
			return left
		}
	case OPnand:
		if left.isFalse() || right.isFalse() {
			return edgeTrue
		}
	case OPnor:
		if left.isTrue() || right.isTrue() {
			return edgeFalse
		}
	case OPimp:
		if left.isFalse() {
			return edgeTrue
		}
		if left.isTrue() {
			return right
		}
		if right.isTrue() || left == right {
			return edgeTrue
		}
	case OPbiimp:
		if left == right {
			return edgeTrue
		}
		if left.isTrue() {
			return right
		}
		if right.isTrue() {
			return left
		}
	case OPdiff:
		if left == right {
			return edgeFalse
		}
		if right.isTrue() {
			return edgeFalse
		}
		if left.isFalse() {
			return edgeFalse
		}
	case OPless:
		if left == right || left.isTrue() {
			return edgeFalse
		}
		if left.isFalse() {
			return right
		}
	case OPinvimp:
		if right.isFalse() {
			return edgeTrue
		}
		if right.isTrue() {
			return left
		}
		if left.isTrue() || left == right {
			return edgeTrue
		}
	}

	if left.isConst() && right.isConst() {
		return boolEdge(opres[op][boolIdx(left)][boolIdx(right)])
	}
	if res, ok := b.applycache.matchapply(left, right); ok {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res edge
	switch {
	case leftlvl == rightlvl:
		low := b.pushref(b.apply(b.low(left), b.low(right)))
		high := b.pushref(b.apply(b.high(left), b.high(right)))
		res = b.makenode(leftlvl, low, high)
		b.popref(2)
	case leftlvl < rightlvl:
		low := b.pushref(b.apply(b.low(left), right))
		high := b.pushref(b.apply(b.high(left), right))
		res = b.makenode(leftlvl, low, high)
		b.popref(2)
	default:
		low := b.pushref(b.apply(left, b.low(right)))
		high := b.pushref(b.apply(left, b.high(right)))
		res = b.makenode(rightlvl, low, high)
		b.popref(2)
	}
	return b.applycache.setapply(left, right, res)
}

func boolIdx(e edge) int {
	if e.isTrue() {
		return 1
	}
	return 0
}

func boolEdge(v int) edge {
	if v == 1 {
		return edgeTrue
	}
	return edgeFalse
}

// Ite computes (f & g) | (!f & h) directly, which is both the general form
// every other binary/ternary combinator reduces to and, used on its own,
// cheaper than composing three Apply calls.
func (b *Mgr) Ite(f, g, h Node) Node {
	if !b.checkmgr(f) || !b.checkmgr(g) || !b.checkmgr(h) {
		b.seterror(InvalidArgument, "Ite: operand belongs to a different manager")
		return b.Zero()
	}
	res := b.ite(f.e, g.e, h.e)
	return b.box(res)
}

func (b *Mgr) iteLow(p, q, r int32, n edge) edge {
	if p > q || p > r {
		return n
	}
	return b.low(n)
}

func (b *Mgr) iteHigh(p, q, r int32, n edge) edge {
	if p > q || p > r {
		return n
	}
	return b.high(n)
}

func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r {
			return p
		}
		return r
	}
	if q <= r {
		return q
	}
	return r
}

func (b *Mgr) ite(f, g, h edge) edge {
	switch {
	case f.isTrue():
		return g
	case f.isFalse():
		return h
	case g == h:
		return g
	case g.isTrue() && h.isFalse():
		return f
	case g.isFalse() && h.isTrue():
		return f.not()
	}
	if res, ok := b.itecache.matchite(f, g, h); ok {
		return res
	}
	p := b.level(f)
	q := b.level(g)
	r := b.level(h)
	low := b.pushref(b.ite(b.iteLow(p, q, r, f), b.iteLow(q, p, r, g), b.iteLow(r, p, q, h)))
	high := b.pushref(b.ite(b.iteHigh(p, q, r, f), b.iteHigh(q, p, r, g), b.iteHigh(r, p, q, h)))
	res := b.makenode(min3(p, q, r), low, high)
	b.popref(2)
	return b.itecache.setite(f, g, h, res)
}

