// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import "github.com/yusuke-matsunaga/ym-logic-sub004/sop"

// FromExpr builds the fanin cone for v, folding AND/OR/XOR nodes via
// PrimitiveOp (AndMany/OrMany/XorMany). ins, if non-nil, is reused; for a
// literal whose variable index is not yet covered, ins is extended with
// MakeInput up to that index (so indices absent from v can also receive an
// input). The returned slice holds the input handle for every index up to
// the largest one v uses.
func (m *Mgr) FromExpr(v sop.ExprView, ins []Handle) (Handle, []Handle) {
	var rec func(v sop.ExprView) Handle
	rec = func(v sop.ExprView) Handle {
		switch v.Kind() {
		case sop.ExprZero:
			return m.Zero()
		case sop.ExprOne:
			return m.One()
		case sop.ExprLiteral:
			idx := v.Var()
			for len(ins) <= idx {
				ins = append(ins, m.MakeInput())
			}
			h := ins[idx]
			if v.Inverted() {
				h = h.Not()
			}
			return h
		case sop.ExprAnd, sop.ExprOr, sop.ExprXor:
			ops := v.Operands()
			hs := make([]Handle, len(ops))
			for i, o := range ops {
				hs[i] = rec(o)
			}
			return m.PrimitiveOp(v.Kind(), hs)
		default:
			m.seterror(InvalidArgument, "FromExpr: unknown expression kind")
			return m.Zero()
		}
	}
	h := rec(v)
	return h, ins
}

// FromCube builds the AND of c's literals, allocating inputs from ins as
// needed (see FromExpr).
func (m *Mgr) FromCube(c sop.Cube, ins []Handle) (Handle, []Handle) {
	lits := make([]Handle, 0, c.LiteralCount())
	for i := 0; i < c.VarCount(); i++ {
		switch c.Get(i) {
		case sop.PatOne:
			for len(ins) <= i {
				ins = append(ins, m.MakeInput())
			}
			lits = append(lits, ins[i])
		case sop.PatZero:
			for len(ins) <= i {
				ins = append(ins, m.MakeInput())
			}
			lits = append(lits, ins[i].Not())
		}
	}
	return m.AndMany(lits...), ins
}

// FromCover builds the OR of every cube in c's fanin cone (see FromCube).
func (m *Mgr) FromCover(c sop.Cover, ins []Handle) (Handle, []Handle) {
	terms := make([]Handle, len(c.Cubes()))
	for i, cube := range c.Cubes() {
		terms[i], ins = m.FromCube(cube, ins)
	}
	return m.OrMany(terms...), ins
}
