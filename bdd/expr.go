// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "github.com/yusuke-matsunaga/ym-logic-sub004/sop"

// FromExpr recursively lowers an externally parsed logic expression,
// exposed through the sop.ExprView abstraction, into a BDD. This package
// never parses expressions itself; v is expected to come from a caller's
// own Expr representation adapted to sop.ExprView.
func (b *Mgr) FromExpr(v sop.ExprView) Node {
	switch v.Kind() {
	case sop.ExprZero:
		return b.Zero()
	case sop.ExprOne:
		return b.One()
	case sop.ExprLiteral:
		if v.Inverted() {
			return b.NIthvar(v.Var())
		}
		return b.Ithvar(v.Var())
	case sop.ExprAnd:
		ops := v.Operands()
		nodes := make([]Node, len(ops))
		for i, o := range ops {
			nodes[i] = b.FromExpr(o)
		}
		return b.And(nodes...)
	case sop.ExprOr:
		ops := v.Operands()
		nodes := make([]Node, len(ops))
		for i, o := range ops {
			nodes[i] = b.FromExpr(o)
		}
		return b.Or(nodes...)
	case sop.ExprXor:
		ops := v.Operands()
		if len(ops) == 0 {
			return b.Zero()
		}
		res := b.FromExpr(ops[0])
		for _, o := range ops[1:] {
			res = b.Apply(OPxor, res, b.FromExpr(o))
		}
		return res
	default:
		b.seterror(InvalidArgument, "FromExpr: unknown expression kind")
		return b.Zero()
	}
}
