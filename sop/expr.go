// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sop

// exprNode is the package's own ExprView implementation, used by ToExpr to
// hand callers a tree they can feed straight into bdd.FromExpr or any other
// ExprView consumer without depending on a concrete expression package.
type exprNode struct {
	kind     ExprKind
	v        int
	inverted bool
	operands []ExprView
}

func (e *exprNode) Kind() ExprKind        { return e.kind }
func (e *exprNode) Var() int              { return e.v }
func (e *exprNode) Inverted() bool        { return e.inverted }
func (e *exprNode) Operands() []ExprView  { return e.operands }

func literalExpr(i int, neg bool) ExprView {
	return &exprNode{kind: ExprLiteral, v: i, inverted: neg}
}

func cubeExpr(c Cube) ExprView {
	lits := c.LiteralList()
	if len(lits) == 0 {
		return &exprNode{kind: ExprOne}
	}
	ops := make([]ExprView, len(lits))
	for i, l := range lits {
		if l >= 0 {
			ops[i] = literalExpr(l, false)
		} else {
			ops[i] = literalExpr(-l-1, true)
		}
	}
	if len(ops) == 1 {
		return ops[0]
	}
	return &exprNode{kind: ExprAnd, operands: ops}
}

// ToExpr renders a as an OR of AND-of-literals ExprView tree (the constant
// False cover becomes ExprZero).
func (a Cover) ToExpr() ExprView {
	if a.IsZero() {
		return &exprNode{kind: ExprZero}
	}
	ops := make([]ExprView, len(a.cubes))
	for i, c := range a.cubes {
		ops[i] = cubeExpr(c)
	}
	if len(ops) == 1 {
		return ops[0]
	}
	return &exprNode{kind: ExprOr, operands: ops}
}
