// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import "github.com/yusuke-matsunaga/ym-logic-sub004/sop"

// And returns the AND of a and b, looking them up in the structural-hash
// table keyed by (fanin0, fanin1) (ordered so the commutative cases a,b and
// b,a hash identically) before allocating a new node.
func (m *Mgr) And(a, b Handle) Handle {
	if !a.checkmgr(m) || !b.checkmgr(m) {
		m.seterror(InvalidArgument, "And: handle belongs to a different manager")
		return m.Zero()
	}
	return m.box(m.and(a.e, b.e))
}

func (m *Mgr) and(a, b Edge) Edge {
	if a.IsZero() || b.IsZero() {
		return EdgeFalse
	}
	if a.IsOne() {
		return b
	}
	if b.IsOne() {
		return a
	}
	if a == b {
		return a
	}
	if a == b.Not() {
		return EdgeFalse
	}
	key := mkandkey(a, b)
	if idx, ok := m.andhash[key]; ok {
		return mkedge(idx, false)
	}
	idx := m.allocnode()
	n := &m.nodes[idx]
	n.kind = kindAnd
	n.fanin0, n.fanin1 = key.f0, key.f1
	n.refs = 0
	n.level = 1 + maxLevel(m.level(key.f0), m.level(key.f1))
	m.andhash[key] = idx
	return mkedge(idx, false)
}

func (m *Mgr) level(e Edge) int32 {
	if e.IsConst() {
		return 0
	}
	return m.nodes[e.index()].level
}

func maxLevel(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Or returns the OR of a and b via De Morgan's law: !( !a & !b ).
func (m *Mgr) Or(a, b Handle) Handle {
	if !a.checkmgr(m) || !b.checkmgr(m) {
		m.seterror(InvalidArgument, "Or: handle belongs to a different manager")
		return m.Zero()
	}
	return m.box(m.and(a.e.Not(), b.e.Not()).Not())
}

// Xor returns the XOR of a and b as (a & !b) | (!a & b).
func (m *Mgr) Xor(a, b Handle) Handle {
	if !a.checkmgr(m) || !b.checkmgr(m) {
		m.seterror(InvalidArgument, "Xor: handle belongs to a different manager")
		return m.Zero()
	}
	h1 := m.and(a.e, b.e.Not())
	h2 := m.and(a.e.Not(), b.e)
	return m.box(m.and(h1.Not(), h2.Not()).Not())
}

// AndMany, OrMany and XorMany fold a list of handles with a balanced binary
// reduction (splitting the list in half recursively rather than a linear
// fold), which keeps the resulting AIG's depth logarithmic instead of
// linear in the fanin count.
func (m *Mgr) AndMany(fanins ...Handle) Handle {
	return m.andSub(fanins, 0, len(fanins))
}

func (m *Mgr) andSub(f []Handle, begin, end int) Handle {
	switch end - begin {
	case 0:
		return m.One()
	case 1:
		return f[begin]
	}
	mid := (begin + end) / 2
	return m.And(m.andSub(f, begin, mid), m.andSub(f, mid, end))
}

func (m *Mgr) OrMany(fanins ...Handle) Handle {
	return m.orSub(fanins, 0, len(fanins))
}

func (m *Mgr) orSub(f []Handle, begin, end int) Handle {
	switch end - begin {
	case 0:
		return m.Zero()
	case 1:
		return f[begin]
	}
	mid := (begin + end) / 2
	return m.Or(m.orSub(f, begin, mid), m.orSub(f, mid, end))
}

func (m *Mgr) XorMany(fanins ...Handle) Handle {
	return m.xorSub(fanins, 0, len(fanins))
}

func (m *Mgr) xorSub(f []Handle, begin, end int) Handle {
	switch end - begin {
	case 0:
		return m.Zero()
	case 1:
		return f[begin]
	}
	mid := (begin + end) / 2
	return m.Xor(m.xorSub(f, begin, mid), m.xorSub(f, mid, end))
}

// PrimitiveOp dispatches to AndMany/OrMany/XorMany by kind, the single
// n-ary entry point FromExpr's recursion calls into for ExprAnd/ExprOr/
// ExprXor. kind must be one of those three; any other ExprKind is an error.
func (m *Mgr) PrimitiveOp(kind sop.ExprKind, inputs []Handle) Handle {
	switch kind {
	case sop.ExprAnd:
		return m.AndMany(inputs...)
	case sop.ExprOr:
		return m.OrMany(inputs...)
	case sop.ExprXor:
		return m.XorMany(inputs...)
	default:
		m.seterror(InvalidArgument, "PrimitiveOp: kind must be ExprAnd, ExprOr or ExprXor")
		return m.Zero()
	}
}

// Eval evaluates output under the input assignment inputs (indexed by input
// id).
func (m *Mgr) Eval(output Handle, inputs []bool) bool {
	memo := make(map[int32]bool)
	var rec func(e Edge) bool
	rec = func(e Edge) bool {
		if e.IsConst() {
			return e.IsOne()
		}
		idx := e.index()
		n := &m.nodes[idx]
		var v bool
		if n.kind == kindInput {
			v = inputs[n.inputID]
		} else {
			if cached, ok := memo[idx]; ok {
				v = cached
			} else {
				v = rec(n.fanin0) && rec(n.fanin1)
				memo[idx] = v
			}
		}
		if e.inv() {
			return !v
		}
		return v
	}
	return rec(output.e)
}

// Size returns the number of distinct AND nodes in output's fanin cone.
func (m *Mgr) Size(output Handle) int {
	seen := make(map[int32]bool)
	var walk func(e Edge)
	walk = func(e Edge) {
		if e.IsConst() || seen[e.index()] {
			return
		}
		seen[e.index()] = true
		n := &m.nodes[e.index()]
		if n.kind == kindAnd {
			walk(n.fanin0)
			walk(n.fanin1)
		}
	}
	walk(output.e)
	count := 0
	for idx := range seen {
		if m.nodes[idx].kind == kindAnd {
			count++
		}
	}
	return count
}

// Copy rebuilds output (and its fanin cone) inside dst, returning the
// corresponding handle; dst may be m itself (a structural no-op, since
// everything is already hash-consed) or a different manager whose inputs
// are assumed to correspond to m's inputs by index.
func (m *Mgr) Copy(dst *Mgr, output Handle) Handle {
	memo := make(map[int32]Edge)
	var rec func(e Edge) Edge
	rec = func(e Edge) Edge {
		if e.IsConst() {
			return Edge(e)
		}
		idx := e.index()
		if v, ok := memo[idx]; ok {
			return xorEdge(v, e.inv())
		}
		n := &m.nodes[idx]
		var res Edge
		if n.kind == kindInput {
			for int32(len(dst.inputs)) <= n.inputID {
				dst.MakeInput()
			}
			res = mkedge(dst.inputs[n.inputID], false)
		} else {
			f0 := rec(n.fanin0)
			f1 := rec(n.fanin1)
			res = dst.and(f0, f1)
		}
		memo[idx] = res
		return xorEdge(res, e.inv())
	}
	return dst.box(rec(output.e))
}

func xorEdge(e Edge, inv bool) Edge {
	if inv {
		return e.Not()
	}
	return e
}
