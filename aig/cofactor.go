// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

// Cofactor restricts every handle in targets by the literal cube: cube is
// itself an AIG handle built as an AND of (possibly inverted) input
// literals. Every input edge appearing in cube is recorded as fixed to the
// appropriate constant, and each target is then re-evaluated bottom-up with
// the fixed inputs substituted in, memoized per node (not per edge) with
// the queried edge's inversion applied on lookup.
func (m *Mgr) Cofactor(cube Handle, targets []Handle) []Handle {
	if !cube.checkmgr(m) {
		m.seterror(InvalidArgument, "Cofactor: handle belongs to a different manager")
		res := make([]Handle, len(targets))
		for i := range res {
			res[i] = m.Zero()
		}
		return res
	}
	fixed := make(map[int32]bool)
	collectCubeLiterals(m, cube.e, fixed)

	memo := make(map[int32]Edge)
	var rec func(e Edge) Edge
	rec = func(e Edge) Edge {
		if e.IsConst() {
			return e
		}
		idx := e.index()
		if v, ok := memo[idx]; ok {
			return xorEdge(v, e.inv())
		}
		n := &m.nodes[idx]
		var res Edge
		if n.kind == kindInput {
			if fixedVal, ok := fixed[idx]; ok {
				res = constEdge(fixedVal)
			} else {
				res = mkedge(idx, false)
			}
		} else {
			res = m.and(rec(n.fanin0), rec(n.fanin1))
		}
		memo[idx] = res
		return xorEdge(res, e.inv())
	}

	out := make([]Handle, len(targets))
	for i, t := range targets {
		out[i] = m.box(rec(t.e))
	}
	return out
}

// collectCubeLiterals walks the AND chain forming cube and records, for
// every input reached, whether the cube forces it to true or false. cube is
// expected to be an AND of literals (the representation produced by
// AndMany over a set of input handles/negations); a non-input, non-AND leaf
// is not a well-formed cube and is ignored.
func collectCubeLiterals(m *Mgr, e Edge, fixed map[int32]bool) {
	if e.IsConst() {
		return
	}
	idx := e.index()
	n := &m.nodes[idx]
	if n.kind == kindInput {
		fixed[idx] = !e.inv()
		return
	}
	if e.inv() {
		return
	}
	collectCubeLiterals(m, n.fanin0, fixed)
	collectCubeLiterals(m, n.fanin1, fixed)
}

func constEdge(v bool) Edge {
	if v {
		return EdgeTrue
	}
	return EdgeFalse
}
