// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Compose substitutes every occurrence of variable level with the function
// replacement in n, i.e. it computes n[level := replacement]. The
// replacement may be an arbitrary BDD, not only another variable.
//
// The implementation follows the classical single-pass algorithm: recurse
// down n, and whenever the current node's level matches the substituted
// level, synthesize the result with Ite using the already-substituted low
// and high branches and the replacement function, instead of the cheaper
// but substitution-unaware makenode.
func (b *Mgr) Compose(n Node, level int, replacement Node) Node {
	if !b.checkmgr(n) || !b.checkmgr(replacement) {
		b.seterror(InvalidArgument, "Compose: operand belongs to a different manager")
		return b.Zero()
	}
	if level < 0 || level >= b.varnum {
		b.seterror(OutOfRange, "Compose: level %d out of range", level)
		return b.Zero()
	}
	b.composecache.id++
	res := b.compose(n.e, int32(level), replacement.e)
	return b.box(res)
}

func (b *Mgr) compose(n edge, level int32, repl edge) edge {
	if n.isConst() || b.level(n) > level {
		return n
	}
	if res, ok := b.composecache.matchcompose(n); ok {
		return res
	}
	if b.level(n) == level {
		res := b.ite(repl, b.high(n), b.low(n))
		return b.composecache.setcompose(n, res)
	}
	low := b.pushref(b.compose(b.low(n), level, repl))
	high := b.pushref(b.compose(b.high(n), level, repl))
	res := b.makenode(b.level(n), low, high)
	b.popref(2)
	return b.composecache.setcompose(n, res)
}

// MultiCompose substitutes every variable level present as a key in
// replacements simultaneously (as opposed to calling Compose repeatedly,
// which would substitute one variable into the still-unsubstituted
// occurrences of the others and give a different, generally wrong, result
// when a replacement function itself mentions a substituted variable).
func (b *Mgr) MultiCompose(n Node, replacements map[int]Node) Node {
	if !b.checkmgr(n) {
		b.seterror(InvalidArgument, "MultiCompose: node belongs to a different manager")
		return b.Zero()
	}
	repl := make(map[int32]edge, len(replacements))
	for lvl, r := range replacements {
		if !b.checkmgr(r) {
			b.seterror(InvalidArgument, "MultiCompose: replacement belongs to a different manager")
			return b.Zero()
		}
		if lvl < 0 || lvl >= b.varnum {
			b.seterror(OutOfRange, "MultiCompose: level %d out of range", lvl)
			return b.Zero()
		}
		repl[int32(lvl)] = r.e
	}
	b.composecache.id++
	memo := make(map[int32]edge)
	var rec func(e edge) edge
	rec = func(e edge) edge {
		if e.isConst() {
			return e
		}
		if v, ok := memo[int32(e)]; ok {
			return v
		}
		low := b.pushref(rec(b.low(e)))
		high := b.pushref(rec(b.high(e)))
		var res edge
		if r, ok := repl[b.level(e)]; ok {
			res = b.ite(r, high, low)
		} else {
			res = b.makenode(b.level(e), low, high)
		}
		b.popref(2)
		memo[int32(e)] = res
		return res
	}
	return b.box(rec(n.e))
}
