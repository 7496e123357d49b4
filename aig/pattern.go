// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import "sync"

// patKind is the operator a template node applies to its two operands.
type patKind int

const (
	patAnd patKind = iota
	patOr
)

// patRef names either one of the pattern's 4 abstract leaves or a
// previously built template node, with an inversion flag applied on use.
type patRef struct {
	leaf bool
	idx  int
	inv  bool
}

type patOp struct {
	kind patKind
	a, b patRef
}

// patEntry is a compiled recipe for one NPN-canonical 4-input function: a
// list of AND/OR template operations (in dependency order, so instantiation
// can materialize them with one forward pass) plus the reference naming
// the recipe's overall result.
type patEntry struct {
	ops  []patOp
	root patRef
}

// patternCache memoizes compiled recipes by canonical truth table, so the
// (comparatively expensive) Shannon-decomposition synthesis only runs once
// per distinct NPN class ever encountered, in place of an offline-generated
// 222-entry static table.
var (
	patternCacheMu sync.Mutex
	patternCache   = map[uint16]*patEntry{}
)

func getPattern(canon uint16) *patEntry {
	patternCacheMu.Lock()
	defer patternCacheMu.Unlock()
	if e, ok := patternCache[canon]; ok {
		return e
	}
	e := compilePattern(canon)
	patternCache[canon] = e
	return e
}

// compilePattern builds a recipe for tt by recursive Shannon decomposition
// over the 4 abstract variables: f = (!x . f0) | (x . f1), skipping the mux
// entirely (and sharing structure via the builder's memo) whenever a
// variable turns out not to matter for the remaining subfunction.
func compilePattern(tt uint16) *patEntry {
	b := &patBuilder{memo: map[uint16]patRef{}}
	root := b.compile(tt, 0)
	return &patEntry{ops: b.ops, root: root}
}

type patBuilder struct {
	ops  []patOp
	memo map[uint16]patRef
}

var (
	patZeroRef = patRef{leaf: false, idx: -1, inv: false}
	patOneRef  = patRef{leaf: false, idx: -1, inv: true}
)

func (b *patBuilder) compile(tt uint16, vi int) patRef {
	if tt == 0 {
		return patZeroRef
	}
	if tt == 0xFFFF {
		return patOneRef
	}
	if r, ok := b.memo[tt]; ok {
		return r
	}
	if vi >= 4 {
		// Every variable has been branched on; a non-constant function
		// cannot occur at this depth for a well-formed 4-input table.
		return patZeroRef
	}
	c0 := cofactor0(tt, vi)
	c1 := cofactor1(tt, vi)
	r0 := b.compile(c0, vi+1)
	r1 := b.compile(c1, vi+1)
	if r0 == r1 {
		b.memo[tt] = r0
		return r0
	}
	leaf := patRef{leaf: true, idx: vi}
	notLeaf := patRef{leaf: true, idx: vi, inv: true}
	a := b.add(patOp{kind: patAnd, a: notLeaf, b: r0})
	c := b.add(patOp{kind: patAnd, a: leaf, b: r1})
	res := b.add(patOp{kind: patOr, a: a, b: c})
	b.memo[tt] = res
	return res
}

func (b *patBuilder) add(op patOp) patRef {
	b.ops = append(b.ops, op)
	return patRef{leaf: false, idx: len(b.ops) - 1}
}

// instantiatePattern materializes entry inside m, binding abstract leaf j to
// leaves[j], and returns the resulting handle.
func (m *Mgr) instantiatePattern(entry *patEntry, leaves [4]Handle) Handle {
	built := make([]Handle, len(entry.ops))
	var resolve func(r patRef) Handle
	resolve = func(r patRef) Handle {
		var h Handle
		switch {
		case r.idx == -1:
			h = m.Zero()
		case r.leaf:
			h = leaves[r.idx]
		default:
			h = built[r.idx]
		}
		if r.inv {
			h = h.Not()
		}
		return h
	}
	for i, op := range entry.ops {
		a := resolve(op.a)
		b := resolve(op.b)
		if op.kind == patAnd {
			built[i] = m.And(a, b)
		} else {
			built[i] = m.Or(a, b)
		}
	}
	return resolve(entry.root)
}
