// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sop

// Cover is a Sum-Of-Products: a set of cubes over a fixed variable count,
// kept sorted in descending bitvector order with no cube subsumed by
// another.
type Cover struct {
	varCount int
	cubes    []Cube
}

// NewCover returns the empty cover (the constant False) over varCount
// variables.
func NewCover(varCount int) Cover {
	return Cover{varCount: varCount}
}

// NewCoverFromCubes builds a cover from an arbitrary cube list, sorting and
// deduplicating/subsuming it into canonical form.
func NewCoverFromCubes(varCount int, cubes []Cube) Cover {
	cp := make([]Cube, len(cubes))
	copy(cp, cubes)
	sortCubes(cp)
	return Cover{varCount: varCount, cubes: dedupSorted(cp)}
}

func (c Cover) VarCount() int    { return c.varCount }
func (c Cover) Cubes() []Cube    { return c.cubes }
func (c Cover) CubeCount() int   { return len(c.cubes) }
func (c Cover) IsZero() bool     { return len(c.cubes) == 0 }

func (c *Cover) checkSameVars(o Cover) *Error {
	if c.varCount != o.varCount {
		return newError(InvalidArgument, "variable count mismatch: %d vs %d", c.varCount, o.varCount)
	}
	return nil
}

// Sum returns a ∪ b as a cover (the canonical sort/subsume is reapplied).
func (a Cover) Sum(b Cover) (Cover, error) {
	if err := a.checkSameVars(b); err != nil {
		return Cover{}, err
	}
	all := append(append([]Cube{}, a.cubes...), b.cubes...)
	return NewCoverFromCubes(a.varCount, all), nil
}

// Product returns the pairwise product of every cube in a with every cube
// in b, discarding conflicting (empty) products, then canonicalizes.
func (a Cover) Product(b Cover) (Cover, error) {
	if err := a.checkSameVars(b); err != nil {
		return Cover{}, err
	}
	res := make([]Cube, 0, len(a.cubes)*len(b.cubes))
	for _, x := range a.cubes {
		for _, y := range b.cubes {
			if p, ok := x.Product(y); ok {
				res = append(res, p)
			}
		}
	}
	return NewCoverFromCubes(a.varCount, res), nil
}

// ProductCube returns a's product with the single cube b (equivalent to
// Product against a singleton cover, but without constructing one).
func (a Cover) ProductCube(b Cube) Cover {
	res := make([]Cube, 0, len(a.cubes))
	for _, x := range a.cubes {
		if p, ok := x.Product(b); ok {
			res = append(res, p)
		}
	}
	return NewCoverFromCubes(a.varCount, res)
}

// Diff returns a set-difference a \ b: every point covered by a but not by
// any cube of b, computed by recursive Shannon cofactor against b's
// variables (the standard algebraic complement-free SOP difference).
func (a Cover) Diff(b Cover) (Cover, error) {
	if err := a.checkSameVars(b); err != nil {
		return Cover{}, err
	}
	memo := map[string]Cover{}
	var rec func(a, b Cover) Cover
	rec = func(a, b Cover) Cover {
		if a.IsZero() || b.IsZero() {
			return a
		}
		if b.isTautology() {
			return NewCover(a.varCount)
		}
		key := a.key() + "|" + b.key()
		if v, ok := memo[key]; ok {
			return v
		}
		v := b.mostBinateVar(a.varCount)
		a0, a1 := a.cofactorVar(v)
		b0, b1 := b.cofactorVar(v)
		d0 := rec(a0, b0)
		d1 := rec(a1, b1)
		res, _ := d0.Sum(d1)
		res = res.withVarFixed(v, a0, a1, d0, d1)
		memo[key] = res
		return res
	}
	return rec(a, b), nil
}

// withVarFixed reconstructs a cover from the pair of cofactors d0 (var=0)
// and d1 (var=1), reinstating the literal wherever it distinguishes the two
// half-covers, and folding cubes common to both halves back in as
// don't-care on v.
func (a Cover) withVarFixed(v int, a0, a1, d0, d1 Cover) Cover {
	common := d0.commonWith(d1)
	res := make([]Cube, 0)
	for _, c := range common.cubes {
		res = append(res, c)
	}
	rest0, _ := d0.Diff(common)
	rest1, _ := d1.Diff(common)
	for _, c := range rest0.cubes {
		cc := c.clone()
		cc.Set(v, PatZero)
		res = append(res, cc)
	}
	for _, c := range rest1.cubes {
		cc := c.clone()
		cc.Set(v, PatOne)
		res = append(res, cc)
	}
	return NewCoverFromCubes(a.varCount, res)
}

func (a Cover) commonWith(b Cover) Cover {
	res := make([]Cube, 0)
	for _, x := range a.cubes {
		for _, y := range b.cubes {
			if x.Equal(y) {
				res = append(res, x)
				break
			}
		}
	}
	return NewCoverFromCubes(a.varCount, res)
}

func (a Cover) key() string {
	buf := make([]byte, 0, len(a.cubes)*8)
	for _, c := range a.cubes {
		for _, w := range c.words {
			buf = append(buf, byte(w), byte(w>>8), byte(w>>16), byte(w>>24), byte(w>>32), byte(w>>40), byte(w>>48), byte(w>>56))
		}
		buf = append(buf, '|')
	}
	return string(buf)
}

// cofactorVar splits a into (a with var=0, a with var=1), the recursive
// building block for Diff/Complement.
func (a Cover) cofactorVar(v int) (zero, one Cover) {
	z := make([]Cube, 0)
	o := make([]Cube, 0)
	for _, c := range a.cubes {
		if c0, ok := c.Cofactor(v, false); ok {
			z = append(z, c0)
		}
		if c1, ok := c.Cofactor(v, true); ok {
			o = append(o, c1)
		}
	}
	return NewCoverFromCubes(a.varCount, z), NewCoverFromCubes(a.varCount, o)
}

// mostBinateVar picks the variable appearing with both polarities across
// the most cubes of a (or, failing that, any literal variable), a
// heuristic for picking a good Shannon split point for non-unate covers.
func (a Cover) mostBinateVar(varCount int) int {
	pos := make([]int, varCount)
	neg := make([]int, varCount)
	for _, c := range a.cubes {
		for i := 0; i < varCount; i++ {
			switch c.Get(i) {
			case PatOne:
				pos[i]++
			case PatZero:
				neg[i]++
			}
		}
	}
	best, bestScore := 0, -1
	for i := 0; i < varCount; i++ {
		score := pos[i]
		if neg[i] < score {
			score = neg[i]
		}
		if pos[i]+neg[i] > 0 && score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// Cofactor restricts every cube of a by the literal (v, value).
func (a Cover) Cofactor(v int, value bool) Cover {
	res, _ := a.cofactorVar(v)
	if value {
		_, res = a.cofactorVar(v)
	}
	return res
}

// Complement returns the SOP complement of a: if the cubes share a
// non-empty common cube it is factored out and the remainder complemented
// recursively; otherwise a is Shannon-expanded on the most binate variable
// and both cofactors are complemented recursively.
func (a Cover) Complement() Cover {
	if a.IsZero() {
		return onesCover(a.varCount)
	}
	if a.isTautology() {
		return NewCover(a.varCount)
	}
	cc := a.CommonCube()
	if cc.LiteralCount() > 0 {
		reduced := a.removeCommonCube(cc)
		comp := reduced.Complement()
		lits := cc.LiteralList()
		extra := make([]Cube, 0, len(lits))
		for _, l := range lits {
			v := l
			neg := false
			if v < 0 {
				v = -l - 1
				neg = true
			}
			c := NewCube(a.varCount)
			if neg {
				c.Set(v, PatOne)
			} else {
				c.Set(v, PatZero)
			}
			extra = append(extra, c)
		}
		res, _ := comp.Sum(NewCoverFromCubes(a.varCount, extra))
		return res
	}
	v := a.mostBinateVar(a.varCount)
	a0, a1 := a.cofactorVar(v)
	c0 := a0.Complement()
	c1 := a1.Complement()
	lit0 := NewCube(a.varCount)
	lit0.Set(v, PatZero)
	lit1 := NewCube(a.varCount)
	lit1.Set(v, PatOne)
	res, _ := c0.ProductCube(lit0).Sum(c1.ProductCube(lit1))
	return res
}

func (a Cover) removeCommonCube(cc Cube) Cover {
	res := make([]Cube, len(a.cubes))
	for i, c := range a.cubes {
		nc := c.clone()
		for j := 0; j < a.varCount; j++ {
			if cc.Get(j) != PatX {
				nc.Set(j, PatX)
			}
		}
		res[i] = nc
	}
	return NewCoverFromCubes(a.varCount, res)
}

func (a Cover) isTautology() bool {
	for _, c := range a.cubes {
		if c.LiteralCount() == 0 {
			return true
		}
	}
	return false
}

func onesCover(varCount int) Cover {
	c := NewCube(varCount)
	return NewCoverFromCubes(varCount, []Cube{c})
}

// CommonCube returns the cube made of the literals shared by every product
// term of a (the empty cube if a has no cube or no shared literal).
func (a Cover) CommonCube() Cube {
	if len(a.cubes) == 0 {
		return NewCube(a.varCount)
	}
	res := a.cubes[0].clone()
	for _, c := range a.cubes[1:] {
		for i := range res.words {
			res.words[i] &= c.words[i]
		}
	}
	return res
}

// LiteralCount returns the total number of literals across every cube.
func (a Cover) LiteralCount() int {
	n := 0
	for _, c := range a.cubes {
		n += c.LiteralCount()
	}
	return n
}

// CheckContainment reports whether every point of b is also a point of a
// (b ⊆ a), by testing that b \ a is empty.
func (a Cover) CheckContainment(b Cover) (bool, error) {
	d, err := b.Diff(a)
	if err != nil {
		return false, err
	}
	return d.IsZero(), nil
}

// CheckIntersect reports whether a and b share at least one point, by
// testing that their pairwise product is non-empty.
func (a Cover) CheckIntersect(b Cover) (bool, error) {
	p, err := a.Product(b)
	if err != nil {
		return false, err
	}
	return !p.IsZero(), nil
}

// LiteralList returns the literal list of every cube, in cube order.
func (a Cover) LiteralList() [][]int {
	res := make([][]int, len(a.cubes))
	for i, c := range a.cubes {
		res[i] = c.LiteralList()
	}
	return res
}

// Quotient computes the algebraic division a/b: for every cube of a, try to
// divide it by every cube of b; a quotient survives only if it was
// produced for every cube of b exactly once (see Cube.Quotient).
func (a Cover) Quotient(b Cover) (Cover, error) {
	if err := a.checkSameVars(b); err != nil {
		return Cover{}, err
	}
	if len(b.cubes) == 0 {
		return NewCover(a.varCount), nil
	}
	counts := map[string]int{}
	reps := map[string]Cube{}
	for _, ca := range a.cubes {
		for _, cb := range b.cubes {
			if q, ok := ca.Quotient(cb); ok {
				k := cubeKey(q)
				counts[k]++
				reps[k] = q
			}
		}
	}
	res := make([]Cube, 0)
	for k, n := range counts {
		if n == len(b.cubes) {
			res = append(res, reps[k])
		}
	}
	return NewCoverFromCubes(a.varCount, res), nil
}

// QuotientCube divides every cube of a by the single cube b.
func (a Cover) QuotientCube(b Cube) Cover {
	res := make([]Cube, 0, len(a.cubes))
	for _, c := range a.cubes {
		if q, ok := c.Quotient(b); ok {
			res = append(res, q)
		}
	}
	return NewCoverFromCubes(a.varCount, res)
}

func cubeKey(c Cube) string {
	buf := make([]byte, 0, len(c.words)*8)
	for _, w := range c.words {
		buf = append(buf, byte(w), byte(w>>8), byte(w>>16), byte(w>>24), byte(w>>32), byte(w>>40), byte(w>>48), byte(w>>56))
	}
	return string(buf)
}
