// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubeProductConflict(t *testing.T) {
	a := NewCubeFromLiterals(3, []int{0})   // x0
	b := NewCubeFromLiterals(3, []int{-1})  // !x0
	_, ok := a.Product(b)
	assert.False(t, ok)
}

func TestCubeProductMerge(t *testing.T) {
	a := NewCubeFromLiterals(3, []int{0})
	b := NewCubeFromLiterals(3, []int{1})
	p, ok := a.Product(b)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1}, p.LiteralList())
}

func TestCoverSortedAndDeduped(t *testing.T) {
	c1 := NewCubeFromLiterals(2, []int{0})
	c2 := NewCubeFromLiterals(2, []int{0, 1})
	cov := NewCoverFromCubes(2, []Cube{c1, c2})
	// c1 (x0) subsumes c2 (x0.x1): only c1 should remain.
	assert.Equal(t, 1, cov.CubeCount())
	assert.True(t, cov.Cubes()[0].Equal(c1))
}

func TestAlgebraicDivision(t *testing.T) {
	// F = x0.x1 + x0.x2 + x3, G = x1 + x2. F/G should be {x0}.
	x0x1 := NewCubeFromLiterals(4, []int{0, 1})
	x0x2 := NewCubeFromLiterals(4, []int{0, 2})
	x3 := NewCubeFromLiterals(4, []int{3})
	f := NewCoverFromCubes(4, []Cube{x0x1, x0x2, x3})

	x1 := NewCubeFromLiterals(4, []int{1})
	x2 := NewCubeFromLiterals(4, []int{2})
	g := NewCoverFromCubes(4, []Cube{x1, x2})

	q, err := f.Quotient(g)
	assert.NoError(t, err)
	assert.Equal(t, 1, q.CubeCount())
	assert.Equal(t, []int{0}, q.Cubes()[0].LiteralList())

	prod, err := q.Product(g)
	assert.NoError(t, err)
	rem, err := f.Diff(prod)
	assert.NoError(t, err)
	assert.Equal(t, 1, rem.CubeCount())
	assert.Equal(t, []int{3}, rem.Cubes()[0].LiteralList())
}

func TestCoverProductDistributesOverSum(t *testing.T) {
	a1 := NewCubeFromLiterals(3, []int{0})
	a2 := NewCubeFromLiterals(3, []int{1})
	a := NewCoverFromCubes(3, []Cube{a1, a2})
	b := NewCoverFromCubes(3, []Cube{NewCubeFromLiterals(3, []int{2})})

	lhs, err := a.Product(b)
	assert.NoError(t, err)

	p1, err := NewCoverFromCubes(3, []Cube{a1}).Product(b)
	assert.NoError(t, err)
	p2, err := NewCoverFromCubes(3, []Cube{a2}).Product(b)
	assert.NoError(t, err)
	rhs, err := p1.Sum(p2)
	assert.NoError(t, err)

	assert.Equal(t, lhs.Hash(), rhs.Hash())
}

func TestCheckContainmentAndIntersect(t *testing.T) {
	sub := NewCoverFromCubes(2, []Cube{NewCubeFromLiterals(2, []int{0, 1})})
	super := NewCoverFromCubes(2, []Cube{NewCubeFromLiterals(2, []int{0})})

	contained, err := super.CheckContainment(sub)
	assert.NoError(t, err)
	assert.True(t, contained)

	intersects, err := sub.CheckIntersect(super)
	assert.NoError(t, err)
	assert.True(t, intersects)
}

func TestCofactorRestrictsVariable(t *testing.T) {
	cov := NewCoverFromCubes(2, []Cube{
		NewCubeFromLiterals(2, []int{0, 1}),
		NewCubeFromLiterals(2, []int{-1}),
	})
	c0 := cov.Cofactor(0, false)
	// With x0=0: first cube (x0.x1) vanishes, second (!x0) becomes the
	// universal cube (all don't-care).
	assert.Equal(t, 1, c0.CubeCount())
	assert.Equal(t, 0, c0.Cubes()[0].LiteralCount())
}
