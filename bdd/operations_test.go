// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeCanonicity(t *testing.T) {
	b := New(3)
	x0 := b.Ithvar(0)
	x1 := b.Ithvar(1)
	f := b.Or(x0, x1)
	g := b.Or(x1, x0)
	assert.Equal(t, f.e, g.e, "Or is commutative: identical edge expected")
}

func TestDoubleNegation(t *testing.T) {
	b := New(4)
	x0 := b.Ithvar(0)
	x1 := b.Ithvar(1)
	f := b.And(x0, b.Not(x1))
	assert.Equal(t, f.e, b.Not(b.Not(f)).e)
}

func TestDeMorgan(t *testing.T) {
	b := New(4)
	x0 := b.Ithvar(0)
	x1 := b.Ithvar(1)
	lhs := b.Not(b.Or(x0, x1))
	rhs := b.And(b.Not(x0), b.Not(x1))
	assert.True(t, lhs.Equal(rhs))
}

func TestXorCanonical(t *testing.T) {
	b := New(2)
	x0 := b.Ithvar(0)
	x1 := b.Ithvar(1)
	f := b.Apply(OPxor, x0, x1)
	g := b.Apply(OPxor, x1, x0)
	assert.Equal(t, f.e, g.e)
	assert.True(t, f.Equal(b.Or(b.And(x0, b.Not(x1)), b.And(b.Not(x0), x1))))
}

func TestCofactorIdentity(t *testing.T) {
	b := New(3)
	x0 := b.Ithvar(0)
	nx0 := b.NIthvar(0)
	x1 := b.Ithvar(1)
	f := b.Apply(OPxor, x0, x1)
	restricted := b.Or(b.And(x0, b.Cofactor(f, x0)), b.And(nx0, b.Cofactor(f, nx0)))
	assert.True(t, f.Equal(restricted))
}

func TestDumpRestoreRoundtrip(t *testing.T) {
	b := New(4)
	x0 := b.Ithvar(0)
	x1 := b.Ithvar(1)
	x2 := b.Ithvar(2)
	f := b.Ite(x0, x1, x2)

	data, err := b.Dump(f)
	require.NoError(t, err)

	roots, err := b.Restore(data)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.True(t, f.Equal(roots[0]))
}

func TestTruthTableRoundtrip(t *testing.T) {
	b := New(3)
	f := b.FromTruth("01101001", 0, 1, 2)
	s := b.ToTruth(f, 0, 1, 2)
	assert.Equal(t, "01101001", s)
}

func TestComposeMatchesSubstitution(t *testing.T) {
	b := New(3)
	x0 := b.Ithvar(0)
	x1 := b.Ithvar(1)
	x2 := b.Ithvar(2)
	f := b.And(x0, x1)
	g := b.Compose(f, 1, x2)
	assert.True(t, g.Equal(b.And(x0, x2)))
}

func TestMultiComposeSimultaneous(t *testing.T) {
	b := New(4)
	x0 := b.Ithvar(0)
	x1 := b.Ithvar(1)
	x2 := b.Ithvar(2)
	x3 := b.Ithvar(3)
	f := b.Apply(OPxor, x0, x1)
	g := b.MultiCompose(f, map[int]Node{0: x2, 1: x3})
	assert.True(t, g.Equal(b.Apply(OPxor, x2, x3)))
}

func TestIdenticalAcrossManagers(t *testing.T) {
	b1 := New(2)
	b2 := New(2)
	f1 := b1.Or(b1.Ithvar(0), b1.Ithvar(1))
	f2 := b2.Or(b2.Ithvar(0), b2.Ithvar(1))
	assert.True(t, IsIdentical(b1, f1, b2, f2))
}
