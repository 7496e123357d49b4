// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yusuke-matsunaga/ym-logic-sub004/sop"
)

func TestStructuralHashSharesNode(t *testing.T) {
	m := New()
	a := m.MakeInput()
	b := m.MakeInput()
	f := m.And(a, b)
	g := m.And(b, a)
	assert.Equal(t, f.e, g.e, "AND is commutative: identical node expected")
	assert.Equal(t, 1, m.AndCount())
}

func TestStructuralHashDistinctPairsDistinctNodes(t *testing.T) {
	m := New()
	a := m.MakeInput()
	b := m.MakeInput()
	c := m.MakeInput()
	f := m.And(a, b)
	g := m.And(a, c)
	assert.NotEqual(t, f.e, g.e)
}

func TestAndTrivialCases(t *testing.T) {
	m := New()
	a := m.MakeInput()
	assert.True(t, m.And(a, m.Zero()).IsZero())
	assert.True(t, m.And(a, m.One()).Equal(a))
	assert.True(t, m.And(a, a).Equal(a))
	assert.True(t, m.And(a, a.Not()).IsZero())
}

func TestOrXorSemantics(t *testing.T) {
	m := New()
	a := m.MakeInput()
	b := m.MakeInput()
	or := m.Or(a, b)
	xor := m.Xor(a, b)
	for _, av := range []bool{false, true} {
		for _, bv := range []bool{false, true} {
			assert.Equal(t, av || bv, m.Eval(or, []bool{av, bv}))
			assert.Equal(t, av != bv, m.Eval(xor, []bool{av, bv}))
		}
	}
}

func TestAndManyBalancedReduction(t *testing.T) {
	m := New()
	ins := make([]Handle, 5)
	for i := range ins {
		ins[i] = m.MakeInput()
	}
	f := m.AndMany(ins...)
	allTrue := []bool{true, true, true, true, true}
	assert.True(t, m.Eval(f, allTrue))
	oneFalse := []bool{true, true, false, true, true}
	assert.False(t, m.Eval(f, oneFalse))
}

func TestAndManyCountsAndEval(t *testing.T) {
	m := New()
	i0 := m.MakeInput()
	i1 := m.MakeInput()
	i2 := m.MakeInput()
	h := m.AndMany(i0, i1, i2)
	assert.Equal(t, 5, m.NodeCount())
	assert.Equal(t, 2, m.AndCount())
	assert.True(t, m.Eval(h, []bool{true, true, true}))
	assert.False(t, m.Eval(h, []bool{true, false, true}))

	h = Handle{} // drop the last live reference so its finalizer can run
	runtime.GC()
	runtime.GC()
	m.Sweep()
	assert.Equal(t, 0, m.AndCount())
	assert.Equal(t, 3, m.NodeCount())
	assert.True(t, m.Input(0).Equal(i0))
}

func TestPrimitiveOpDispatch(t *testing.T) {
	m := New()
	a := m.MakeInput()
	b := m.MakeInput()
	assert.True(t, m.PrimitiveOp(sop.ExprAnd, []Handle{a, b}).Equal(m.And(a, b)))
	assert.True(t, m.PrimitiveOp(sop.ExprOr, []Handle{a, b}).Equal(m.Or(a, b)))
	assert.True(t, m.PrimitiveOp(sop.ExprXor, []Handle{a, b}).Equal(m.Xor(a, b)))
}

func TestCofactorRestriction(t *testing.T) {
	m := New()
	a := m.MakeInput()
	b := m.MakeInput()
	f := m.Xor(a, b)
	cube := a // the literal a (positive)
	res := m.Cofactor(cube, []Handle{f})
	assert.True(t, res[0].Equal(b.Not()))
}

func TestCopyAcrossManagers(t *testing.T) {
	src := New()
	a := src.MakeInput()
	b := src.MakeInput()
	f := src.And(a, b)

	dst := New()
	dst.MakeInput()
	dst.MakeInput()
	g := src.Copy(dst, f)
	assert.True(t, dst.Eval(g, []bool{true, true}))
	assert.False(t, dst.Eval(g, []bool{true, false}))
}

func TestSweepReclaimsDeadNodes(t *testing.T) {
	m := New()
	a := m.MakeInput()
	b := m.MakeInput()
	_ = m.And(a, b)
	before := m.AndCount()
	assert.Equal(t, 1, before)
	runtime.GC()
	runtime.GC()
	m.Sweep()
	assert.Equal(t, 0, m.AndCount())
	assert.Equal(t, 2, m.NodeCount())
}

func TestRewritePreservesSemantics(t *testing.T) {
	m := New()
	ins := make([]Handle, 4)
	for i := range ins {
		ins[i] = m.MakeInput()
	}
	f := m.XorMany(ins...)
	before := make([]bool, 16)
	for v := 0; v < 16; v++ {
		vec := []bool{v&1 != 0, v&2 != 0, v&4 != 0, v&8 != 0}
		before[v] = m.Eval(f, vec)
	}
	m.Rewrite()
	for v := 0; v < 16; v++ {
		vec := []bool{v&1 != 0, v&2 != 0, v&4 != 0, v&8 != 0}
		assert.Equal(t, before[v], m.Eval(f, vec), "rewrite must preserve semantics for input %d", v)
	}
}
