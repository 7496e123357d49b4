// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeTTIsStableUnderPermutation(t *testing.T) {
	// AND of inputs 0 and 1, ignoring 2 and 3: f = x0 & x1.
	tt := uint16(0xAAAA) & uint16(0xCCCC)
	canon1, _ := canonicalizeTT(tt)

	// Same function with inputs 0 and 1 swapped.
	swapped := permuteTT(tt, [4]int{1, 0, 2, 3})
	canon2, _ := canonicalizeTT(swapped)

	assert.Equal(t, canon1, canon2, "permutation-equivalent functions must canonicalize identically")
}

func TestCanonicalizeTTIsStableUnderNegation(t *testing.T) {
	tt := uint16(0xAAAA) & uint16(0xCCCC)
	canon1, _ := canonicalizeTT(tt)

	negated := flipVar(tt, 0)
	canon2, _ := canonicalizeTT(negated)

	assert.Equal(t, canon1, canon2)
}

func TestPatternInstantiationMatchesTruthTableExhaustive(t *testing.T) {
	m := New()
	leaves := [4]Handle{m.MakeInput(), m.MakeInput(), m.MakeInput(), m.MakeInput()}

	for tt := 0; tt < 0x10000; tt++ {
		canon, form := canonicalizeTT(uint16(tt))
		entry := getPattern(canon)

		var realLeaves [4]Handle
		for j := 0; j < 4; j++ {
			h := leaves[form.invPerm[j]]
			if form.polMask&(1<<uint(j)) != 0 {
				h = h.Not()
			}
			realLeaves[j] = h
		}
		result := m.instantiatePattern(entry, realLeaves)
		if form.outInv {
			result = result.Not()
		}

		for v := 0; v < 16; v++ {
			vec := []bool{v&1 != 0, v&2 != 0, v&4 != 0, v&8 != 0}
			want := (tt>>uint(v))&1 != 0
			got := m.Eval(result, vec)
			if want != got {
				t.Fatalf("tt=%#04x input %d: want %v got %v (perm=%v pol=%#x outInv=%v)",
					tt, v, want, got, form.invPerm, form.polMask, form.outInv)
			}
		}
	}
}

func TestPatternInstantiationMatchesTruthTable(t *testing.T) {
	m := New()
	leaves := [4]Handle{m.MakeInput(), m.MakeInput(), m.MakeInput(), m.MakeInput()}

	tt := uint16(0xAAAA) ^ uint16(0xCCCC) // x0 xor x1
	canon, form := canonicalizeTT(tt)
	entry := getPattern(canon)

	var realLeaves [4]Handle
	for j := 0; j < 4; j++ {
		h := leaves[form.invPerm[j]]
		if form.polMask&(1<<uint(j)) != 0 {
			h = h.Not()
		}
		realLeaves[j] = h
	}
	result := m.instantiatePattern(entry, realLeaves)
	if form.outInv {
		result = result.Not()
	}

	for v := 0; v < 16; v++ {
		vec := []bool{v&1 != 0, v&2 != 0, v&4 != 0, v&8 != 0}
		want := (vec[0] != vec[1])
		got := m.Eval(result, vec)
		assert.Equal(t, want, got, "mismatch at input %d", v)
	}
}
