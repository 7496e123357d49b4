// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// FromTruth builds the BDD whose truth table is bits, a string of '0'/'1'
// characters of length 2^len(vars) (or 2^Varnum() if vars is omitted). Bit i
// of bits, read with bits[len(bits)-1-i] as the least significant character,
// gives the function's value for the minterm where variable vars[k] takes
// the value of bit k of i.
func (b *Mgr) FromTruth(bits string, vars ...int) Node {
	if len(vars) == 0 {
		vars = make([]int, b.varnum)
		for i := range vars {
			vars[i] = i
		}
	}
	n := len(vars)
	if len(bits) != 1<<uint(n) {
		b.seterror(InvalidArgument, "FromTruth: bit string length %d does not match 2^%d variables", len(bits), n)
		return b.Zero()
	}
	for _, v := range vars {
		if v < 0 || v >= b.varnum {
			b.seterror(OutOfRange, "FromTruth: variable %d out of range", v)
			return b.Zero()
		}
	}
	terms := make([]Node, 0, len(bits))
	for i := 0; i < len(bits); i++ {
		c := bits[len(bits)-1-i]
		if c != '0' && c != '1' {
			b.seterror(InvalidArgument, "FromTruth: invalid character %q in bit string", c)
			return b.Zero()
		}
		if c == '0' {
			continue
		}
		cube := b.One()
		for k, v := range vars {
			if i&(1<<uint(k)) != 0 {
				cube = b.Apply(OPand, cube, b.Ithvar(v))
			} else {
				cube = b.Apply(OPand, cube, b.NIthvar(v))
			}
		}
		terms = append(terms, cube)
	}
	return b.Or(terms...)
}

// ToTruth returns the truth table of n as a '0'/'1' string over vars (or
// every manager variable in index order if vars is omitted), in the same
// bit-ordering convention as FromTruth.
func (b *Mgr) ToTruth(n Node, vars ...int) string {
	if !b.checkmgr(n) {
		b.seterror(InvalidArgument, "ToTruth: node belongs to a different manager")
		return ""
	}
	if len(vars) == 0 {
		vars = make([]int, b.varnum)
		for i := range vars {
			vars[i] = i
		}
	}
	size := 1 << uint(len(vars))
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		assign := make([]bool, b.varnum)
		for k, v := range vars {
			assign[b.varorder[v]] = i&(1<<uint(k)) != 0
		}
		if b.Eval(n, assign) {
			out[size-1-i] = '1'
		} else {
			out[size-1-i] = '0'
		}
	}
	return string(out)
}

// Eval evaluates n under the total assignment given by values, indexed by
// variable level.
func (b *Mgr) Eval(n Node, values []bool) bool {
	e := n.e
	for !e.isConst() {
		if values[b.level(e)] {
			e = b.high(e)
		} else {
			e = b.low(e)
		}
	}
	return e.isTrue()
}

func (b *Mgr) checkEvalLen(values []bool) error {
	if len(values) != b.varnum {
		return fmt.Errorf("expected %d values, got %d", b.varnum, len(values))
	}
	return nil
}
