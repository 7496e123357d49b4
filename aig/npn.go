// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

// A 4-input truth table is packed into the low 16 bits of a uint16: bit p
// (0..15) holds the function's value at the input assignment whose bits
// (b3 b2 b1 b0) equal p's bits, consistent with the leaf substitution
// patterns 0xAAAA (var0), 0xCCCC (var1), 0xF0F0 (var2), 0xFF00 (var3).

type ttMask struct {
	mask  uint16
	shift uint
}

var varMasks = [4]ttMask{
	{0xAAAA, 1},
	{0xCCCC, 2},
	{0xF0F0, 4},
	{0xFF00, 8},
}

// cofactor0/cofactor1 restrict tt to var=0/var=1, broadcasting the
// restricted half back over the whole 16-bit table (so the result no
// longer depends on var).
func cofactor0(tt uint16, vi int) uint16 {
	m := varMasks[vi]
	lo := tt &^ m.mask
	return lo | (lo << m.shift)
}

func cofactor1(tt uint16, vi int) uint16 {
	m := varMasks[vi]
	hi := tt & m.mask
	return hi | (hi >> m.shift)
}

// flipVar swaps the var=0 and var=1 halves of tt, the effect of negating
// input vi.
func flipVar(tt uint16, vi int) uint16 {
	m := varMasks[vi]
	return ((tt & m.mask) >> m.shift) | ((tt &^ m.mask) << m.shift)
}

func flipVars(tt uint16, polMask int) uint16 {
	for vi := 0; vi < 4; vi++ {
		if polMask&(1<<uint(vi)) != 0 {
			tt = flipVar(tt, vi)
		}
	}
	return tt
}

// permutations4 lists all 24 permutations of {0,1,2,3}; permutations4[k][i]
// is the new slot that input variable i is moved to.
var permutations4 = [][4]int{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 2, 3, 1}, {0, 3, 1, 2}, {0, 3, 2, 1},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {1, 2, 0, 3}, {1, 2, 3, 0}, {1, 3, 0, 2}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 0, 3, 1}, {2, 1, 0, 3}, {2, 1, 3, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{3, 0, 1, 2}, {3, 0, 2, 1}, {3, 1, 0, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

func permuteTT(tt uint16, perm [4]int) uint16 {
	var res uint16
	for p := 0; p < 16; p++ {
		q := 0
		for i := 0; i < 4; i++ {
			if (p>>uint(perm[i]))&1 != 0 {
				q |= 1 << uint(i)
			}
		}
		if (tt>>uint(q))&1 != 0 {
			res |= 1 << uint(p)
		}
	}
	return res
}

// npnForm records the transform that carries a concrete 4-input function to
// its NPN-canonical representative: invPerm[i] names which real input slot
// feeds canonical slot i (i.e. canonical input i is real input invPerm[i],
// possibly negated), polMask bit i says that canonical slot is negated on
// input, and outInv says the canonical output is the complement of the
// real one.
type npnForm struct {
	invPerm [4]int
	polMask int
	outInv  bool
}

func invertPerm(perm [4]int) [4]int {
	var inv [4]int
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}

// canonicalizeTT finds the lexicographically smallest truth table reachable
// from tt under the 768-element NPN group (16 input polarities x 24 input
// permutations x 2 output polarities), exhaustively, and the transform that
// produced it.
func canonicalizeTT(tt uint16) (uint16, npnForm) {
	best := -1
	var bestForm npnForm
	for _, perm := range permutations4 {
		permuted := permuteTT(tt, perm)
		for pol := 0; pol < 16; pol++ {
			flipped := flipVars(permuted, pol)
			for _, outInv := range [2]bool{false, true} {
				cand := flipped
				if outInv {
					cand = ^cand & 0xFFFF
				}
				if best == -1 || int(cand) < best {
					best = int(cand)
					bestForm = npnForm{invPerm: invertPerm(perm), polMask: pol, outInv: outInv}
				}
			}
		}
	}
	return uint16(best), bestForm
}
