// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sop

// sortCubes sorts cubes into the canonical descending bitvector order using
// a merge sort over an external scratch buffer, unrolled for the common
// small-cover case (≤4 cubes) to skip the recursive split/merge overhead.
func sortCubes(cubes []Cube) {
	switch len(cubes) {
	case 0, 1:
		return
	case 2:
		if cubes[0].Compare(cubes[1]) > 0 {
			cubes[0], cubes[1] = cubes[1], cubes[0]
		}
		return
	case 3:
		insertionSort(cubes)
		return
	case 4:
		insertionSort(cubes)
		return
	}
	scratch := make([]Cube, len(cubes))
	mergeSort(cubes, scratch)
}

func insertionSort(cubes []Cube) {
	for i := 1; i < len(cubes); i++ {
		for j := i; j > 0 && cubes[j-1].Compare(cubes[j]) > 0; j-- {
			cubes[j-1], cubes[j] = cubes[j], cubes[j-1]
		}
	}
}

func mergeSort(cubes, scratch []Cube) {
	n := len(cubes)
	if n <= 4 {
		insertionSort(cubes)
		return
	}
	mid := n / 2
	mergeSort(cubes[:mid], scratch[:mid])
	mergeSort(cubes[mid:], scratch[mid:])
	copy(scratch, cubes)
	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if scratch[i].Compare(scratch[j]) <= 0 {
			cubes[k] = scratch[i]
			i++
		} else {
			cubes[k] = scratch[j]
			j++
		}
		k++
	}
	for i < mid {
		cubes[k] = scratch[i]
		i++
		k++
	}
	for j < n {
		cubes[k] = scratch[j]
		j++
		k++
	}
}

// dedupSorted removes, from an already (descending-order) sorted slice,
// every cube subsumed by another cube in the cover. A subsuming cube has
// fewer literals (all shared with the subsumed one) and so, in descending
// bitvector order, always sorts *after* anything it subsumes — the scan
// below therefore runs back-to-front, accumulating general cubes first so
// each more specific cube can be tested against them.
func dedupSorted(cubes []Cube) []Cube {
	n := len(cubes)
	if n == 0 {
		return cubes
	}
	keep := make([]bool, n)
	var general []Cube
	for i := n - 1; i >= 0; i-- {
		c := cubes[i]
		subsumed := false
		for _, g := range general {
			if c.Contains(g) { // literals(g) subset of literals(c): g subsumes c
				subsumed = true
				break
			}
		}
		if !subsumed {
			keep[i] = true
			general = append(general, c)
		}
	}
	out := cubes[:0]
	for i, c := range cubes {
		if keep[i] {
			out = append(out, c)
		}
	}
	return out
}
