// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Hash functions, used to index the fixed-size open-addressed operation
// caches (see cache.go). The unique table itself is a plain Go map and does
// not need these.

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR(c, _PAIR(a, b, len), len))
}

// _PAIR is a mapping function that maps (bijectively) a pair of integer (a, b)
// into a unique integer then cast it into a value in the interval [0..len)
// using a modulo operation.
func _PAIR(a, b, len int) int {
	ua := uint64(a)
	ub := uint64(b)
	return int(((((ua + ub) * (ua + ub + 1)) / 2) + (ua)) % uint64(len))
}
