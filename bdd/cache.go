// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"unsafe"
)

// Operation caches: fixed-size, open-addressed, single-entry-per-slot
// memoization tables for the recursive algorithms in operations.go and
// compose.go. A miss simply recomputes; nothing is ever chained, so a
// collision silently evicts whatever was there before. This trades a
// slightly lower hit rate for O(1), allocation-free lookups.

type data4n struct {
	res     edge
	a, b, c int32
}

type data4ncache struct {
	ratio  int
	opHit  int
	opMiss int
	table  []data4n
}

func (bc *data4ncache) init(size, ratio int) {
	size = primeGte(size)
	bc.table = make([]data4n, size)
	bc.ratio = ratio
	bc.reset()
}

func (bc *data4ncache) resize(size int) {
	if bc.ratio > 0 {
		size = primeGte((size * bc.ratio) / 100)
		bc.table = make([]data4n, size)
	}
	bc.reset()
}

func (bc *data4ncache) reset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

type data3n struct {
	res  edge
	a, c int32
}

type data3ncache struct {
	ratio  int
	opHit  int
	opMiss int
	table  []data3n
}

func (bc *data3ncache) init(size, ratio int) {
	size = primeGte(size)
	bc.table = make([]data3n, size)
	bc.ratio = ratio
	bc.reset()
}

func (bc *data3ncache) resize(size int) {
	if bc.ratio > 0 {
		size = primeGte((size * bc.ratio) / 100)
		bc.table = make([]data3n, size)
	}
	bc.reset()
}

func (bc *data3ncache) reset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// Setup and shutdown

func (b *Mgr) cacheinit(c *configs) {
	size := 10000
	if c.cachesize != 0 {
		size = c.cachesize
	}
	size = primeGte(size)
	b.applycache = &applycache{}
	b.applycache.init(size, c.cacheratio)
	b.itecache = &itecache{}
	b.itecache.init(size, c.cacheratio)
	b.composecache = &composecache{}
	b.composecache.init(size, c.cacheratio)
}

func (b *Mgr) cachereset() {
	b.applycache.reset()
	b.itecache.reset()
	b.composecache.reset()
}

func (b *Mgr) cacheresize(nodesize int) {
	b.applycache.resize(nodesize)
	b.itecache.resize(nodesize)
	b.composecache.resize(nodesize)
}

// The hash function for Apply is #(left, right, applycache.op).

type applycache struct {
	data4ncache
	op int32
}

func (bc *applycache) matchapply(left, right edge) (edge, bool) {
	entry := &bc.table[_TRIPLE(int(left), int(right), int(bc.op), len(bc.table))]
	if entry.a == int32(left) && entry.b == int32(right) && entry.c == bc.op {
		bc.opHit++
		return entry.res, true
	}
	bc.opMiss++
	return edgeFalse, false
}

func (bc *applycache) setapply(left, right, res edge) edge {
	bc.table[_TRIPLE(int(left), int(right), int(bc.op), len(bc.table))] = data4n{
		a: int32(left), b: int32(right), c: bc.op, res: res,
	}
	return res
}

func (bc applycache) String() string {
	return cacheStatsString("Apply", len(bc.table), bc.opHit, bc.opMiss, unsafe.Sizeof(data4n{}))
}

// The hash function for ITE is #(f,g,h).

type itecache struct {
	data4ncache
}

func (bc *itecache) matchite(f, g, h edge) (edge, bool) {
	entry := &bc.table[_TRIPLE(int(f), int(g), int(h), len(bc.table))]
	if entry.a == int32(f) && entry.b == int32(g) && entry.c == int32(h) {
		bc.opHit++
		return entry.res, true
	}
	bc.opMiss++
	return edgeFalse, false
}

func (bc *itecache) setite(f, g, h, res edge) edge {
	bc.table[_TRIPLE(int(f), int(g), int(h), len(bc.table))] = data4n{
		a: int32(f), b: int32(g), c: int32(h), res: res,
	}
	return res
}

func (bc itecache) String() string {
	return cacheStatsString("ITE", len(bc.table), bc.opHit, bc.opMiss, unsafe.Sizeof(data4n{}))
}

// composecache memoizes Compose/MultiCompose; the hash function for a node
// n is simply n, disambiguated against stale entries from a previous
// Compose call via id.

type composecache struct {
	data3ncache
	id int32
}

func (bc *composecache) matchcompose(n edge) (edge, bool) {
	entry := &bc.table[int(n)%len(bc.table)]
	if entry.a == int32(n) && entry.c == bc.id {
		bc.opHit++
		return entry.res, true
	}
	bc.opMiss++
	return edgeFalse, false
}

func (bc *composecache) setcompose(n, res edge) edge {
	bc.table[int(n)%len(bc.table)] = data3n{a: int32(n), c: bc.id, res: res}
	return res
}

func (bc composecache) String() string {
	return cacheStatsString("Compose", len(bc.table), bc.opHit, bc.opMiss, unsafe.Sizeof(data3n{}))
}

func cacheStatsString(name string, size, hit, miss int, elem uintptr) string {
	total := hit + miss
	ratio := 0.0
	if total > 0 {
		ratio = (float64(hit) * 100) / float64(total)
	}
	res := fmt.Sprintf("== %s cache  %d (%s)\n", name, size, humanSize(size, elem))
	res += fmt.Sprintf(" Hits: %d (%.1f%%)\n", hit, ratio)
	res += fmt.Sprintf(" Miss: %d\n", miss)
	return res
}
