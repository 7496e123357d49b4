// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import "runtime"

// Mgr is an AIG manager: it owns the node arena, the structural-hash table
// for AND nodes, and the primary input list. Like this module's bdd.Mgr, it
// is not safe for concurrent use.
type Mgr struct {
	nodes   []node
	andhash map[andKey]int32
	freepos int32
	freenum int

	inputs []int32 // input index -> node index

	liveHandles int
	listeners   []Listener

	err *Error
}

// New creates an empty AIG manager with no inputs.
func New() *Mgr {
	m := &Mgr{
		nodes:   make([]node, 1, 64),
		andhash: make(map[andKey]int32, 64),
	}
	return m
}

// AndCount returns the number of live AND nodes (inputs are not counted).
func (m *Mgr) AndCount() int {
	n := 0
	for i := 1; i < len(m.nodes); i++ {
		if !m.nodes[i].isFree() && m.nodes[i].kind == kindAnd {
			n++
		}
	}
	return n
}

// NodeCount returns the total number of live nodes, inputs and AND gates
// together.
func (m *Mgr) NodeCount() int {
	return m.InputCount() + m.AndCount()
}

// InputCount returns the number of primary inputs.
func (m *Mgr) InputCount() int {
	return len(m.inputs)
}

// Input returns the handle of the i-th primary input.
func (m *Mgr) Input(i int) Handle {
	return m.box(mkedge(m.inputs[i], false))
}

func (m *Mgr) allocnode() int32 {
	if m.freenum == 0 {
		m.growtable()
	}
	idx := m.freepos
	n := &m.nodes[idx]
	m.freepos = n.next
	m.freenum--
	return idx
}

func (m *Mgr) growtable() {
	oldsize := len(m.nodes)
	newsize := oldsize * 2
	if newsize < 64 {
		newsize = 64
	}
	grown := make([]node, newsize)
	copy(grown, m.nodes)
	m.nodes = grown
	for i := oldsize; i < newsize; i++ {
		m.nodes[i].level = -1
		m.nodes[i].next = int32(i) + 1
	}
	m.nodes[newsize-1].next = 0
	m.freepos = int32(oldsize)
	m.freenum = newsize - oldsize
}

// Zero returns the constant False handle.
func (m *Mgr) Zero() Handle { return Handle{mgr: m, e: EdgeFalse} }

// One returns the constant True handle.
func (m *Mgr) One() Handle { return Handle{mgr: m, e: EdgeTrue} }

// MakeInput allocates a fresh primary input and returns its handle.
func (m *Mgr) MakeInput() Handle {
	idx := m.allocnode()
	n := &m.nodes[idx]
	n.kind = kindInput
	n.level = 0
	n.inputID = int32(len(m.inputs))
	m.inputs = append(m.inputs, idx)
	return m.box(mkedge(idx, false))
}

func (m *Mgr) box(e Edge) Handle {
	h := Handle{mgr: m, e: e}
	if !e.IsConst() {
		m.addref(e)
		m.liveHandles++
		pin := new(handlePin)
		runtime.SetFinalizer(pin, func(*handlePin) {
			m.delref(e)
			m.liveHandles--
		})
		h.pin = pin
	}
	return h
}
