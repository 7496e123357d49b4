// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

const _MAXREFCOUNT int32 = 0x3FFFFFFF

func (m *Mgr) addref(e Edge) {
	if e.IsConst() {
		return
	}
	n := &m.nodes[e.index()]
	if n.refs < _MAXREFCOUNT {
		n.refs++
	}
}

func (m *Mgr) delref(e Edge) {
	if e.IsConst() {
		return
	}
	n := &m.nodes[e.index()]
	if n.refs > 0 && n.refs < _MAXREFCOUNT {
		n.refs--
	}
}

// Sweep reclaims every AND node that is neither externally referenced nor
// reachable from one that is. Primary inputs are never swept, even if
// currently unused, since MakeInput's caller retains the right to wire them
// in later without re-requesting the same input index.
func (m *Mgr) Sweep() {
	for i := 1; i < len(m.nodes); i++ {
		if !m.nodes[i].isFree() {
			m.nodes[i].mark = false
		}
	}
	var mark func(idx int32)
	mark = func(idx int32) {
		n := &m.nodes[idx]
		if n.mark {
			return
		}
		n.mark = true
		if n.kind == kindAnd {
			if !n.fanin0.IsConst() {
				mark(n.fanin0.index())
			}
			if !n.fanin1.IsConst() {
				mark(n.fanin1.index())
			}
		}
	}
	for i := 1; i < len(m.nodes); i++ {
		n := &m.nodes[i]
		if !n.isFree() && (n.kind == kindInput || n.refs > 0) {
			mark(int32(i))
		}
	}
	for i := 1; i < len(m.nodes); i++ {
		n := &m.nodes[i]
		if n.isFree() || n.mark || n.kind == kindInput {
			continue
		}
		m.freeAndNode(int32(i))
	}
}

func (m *Mgr) freeAndNode(idx int32) {
	n := &m.nodes[idx]
	delete(m.andhash, mkandkey(n.fanin0, n.fanin1))
	for _, l := range m.listeners {
		l.OnNodeDeleted(idx)
	}
	n.level = -1
	n.fanin0, n.fanin1 = EdgeFalse, EdgeFalse
	n.next = m.freepos
	m.freepos = idx
	m.freenum++
}
