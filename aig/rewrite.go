// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

// Rewrite performs a fixed-point local-rewriting pass over every AND node:
// for each node, enumerate its 4-feasible cuts, canonicalize each 4-leaf
// cut's truth table under the NPN group, look up (or synthesize) the
// pattern recipe for that class, and replace the node with the pattern
// instance when the cut's internal node count exceeds the recipe's op
// count (merit - cost > 0); that merit does not account for fanout outside
// the cut, so a replacement does not always shrink the graph.
// Replacing a node forwards it in place (its fanin0/fanin1 become the
// winning replacement and the constant True, an identity AND) so that both
// internal fanins and external handles referencing the old index keep
// reading the correct function without needing a separate handle-patching
// registry.
func (m *Mgr) Rewrite() {
	cm := newCutManager(m)
	m.AddListener(cm)
	defer m.RemoveListener(cm)

	changed := true
	for changed {
		changed = false
		locked := map[int32]bool{}
		for idx := int32(1); idx < int32(len(m.nodes)); idx++ {
			n := &m.nodes[idx]
			if n.isFree() || n.kind != kindAnd || locked[idx] {
				continue
			}
			cuts := cm.cutsOf(idx)
			var (
				found      bool
				bestGain   int
				bestEntry  *patEntry
				bestForm   npnForm
				bestLeaves []int32
			)
			for _, c := range cuts {
				if len(c.leaves) != 4 {
					continue
				}
				tt := cm.cutFunction(idx, c.leaves)
				canon, form := canonicalizeTT(tt)
				entry := getPattern(canon)
				cost := len(entry.ops)
				merit := len(cm.cutInternalNodes(idx, c.leaves))
				gain := merit - cost
				if gain > 0 && (!found || gain > bestGain) {
					found = true
					bestGain = gain
					bestEntry = entry
					bestForm = form
					bestLeaves = c.leaves
				}
			}
			if !found {
				continue
			}

			var realLeaves [4]Handle
			for j := 0; j < 4; j++ {
				leafIdx := bestLeaves[bestForm.invPerm[j]]
				h := m.box(mkedge(leafIdx, false))
				if bestForm.polMask&(1<<uint(j)) != 0 {
					h = h.Not()
				}
				realLeaves[j] = h
			}
			newHandle := m.instantiatePattern(bestEntry, realLeaves)
			if bestForm.outInv {
				newHandle = newHandle.Not()
			}

			if newHandle.e.index() == idx {
				continue
			}
			// Drop this node's structural-hash entry before its fanins
			// change: a forwarded node is never itself the andhash
			// representative of (newRoot, True) (that pair trivially
			// collapses to newRoot in m.and and is never hashed), so the
			// stale entry must go now or it dangles once sweep reclaims
			// this slot and a later allocation reuses the index.
			delete(m.andhash, mkandkey(n.fanin0, n.fanin1))
			n.kind = kindAnd
			n.fanin0 = newHandle.e
			n.fanin1 = EdgeTrue
			m.lockCone(newHandle.e, locked)
			m.notifyFaninChanged(idx)
			changed = true
		}
	}
}

func (m *Mgr) lockCone(e Edge, locked map[int32]bool) {
	if e.IsConst() {
		return
	}
	idx := e.index()
	if locked[idx] {
		return
	}
	locked[idx] = true
	n := &m.nodes[idx]
	if n.kind == kindAnd {
		m.lockCone(n.fanin0, locked)
		m.lockCone(n.fanin1, locked)
	}
}
