// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

// cut is a 4-feasible cut: the leaf node indices (ascending, deduplicated)
// whose cone of influence covers the cut's root.
type cut struct {
	leaves []int32
}

func (c cut) equal(o cut) bool {
	if len(c.leaves) != len(o.leaves) {
		return false
	}
	for i := range c.leaves {
		if c.leaves[i] != o.leaves[i] {
			return false
		}
	}
	return true
}

// cutManager enumerates and caches cuts per node, subscribing to the
// manager's fanin-changed/node-deleted events so that a structural mutation
// (including one made by the rewrite pass itself) discards stale cuts. It
// takes the conservative route of dropping the whole cache on any
// notification rather than tracking per-node reverse dependencies.
type cutManager struct {
	m    *Mgr
	cuts map[int32][]cut
}

func newCutManager(m *Mgr) *cutManager {
	return &cutManager{m: m, cuts: map[int32][]cut{}}
}

func (cm *cutManager) OnFaninChanged(idx int32) { cm.cuts = map[int32][]cut{} }
func (cm *cutManager) OnNodeDeleted(idx int32)  { cm.cuts = map[int32][]cut{} }

const maxCutsPerNode = 8

// cutsOf returns every 4-feasible cut rooted at idx, merging fanin cuts
// input-side: every leaf set produced this way is, by induction, one whose
// internal nodes all have fanins that are themselves leaves or internal —
// the structural containment rule is automatic for cuts built by recursive
// merging.
func (cm *cutManager) cutsOf(idx int32) []cut {
	n := &cm.m.nodes[idx]
	if n.kind == kindInput {
		return []cut{{leaves: []int32{idx}}}
	}
	if c, ok := cm.cuts[idx]; ok {
		return c
	}
	c0 := cm.cutsOf(n.fanin0.index())
	c1 := cm.cutsOf(n.fanin1.index())
	merged := []cut{{leaves: []int32{idx}}}
	for _, a := range c0 {
		for _, b := range c1 {
			leaves := mergeLeaves(a.leaves, b.leaves)
			if len(leaves) <= 4 {
				merged = append(merged, cut{leaves: leaves})
			}
		}
	}
	merged = dedupCuts(merged)
	if len(merged) > maxCutsPerNode {
		merged = merged[:maxCutsPerNode]
	}
	cm.cuts[idx] = merged
	return merged
}

func mergeLeaves(a, b []int32) []int32 {
	res := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			res = append(res, a[i])
			i++
		case a[i] > b[j]:
			res = append(res, b[j])
			j++
		default:
			res = append(res, a[i])
			i++
			j++
		}
	}
	res = append(res, a[i:]...)
	res = append(res, b[j:]...)
	return res
}

func dedupCuts(cuts []cut) []cut {
	out := cuts[:0]
	for _, c := range cuts {
		dup := false
		for _, o := range out {
			if c.equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// cutFunction computes the 4-input truth table of root restricted to the
// given 4-leaf cut, by substituting the leaf patterns 0xAAAA, 0xCCCC,
// 0xF0F0, 0xFF00 (in leaf order) and ANDing through every internal node,
// applying each edge's inversion on the way out.
func (cm *cutManager) cutFunction(root int32, leaves []int32) uint16 {
	pats := [4]uint16{0xAAAA, 0xCCCC, 0xF0F0, 0xFF00}
	leafVal := make(map[int32]uint16, len(leaves))
	for i, l := range leaves {
		leafVal[l] = pats[i]
	}
	memo := map[int32]uint16{}
	var rec func(e Edge) uint16
	rec = func(e Edge) uint16 {
		if e.IsConst() {
			if e.IsOne() {
				return 0xFFFF
			}
			return 0
		}
		idx := e.index()
		if v, ok := leafVal[idx]; ok {
			if e.inv() {
				return ^v & 0xFFFF
			}
			return v
		}
		if v, ok := memo[idx]; ok {
			if e.inv() {
				return ^v & 0xFFFF
			}
			return v
		}
		n := &cm.m.nodes[idx]
		v := rec(n.fanin0) & rec(n.fanin1)
		memo[idx] = v
		if e.inv() {
			return ^v & 0xFFFF
		}
		return v
	}
	return rec(mkedge(root, false))
}

// cutInternalNodes collects the set of node indices (including root)
// reachable from root while staying inside the cut (i.e. stopping the
// descent at leaves). Its size is used as a conservative merit proxy in
// place of a true MFFC count, since this manager does not track structural
// fanout edges (see DESIGN.md).
func (cm *cutManager) cutInternalNodes(root int32, leaves []int32) map[int32]bool {
	leafSet := make(map[int32]bool, len(leaves))
	for _, l := range leaves {
		leafSet[l] = true
	}
	seen := map[int32]bool{}
	var walk func(idx int32)
	walk = func(idx int32) {
		if leafSet[idx] || seen[idx] {
			return
		}
		seen[idx] = true
		n := &cm.m.nodes[idx]
		if n.kind == kindAnd {
			if !n.fanin0.IsConst() {
				walk(n.fanin0.index())
			}
			if !n.fanin1.IsConst() {
				walk(n.fanin1.index())
			}
		}
	}
	walk(root)
	return seen
}
