// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

import (
	"fmt"
	"io"
	"os"
)

// Stats returns a human-readable summary of the node table and free-list
// occupancy, in the same spirit as bdd.Mgr.Stats.
func (m *Mgr) Stats() string {
	res := fmt.Sprintf("Inputs:     %d\n", len(m.inputs))
	res += fmt.Sprintf("Allocated:  %d\n", len(m.nodes))
	used := len(m.nodes) - 1 - m.freenum
	res += fmt.Sprintf("Used:       %d\n", used)
	r := (float64(m.freenum) / float64(len(m.nodes))) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", m.freenum, r)
	res += "==============\n"
	res += fmt.Sprintf("And nodes:  %d\n", len(m.andhash))
	return res
}

// Print writes a line-oriented dump of every node reachable from h to w,
// one node per line.
func (m *Mgr) Print(w io.Writer, h Handle) {
	if w == nil {
		w = os.Stdout
	}
	seen := make(map[int32]bool)
	var walk func(e Edge)
	walk = func(e Edge) {
		if e.IsConst() || seen[e.index()] {
			return
		}
		seen[e.index()] = true
		n := &m.nodes[e.index()]
		if n.kind == kindInput {
			fmt.Fprintf(w, "%d: input id=%d\n", e.index(), n.inputID)
			return
		}
		walk(n.fanin0)
		walk(n.fanin1)
		fmt.Fprintf(w, "%d: and fanin0=%s fanin1=%s\n", e.index(), edgeString(n.fanin0), edgeString(n.fanin1))
	}
	walk(h.e)
	fmt.Fprintf(w, "root: %s\n", edgeString(h.e))
}

func edgeString(e Edge) string {
	if e.IsZero() {
		return "F"
	}
	if e.IsOne() {
		return "T"
	}
	if e.inv() {
		return fmt.Sprintf("!%d", e.index())
	}
	return fmt.Sprintf("%d", e.index())
}
