// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"io"
	"os"
)

// Stats returns a human-readable summary of the manager's node table,
// free-list occupancy, garbage collection history and, when built with the
// debug build tag, operation cache hit ratios.
func (b *Mgr) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	used := len(b.nodes) - 1 - b.freenum
	res += fmt.Sprintf("Used:       %d\n", used)
	r := (float64(b.freenum) / float64(len(b.nodes))) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", b.freenum, r)
	res += "==============\n"
	res += fmt.Sprintf("# of GC:    %d\n", b.gcstat.numGC)
	res += fmt.Sprintf("Reclaimed:  %d\n", b.gcstat.nodesFreed)
	if _DEBUG {
		res += "==============\n"
		res += b.applycache.String()
		res += b.itecache.String()
		res += b.composecache.String()
	}
	return res
}

// humanSize formats n*elemsize bytes using a binary (KiB/MiB/...) suffix.
func humanSize(n int, elemsize uintptr) string {
	bytes := float64(n) * float64(elemsize)
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}
	i := 0
	for bytes >= 1024 && i < len(units)-1 {
		bytes /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", bytes, units[i])
}

// Print writes a line-oriented dump of every node reachable from n to w, one
// node per line; it is meant for debugging small examples, not for
// interchange (use Dump for that).
func (b *Mgr) Print(w io.Writer, n Node) {
	if w == nil {
		w = os.Stdout
	}
	seen := make(map[int32]bool)
	var walk func(e edge)
	walk = func(e edge) {
		if e.isConst() || seen[e.index()] {
			return
		}
		seen[e.index()] = true
		nd := &b.nodes[e.index()]
		walk(nd.e0)
		walk(nd.e1)
		fmt.Fprintf(w, "%d: level=%d low=%s high=%s\n", e.index(), nd.level, edgeString(nd.e0), edgeString(nd.e1))
	}
	walk(n.e)
	fmt.Fprintf(w, "root: %s\n", edgeString(n.e))
}

func edgeString(e edge) string {
	if e.isFalse() {
		return "F"
	}
	if e.isTrue() {
		return "T"
	}
	if e.inv() {
		return fmt.Sprintf("!%d", e.index())
	}
	return fmt.Sprintf("%d", e.index())
}
