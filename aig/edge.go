// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

// Edge packs a node index and a complement bit into a single int32, the
// same representation this module's bdd package uses for its edges: index
// 0 is the shared terminal (edge(0,0) is constant False, edge(0,1) is
// constant True), any other index names an input or AND node allocated in
// the manager's node arena.
type Edge int32

const (
	EdgeFalse Edge = 0
	EdgeTrue  Edge = 1
)

func mkedge(index int32, inv bool) Edge {
	if inv {
		return Edge(index<<1 | 1)
	}
	return Edge(index << 1)
}

func (e Edge) index() int32 { return int32(e) >> 1 }
func (e Edge) inv() bool    { return int32(e)&1 != 0 }
func (e Edge) Not() Edge    { return e ^ 1 }

func (e Edge) IsConst() bool { return e.index() == 0 }
func (e Edge) IsZero() bool  { return e == EdgeFalse }
func (e Edge) IsOne() bool   { return e == EdgeTrue }
