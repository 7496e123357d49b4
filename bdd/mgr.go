// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "runtime"

// Mgr is a BDD manager: it owns a node table (the "unique table") and the
// set of variables shared by every BDD built through it. Callers never
// build BDD by hand; they call methods on a Mgr and get back a Node, an
// opaque handle to a (possibly shared) vertex in the manager's DAG.
//
// A Mgr is not safe for concurrent use without external synchronization.
type Mgr struct {
	varnum int // number of variables this manager was created with

	varorder   []int32 // variable index -> current level
	varhandles []edge  // variable index -> cached positive-literal edge

	nodes   []node
	unique  map[nodekey]int32
	freepos int32 // head of the free list, 0 if empty (0 is never a free node)
	freenum int

	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int
	gclimit         int // current GC threshold; doubles after each collection
	gcenabled       bool

	gcstat gcStats

	refstack []edge // scratch mark stack used by the GC
	pinned   []edge // intermediate results of an in-flight recursive op, pinned against GC

	applycache   *applycache
	itecache     *itecache
	composecache *composecache

	liveHandles int // external Node handles outstanding; gates SetVariableOrder

	err *Error
}

// Node is an external handle on a vertex of some Mgr's DAG. It carries its
// own reference count (tracked via a finalizer) so that Go's garbage
// collector drives the manager's internal node reclamation: once every
// Node handle referencing a vertex, directly or through its descendants'
// retained parents, is gone, the manager is free to recycle the slot.
type Node struct {
	mgr *Mgr
	e   edge
	pin *nodePin // finalizer target kept alive by every copy of this Node; nil for constants
}

// nodePin is the heap cell box's finalizer is attached to. Go copies Node
// by value on every return and assignment, so a finalizer set directly on a
// Node would be watching a value that stops being reachable the instant the
// function that set it returns. Routing the finalizer through a pointer
// field instead means it only fires once the last copy of the Node holding
// that pointer is gone, matching retnode in this package's ancestor.
type nodePin struct{}

// New creates a new BDD manager over the given number of variables. Extra
// behavior (initial table size, GC thresholds, cache sizing, ...) is
// selected with the functional options declared in config.go.
func New(varnum int, options ...func(*configs)) *Mgr {
	c := makeconfigs(varnum)
	for _, opt := range options {
		opt(c)
	}
	b := &Mgr{
		varnum:          varnum,
		maxnodesize:     c.maxnodesize,
		maxnodeincrease: c.maxnodeincrease,
		minfreenodes:    c.minfreenodes,
		gcenabled:       c.gcenabled,
	}
	size := primeGte(c.nodesize)
	b.nodes = make([]node, size)
	b.unique = make(map[nodekey]int32, size)
	b.initfreelist(1)
	if c.gclimit > 0 {
		b.gclimit = c.gclimit
	} else {
		b.gclimit = size
	}
	b.cacheinit(c)
	b.varorder = make([]int32, varnum)
	b.varhandles = make([]edge, varnum)
	for i := 0; i < varnum; i++ {
		b.varorder[i] = int32(i)
		b.varhandles[i] = b.uniqueMake(int32(i), edgeFalse, edgeTrue)
		b.nodes[b.varhandles[i].index()].refs = _MAXREFCOUNT
	}
	return b
}

func (b *Mgr) initfreelist(start int32) {
	for i := start; i < int32(len(b.nodes)); i++ {
		b.nodes[i].level = -1
		b.nodes[i].next = i + 1
	}
	b.nodes[len(b.nodes)-1].next = 0
	b.freepos = start
	b.freenum = len(b.nodes) - int(start)
}

// Varnum returns the number of variables declared for this manager.
func (b *Mgr) Varnum() int {
	return b.varnum
}

// NodeCount returns the number of allocated decision nodes currently in the
// manager (every slot not on the free list, including unreferenced nodes
// the next GC pass would reclaim), not counting the terminal.
func (b *Mgr) NodeCount() int {
	return len(b.nodes) - 1 - b.freenum
}

func (b *Mgr) box(e edge) Node {
	h := Node{mgr: b, e: e}
	if !e.isConst() {
		b.addref(e)
		b.liveHandles++
		pin := new(nodePin)
		runtime.SetFinalizer(pin, func(*nodePin) {
			b.delref(e)
			b.liveHandles--
		})
		h.pin = pin
	}
	return h
}

// Zero returns the constant False function.
func (b *Mgr) Zero() Node {
	return Node{mgr: b, e: edgeFalse}
}

// One returns the constant True function.
func (b *Mgr) One() Node {
	return Node{mgr: b, e: edgeTrue}
}

// Ithvar returns the BDD for the positive literal of variable i.
func (b *Mgr) Ithvar(i int) Node {
	if i < 0 || i >= b.varnum {
		b.seterror(OutOfRange, "variable index %d out of range [0,%d)", i, b.varnum)
		return b.Zero()
	}
	return b.box(b.varhandles[i])
}

// NIthvar returns the BDD for the negative literal of variable i.
func (b *Mgr) NIthvar(i int) Node {
	if i < 0 || i >= b.varnum {
		b.seterror(OutOfRange, "variable index %d out of range [0,%d)", i, b.varnum)
		return b.Zero()
	}
	return b.box(b.varhandles[i].not())
}

// IsZero reports whether n is the constant False.
func (n Node) IsZero() bool { return n.e == edgeFalse }

// IsOne reports whether n is the constant True.
func (n Node) IsOne() bool { return n.e == edgeTrue }

// IsConst reports whether n is one of the two constants.
func (n Node) IsConst() bool { return n.e.isConst() }

// Equal reports whether two handles denote the same vertex in the same
// manager. Because the unique table guarantees structural sharing, equal
// functions always have equal handles: pointer/edge comparison is enough,
// no recursive comparison is needed.
func (n Node) Equal(m Node) bool {
	return n.mgr == m.mgr && n.e == m.e
}

// Mgr returns the manager that produced n.
func (n Node) Mgr() *Mgr { return n.mgr }
