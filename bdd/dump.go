// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"bytes"
	"encoding/binary"
	"io"
)

// dumpSignature is the fixed ASCII tag every dump stream begins with.
const dumpSignature = "ym_bdd1.0"

// Dump serializes roots into a self-contained byte stream: a signature, the
// number of roots, one variable-length-encoded root reference per root,
// then every node reachable from any root in reverse-topological order
// (children before parents, so each node's children can be addressed by a
// backward delta from nodes already written), terminated by the sentinel
// record (0,0,0). That sentinel can never collide with a real record
// because a real node's two children are never equal, so their encoded
// deltas are never both zero.
func (b *Mgr) Dump(roots ...Node) ([]byte, error) {
	for _, n := range roots {
		if !b.checkmgr(n) {
			b.seterror(InvalidArgument, "Dump: node belongs to a different manager")
			return nil, b.err
		}
	}
	ids := make(map[int32]int64) // node index -> emission id (1-based)
	order := make([]int32, 0)
	var walk func(e edge)
	walk = func(e edge) {
		if e.isConst() {
			return
		}
		idx := e.index()
		if _, ok := ids[idx]; ok {
			return
		}
		nd := &b.nodes[idx]
		walk(nd.e0)
		walk(nd.e1)
		ids[idx] = int64(len(order)) + 1
		order = append(order, idx)
	}
	for _, n := range roots {
		walk(n.e)
	}

	var buf bytes.Buffer
	buf.WriteString(dumpSignature)
	writeUvarint(&buf, uint64(len(roots)))
	for _, n := range roots {
		writeUvarint(&buf, rootCode(n.e, ids))
	}
	var tmp [binary.MaxVarintLen64]byte
	for _, idx := range order {
		id := ids[idx]
		nd := &b.nodes[idx]
		n := binary.PutUvarint(tmp[:], uint64(nd.level))
		buf.Write(tmp[:n])
		writeUvarint(&buf, edgeCode(nd.e0, id, ids))
		writeUvarint(&buf, edgeCode(nd.e1, id, ids))
	}
	// sentinel
	writeUvarint(&buf, 0)
	writeUvarint(&buf, 0)
	writeUvarint(&buf, 0)
	return buf.Bytes(), nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}

// rootCode and edgeCode share the same 0=False, 1=True, 2+2*delta+inv
// encoding; edgeCode's delta is relative to the emission id of the node
// currently being written (always strictly greater than any child's id),
// rootCode's delta is relative to one past the last emitted id, i.e. the
// position a (count+1)-th virtual node would occupy.
func rootCode(e edge, ids map[int32]int64) uint64 {
	return codeFor(e, int64(len(ids))+1, ids)
}

func edgeCode(e edge, currentID int64, ids map[int32]int64) uint64 {
	return codeFor(e, currentID, ids)
}

func codeFor(e edge, from int64, ids map[int32]int64) uint64 {
	if e.isFalse() {
		return 0
	}
	if e.isTrue() {
		return 1
	}
	target := ids[e.index()]
	delta := from - target
	code := uint64(delta) << 1
	if e.inv() {
		code |= 1
	}
	return code + 2
}

func decodeEdge(code uint64, from int64, id2edge map[int64]edge) edge {
	if code == 0 {
		return edgeFalse
	}
	if code == 1 {
		return edgeTrue
	}
	code -= 2
	inv := code&1 != 0
	delta := int64(code >> 1)
	target := from - delta
	return id2edge[target].withInv(inv)
}

// Restore rebuilds the BDDs encoded by Dump, re-running make_node so the
// restored roots are fully hash-consed with any other BDD already present
// in this manager (in particular, restoring the same bytes twice, or bytes
// produced by Dump on a functionally identical set of BDDs, yields
// pointer-equal roots).
func (b *Mgr) Restore(data []byte) ([]Node, error) {
	r := bytes.NewReader(data)
	sig := make([]byte, len(dumpSignature))
	if _, err := io.ReadFull(r, sig); err != nil || string(sig) != dumpSignature {
		b.seterror(InvalidArgument, "Restore: bad signature")
		return nil, b.err
	}
	count, err := binary.ReadUvarint(r)
	if err != nil {
		b.seterror(InvalidArgument, "Restore: truncated count")
		return nil, b.err
	}
	rootCodes := make([]uint64, count)
	for i := range rootCodes {
		c, err := binary.ReadUvarint(r)
		if err != nil {
			b.seterror(InvalidArgument, "Restore: truncated root list")
			return nil, b.err
		}
		rootCodes[i] = c
	}
	id2edge := make(map[int64]edge)
	var id int64 = 1
	for {
		level, err1 := binary.ReadUvarint(r)
		e0code, err2 := binary.ReadUvarint(r)
		e1code, err3 := binary.ReadUvarint(r)
		if err1 != nil || err2 != nil || err3 != nil {
			b.seterror(InvalidArgument, "Restore: truncated node record")
			return nil, b.err
		}
		if level == 0 && e0code == 0 && e1code == 0 {
			break
		}
		e0 := decodeEdge(e0code, id, id2edge)
		e1 := decodeEdge(e1code, id, id2edge)
		id2edge[id] = b.makenode(int32(level), e0, e1)
		id++
	}
	finalCount := id
	roots := make([]Node, count)
	for i, c := range rootCodes {
		roots[i] = b.box(decodeEdge(c, finalCount, id2edge))
	}
	return roots, nil
}
