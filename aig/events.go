// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aig

// Listener is notified of structural changes to the manager's DAG. The
// rewrite pass (rewrite.go) uses this to invalidate per-node cut caches
// without recomputing every cut from scratch after each local change.
type Listener interface {
	// OnFaninChanged is called after node idx's fanins were replaced (e.g.
	// by the rewrite pass materializing a smaller equivalent subgraph).
	OnFaninChanged(idx int32)
	// OnNodeDeleted is called just before node idx is returned to the free
	// list by Sweep.
	OnNodeDeleted(idx int32)
}

// AddListener registers l to receive future structural-change
// notifications.
func (m *Mgr) AddListener(l Listener) {
	m.listeners = append(m.listeners, l)
}

// RemoveListener unregisters l; it is a no-op if l was never registered.
func (m *Mgr) RemoveListener(l Listener) {
	for i, x := range m.listeners {
		if x == l {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

func (m *Mgr) notifyFaninChanged(idx int32) {
	for _, l := range m.listeners {
		l.OnFaninChanged(idx)
	}
}
