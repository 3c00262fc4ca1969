// CLAUDE:SUMMARY Generation-checked handle arena mapping engine NodeIDs to live document nodes.
package htmlparse

import (
	"errors"
	"fmt"

	"github.com/andrewguertin/servo/engine"
	"github.com/andrewguertin/servo/htmldoc"
)

// ErrDanglingHandle is returned when a handle no longer denotes a live node.
var ErrDanglingHandle = errors.New("htmlparse: dangling node handle")

// handleTable is the identity boundary between the construction engine and
// the tree. The engine holds NodeIDs, never nodes; every dereference goes
// through resolve, which fails cleanly on a stale handle instead of
// touching freed memory.
//
// Handles pack a slot index and a generation counter. Releasing a handle
// bumps the slot's generation, so a recycled slot invalidates all handles
// issued for its previous occupant. Generations start at 1, keeping the
// zero NodeID permanently invalid.
type handleTable struct {
	entries []handleEntry
	free    []uint32
	ids     map[*htmldoc.Node]engine.NodeID
}

type handleEntry struct {
	node *htmldoc.Node
	gen  uint32
	live bool
}

func newHandleTable() *handleTable {
	return &handleTable{ids: make(map[*htmldoc.Node]engine.NodeID)}
}

// register issues a fresh handle for n. Registering the same node twice
// returns the existing handle.
func (t *handleTable) register(n *htmldoc.Node) engine.NodeID {
	if id, ok := t.ids[n]; ok {
		return id
	}
	var idx uint32
	if len(t.free) > 0 {
		idx = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.entries[idx].node = n
		t.entries[idx].live = true
	} else {
		t.entries = append(t.entries, handleEntry{node: n, gen: 1, live: true})
		idx = uint32(len(t.entries) - 1)
	}
	id := engine.NodeID(uint64(idx)<<32 | uint64(t.entries[idx].gen))
	t.ids[n] = id
	return id
}

// resolve returns the node a handle denotes.
func (t *handleTable) resolve(id engine.NodeID) (*htmldoc.Node, error) {
	idx := uint32(id >> 32)
	gen := uint32(id)
	if int(idx) >= len(t.entries) {
		return nil, fmt.Errorf("%w: %#x", ErrDanglingHandle, uint64(id))
	}
	e := &t.entries[idx]
	if !e.live || e.gen != gen {
		return nil, fmt.Errorf("%w: %#x", ErrDanglingHandle, uint64(id))
	}
	return e.node, nil
}

// lookup returns the handle previously issued for n.
func (t *handleTable) lookup(n *htmldoc.Node) (engine.NodeID, bool) {
	id, ok := t.ids[n]
	return id, ok
}

// release invalidates a handle. The node itself is untouched: destruction
// belongs to the tree, not the table.
func (t *handleTable) release(id engine.NodeID) {
	idx := uint32(id >> 32)
	gen := uint32(id)
	if int(idx) >= len(t.entries) {
		return
	}
	e := &t.entries[idx]
	if !e.live || e.gen != gen {
		return
	}
	delete(t.ids, e.node)
	e.node = nil
	e.live = false
	e.gen++
	t.free = append(t.free, idx)
}
