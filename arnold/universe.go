// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package arnold

import "fmt"

// Universe owns node entries and the nodes created from them.
type Universe struct {
	entries map[string]*NodeEntry
	nodes   map[string]*Node
	order   []*Node
}

// NewUniverse creates a universe with the given entries. It panics if an
// entry is invalid, since entries are static definitions.
func NewUniverse(entries ...*NodeEntry) *Universe {
	u := &Universe{
		entries: make(map[string]*NodeEntry, len(entries)),
		nodes:   make(map[string]*Node),
	}
	for _, e := range entries {
		if err := u.AddEntry(e); err != nil {
			panic(err)
		}
	}
	return u
}

// AddEntry registers a node entry. Re-registering a name replaces the
// previous definition for nodes created afterwards.
func (u *Universe) AddEntry(e *NodeEntry) error {
	if e == nil {
		return fmt.Errorf("arnold: nil node entry")
	}
	if err := e.validate(); err != nil {
		return err
	}
	u.entries[e.Name] = e
	return nil
}

// Entry finds a node entry by name.
func (u *Universe) Entry(name string) (*NodeEntry, bool) {
	e, ok := u.entries[name]
	return e, ok
}

// CreateNode instantiates a node of the named entry. Names must be unique
// within the universe; an empty name is allowed and never collides.
func (u *Universe) CreateNode(entry, name string) (*Node, error) {
	e, ok := u.entries[entry]
	if !ok {
		return nil, fmt.Errorf("arnold: %q: %w", entry, ErrUnknownEntry)
	}
	if name != "" {
		if _, exists := u.nodes[name]; exists {
			return nil, fmt.Errorf("arnold: %q: %w", name, ErrDuplicateNode)
		}
	}
	n := newNode(e, name)
	if name != "" {
		u.nodes[name] = n
	}
	u.order = append(u.order, n)
	return n, nil
}

// Lookup finds a node by name.
func (u *Universe) Lookup(name string) (*Node, bool) {
	n, ok := u.nodes[name]
	return n, ok
}

// Nodes returns all nodes in creation order.
func (u *Universe) Nodes() []*Node {
	return u.order
}
