// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"sort"

	"github.com/PaulDoessel/usd-arnold/arnold"
	"github.com/PaulDoessel/usd-arnold/sdf"
)

// State is the visitation state of a node within one session.
type State uint8

const (
	StateUnvisited State = iota
	StateInProgress
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnvisited:
		return "unvisited"
	case StateInProgress:
		return "in-progress"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

type registryEntry struct {
	state State
	path  sdf.Path
}

// Registry maps renderer nodes to the prim paths they were exported to,
// and hands out unique prim paths. It belongs to a single session.
type Registry struct {
	entries  map[*arnold.Node]*registryEntry
	reserved map[sdf.Path]struct{}

	// suffix remembers the last numeric suffix handed out per base path.
	suffix map[sdf.Path]int

	// exists reports prims that are already on the target stage.
	exists func(parent sdf.Path, name string) bool
}

// NewRegistry creates an empty registry. exists may be nil.
func NewRegistry(exists func(parent sdf.Path, name string) bool) *Registry {
	return &Registry{
		entries:  make(map[*arnold.Node]*registryEntry),
		reserved: make(map[sdf.Path]struct{}),
		suffix:   make(map[sdf.Path]int),
		exists:   exists,
	}
}

// Lookup returns the path of a node whose export has completed.
func (r *Registry) Lookup(node *arnold.Node) (sdf.Path, bool) {
	e, ok := r.entries[node]
	if !ok || e.state != StateDone {
		return sdf.Path{}, false
	}
	return e.path, true
}

// State returns the visitation state of node.
func (r *Registry) State(node *arnold.Node) State {
	if e, ok := r.entries[node]; ok {
		return e.state
	}
	return StateUnvisited
}

// Path returns the path recorded for node in any state, including nodes
// left in progress by an aborted export.
func (r *Registry) Path(node *arnold.Node) (sdf.Path, bool) {
	e, ok := r.entries[node]
	if !ok {
		return sdf.Path{}, false
	}
	return e.path, true
}

// Begin marks node as in progress at path.
func (r *Registry) Begin(node *arnold.Node, path sdf.Path) error {
	if err := r.checkUnvisited(node); err != nil {
		return err
	}
	r.entries[node] = &registryEntry{state: StateInProgress, path: path}
	return nil
}

// checkUnvisited returns the error Begin would return for node without
// changing the registry.
func (r *Registry) checkUnvisited(node *arnold.Node) error {
	e, ok := r.entries[node]
	if !ok {
		return nil
	}
	switch e.state {
	case StateInProgress:
		return newError(ErrCyclicDependency, node.Name(), "", "node is already being exported at %s", e.path)
	case StateDone:
		return newError(ErrDuplicateRegistration, node.Name(), "", "node was already exported to %s", e.path)
	}
	return nil
}

// Register records that node has been exported to path.
func (r *Registry) Register(node *arnold.Node, path sdf.Path) error {
	if e, ok := r.entries[node]; ok {
		if e.state == StateDone {
			return newError(ErrDuplicateRegistration, node.Name(), "", "node was already exported to %s", e.path)
		}
		e.state = StateDone
		e.path = path
		return nil
	}
	r.entries[node] = &registryEntry{state: StateDone, path: path}
	return nil
}

// ReservePath returns an unused child path of parent, preferring the
// sanitized candidate name and appending _1, _2, ... on collision. No two
// calls on the same registry return the same path.
func (r *Registry) ReservePath(candidate string, parent sdf.Path) (sdf.Path, error) {
	name := CleanName(candidate)
	base, err := parent.AppendChild(name)
	if err != nil {
		return sdf.Path{}, err
	}
	if r.available(parent, name, base) {
		r.reserved[base] = struct{}{}
		return base, nil
	}

	// Add numeric suffix to make unique
	for n := r.suffix[base] + 1; ; n++ {
		suffixed := fmt.Sprintf("%s_%d", name, n)
		path, err := parent.AppendChild(suffixed)
		if err != nil {
			return sdf.Path{}, err
		}
		if r.available(parent, suffixed, path) {
			r.suffix[base] = n
			r.reserved[path] = struct{}{}
			return path, nil
		}
	}
}

// IsReserved reports whether path was handed out by ReservePath.
func (r *Registry) IsReserved(path sdf.Path) bool {
	_, ok := r.reserved[path]
	return ok
}

func (r *Registry) available(parent sdf.Path, name string, path sdf.Path) bool {
	if _, used := r.reserved[path]; used {
		return false
	}
	return r.exists == nil || !r.exists(parent, name)
}

// Len returns the number of nodes known to the registry in any state.
func (r *Registry) Len() int {
	return len(r.entries)
}

// InProgress returns the nodes still marked in progress, ordered by path.
// After a successful export it is empty.
func (r *Registry) InProgress() []*arnold.Node {
	var nodes []*arnold.Node
	for n, e := range r.entries {
		if e.state == StateInProgress {
			nodes = append(nodes, n)
		}
	}
	sort.Slice(nodes, func(i, j int) bool {
		return r.entries[nodes[i]].path.String() < r.entries[nodes[j]].path.String()
	})
	return nodes
}
