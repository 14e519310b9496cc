// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package katana

import (
	"fmt"
	"strings"
)

// GroupBuilder assembles a GroupAttribute. Setting a dotted name creates
// the intermediate groups.
type GroupBuilder struct {
	root *pending
}

// pending is a group under construction.
type pending struct {
	names []string
	leaf  map[string]Attribute
	group map[string]*pending
}

func newPending() *pending {
	return &pending{
		leaf:  make(map[string]Attribute),
		group: make(map[string]*pending),
	}
}

// NewGroupBuilder returns an empty builder.
func NewGroupBuilder() *GroupBuilder {
	return &GroupBuilder{root: newPending()}
}

// Set stores a at the dotted name. Setting a name again replaces the
// previous value, keeping its position; a leaf on the way to a nested
// name is replaced by a group.
func (b *GroupBuilder) Set(name string, a Attribute) error {
	if a == nil {
		return fmt.Errorf("katana: %s: nil attribute", name)
	}
	parts := strings.Split(name, ".")
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("katana: invalid attribute name %q", name)
		}
	}
	g := b.root
	for _, p := range parts[:len(parts)-1] {
		g = g.subgroup(p)
	}
	g.set(parts[len(parts)-1], a)
	return nil
}

func (g *pending) subgroup(name string) *pending {
	if sub, ok := g.group[name]; ok {
		return sub
	}
	if _, ok := g.leaf[name]; ok {
		delete(g.leaf, name)
	} else {
		g.names = append(g.names, name)
	}
	sub := newPending()
	g.group[name] = sub
	return sub
}

func (g *pending) set(name string, a Attribute) {
	_, isLeaf := g.leaf[name]
	_, isGroup := g.group[name]
	if !isLeaf && !isGroup {
		g.names = append(g.names, name)
	}
	delete(g.group, name)
	g.leaf[name] = a
}

// Len returns the number of top-level entries set so far.
func (b *GroupBuilder) Len() int { return len(b.root.names) }

// Build returns the assembled group. The builder remains usable.
func (b *GroupBuilder) Build() GroupAttribute {
	return b.root.build()
}

func (g *pending) build() GroupAttribute {
	out := GroupAttribute{
		names:    make([]string, 0, len(g.names)),
		children: make([]Attribute, 0, len(g.names)),
	}
	for _, name := range g.names {
		out.names = append(out.names, name)
		if sub, ok := g.group[name]; ok {
			out.children = append(out.children, sub.build())
			continue
		}
		out.children = append(out.children, g.leaf[name])
	}
	return out
}
