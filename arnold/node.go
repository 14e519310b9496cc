// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package arnold

import (
	"errors"
	"fmt"
)

// Errors returned by node setup methods.
var (
	ErrUnknownParam  = errors.New("unknown parameter")
	ErrTypeMismatch  = errors.New("value type does not match parameter")
	ErrParamExists   = errors.New("parameter already declared")
	ErrNilSource     = errors.New("link source is nil")
	ErrBadComponent  = errors.New("negative output component")
	ErrUnknownEntry  = errors.New("unknown node entry")
	ErrDuplicateNode = errors.New("node name already in use")
)

// Link is an upstream connection feeding a parameter.
type Link struct {
	Source *Node

	// Component selects a single channel of the source output.
	// -1 links the whole output.
	Component int
}

// HasComponent reports whether the link selects a single channel.
func (l Link) HasComponent() bool {
	return l.Component >= 0
}

// Node is a renderer node instance.
type Node struct {
	name   string
	entry  *NodeEntry
	values map[string]Value
	links  map[string]Link
	user   []ParamEntry
}

func newNode(entry *NodeEntry, name string) *Node {
	return &Node{
		name:   name,
		entry:  entry,
		values: make(map[string]Value),
		links:  make(map[string]Link),
	}
}

// Name returns the node's name as known to the renderer.
func (n *Node) Name() string { return n.name }

// Entry returns the node's type definition.
func (n *Node) Entry() *NodeEntry { return n.entry }

// TypeName returns the name of the node's entry.
func (n *Node) TypeName() string { return n.entry.Name }

// OutputType returns the type of the node's main output.
func (n *Node) OutputType() Type { return n.entry.OutputType }

// Params returns the entry parameters followed by the user parameters,
// each in declaration order.
func (n *Node) Params() []ParamEntry {
	params := make([]ParamEntry, 0, len(n.entry.Params)+len(n.user))
	params = append(params, n.entry.Params...)
	params = append(params, n.user...)
	return params
}

// UserParams returns the user-declared parameters.
func (n *Node) UserParams() []ParamEntry {
	return n.user
}

// IsUser reports whether name is a user-declared parameter.
func (n *Node) IsUser(name string) bool {
	for _, p := range n.user {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Param finds an entry or user parameter.
func (n *Node) Param(name string) (ParamEntry, bool) {
	if p, ok := n.entry.Param(name); ok {
		return p, true
	}
	for _, p := range n.user {
		if p.Name == name {
			return p, true
		}
	}
	return ParamEntry{}, false
}

// Value returns the explicit value of the parameter, falling back to its
// default. The bool is false for unknown parameters and for parameters
// that have neither.
func (n *Node) Value(param string) (Value, bool) {
	if v, ok := n.values[param]; ok {
		return v, true
	}
	p, ok := n.Param(param)
	if !ok || p.Default == nil {
		return nil, false
	}
	return p.Default, true
}

// IsSet reports whether the parameter carries an explicit value.
func (n *Node) IsSet(param string) bool {
	_, ok := n.values[param]
	return ok
}

// Link returns the link feeding the parameter, if any.
func (n *Node) Link(param string) (Link, bool) {
	l, ok := n.links[param]
	return l, ok
}

// IsLinked reports whether the parameter is fed by a link.
func (n *Node) IsLinked(param string) bool {
	_, ok := n.links[param]
	return ok
}

// Set assigns an explicit value.
func (n *Node) Set(param string, v Value) error {
	p, ok := n.Param(param)
	if !ok {
		return fmt.Errorf("arnold: %s.%s: %w", n.name, param, ErrUnknownParam)
	}
	if v == nil || !accepts(p, v) {
		return fmt.Errorf("arnold: %s.%s: %w (%s, want %s)", n.name, param, ErrTypeMismatch, TypeOf(v), p.Type)
	}
	n.values[param] = v
	return nil
}

// LinkOutput links the whole output of src into param.
func (n *Node) LinkOutput(src *Node, param string) error {
	return n.link(src, -1, param)
}

// LinkComponent links a single output channel of src into param. The
// channel index is not checked against the source output type here; that
// check belongs to whoever consumes the graph.
func (n *Node) LinkComponent(src *Node, component int, param string) error {
	if component < 0 {
		return fmt.Errorf("arnold: %s.%s: %w", n.name, param, ErrBadComponent)
	}
	return n.link(src, component, param)
}

func (n *Node) link(src *Node, component int, param string) error {
	if src == nil {
		return fmt.Errorf("arnold: %s.%s: %w", n.name, param, ErrNilSource)
	}
	if _, ok := n.Param(param); !ok {
		return fmt.Errorf("arnold: %s.%s: %w", n.name, param, ErrUnknownParam)
	}
	n.links[param] = Link{Source: src, Component: component}
	return nil
}

// Unlink removes the link feeding param, if any.
func (n *Node) Unlink(param string) {
	delete(n.links, param)
}

// DeclareUser adds a user parameter with the given type. Its default is
// the zero value of the type.
func (n *Node) DeclareUser(name string, t Type) error {
	if name == "" {
		return fmt.Errorf("arnold: %s: user parameter has no name", n.name)
	}
	if _, ok := n.Param(name); ok {
		return fmt.Errorf("arnold: %s.%s: %w", n.name, name, ErrParamExists)
	}
	n.user = append(n.user, ParamEntry{Name: name, Type: t, Default: Zero(t)})
	return nil
}
