// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package arnold

import "fmt"

// EntryKind classifies node entries.
type EntryKind uint8

const (
	KindShader EntryKind = iota
	KindShape
	KindLight
	KindCamera
)

// String returns the lower-case kind name.
func (k EntryKind) String() string {
	switch k {
	case KindShader:
		return "shader"
	case KindShape:
		return "shape"
	case KindLight:
		return "light"
	case KindCamera:
		return "camera"
	default:
		return "unknown"
	}
}

// ParamEntry describes one parameter of a node entry.
type ParamEntry struct {
	Name string
	Type Type

	// Default is the documented default value. It may be nil for types
	// that have no value representation.
	Default Value

	// EnumValues lists the accepted tokens of an ENUM parameter.
	EnumValues []string
}

// NodeEntry is a node type definition.
type NodeEntry struct {
	Name       string
	Kind       EntryKind
	OutputType Type
	Params     []ParamEntry
}

// Param finds a parameter by name.
func (e *NodeEntry) Param(name string) (ParamEntry, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamEntry{}, false
}

// validate checks the entry for duplicate parameters and defaults of the
// wrong type.
func (e *NodeEntry) validate() error {
	if e.Name == "" {
		return fmt.Errorf("arnold: node entry has no name")
	}
	seen := make(map[string]struct{}, len(e.Params))
	for _, p := range e.Params {
		if p.Name == "" {
			return fmt.Errorf("arnold: entry %q has an unnamed parameter", e.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("arnold: entry %q declares parameter %q twice", e.Name, p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.Default != nil && !accepts(p, p.Default) {
			return fmt.Errorf("arnold: entry %q parameter %q: default of type %s does not match %s",
				e.Name, p.Name, TypeOf(p.Default), p.Type)
		}
	}
	return nil
}

// accepts reports whether v can be stored in parameter p.
func accepts(p ParamEntry, v Value) bool {
	if TypeOf(v) != p.Type {
		return false
	}
	if p.Type != TypeEnum || len(p.EnumValues) == 0 {
		return true
	}
	token := string(v.(Enum))
	for _, allowed := range p.EnumValues {
		if allowed == token {
			return true
		}
	}
	return false
}
