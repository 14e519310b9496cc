// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package sdf provides the scene description foundations shared by the
// stage and the exporter: paths, value type names and typed values.
package sdf

import (
	"fmt"
	"strings"
)

// Path addresses a prim (/Looks/chrome) or a property of a prim
// (/Looks/chrome.outputs:surface). The zero value is the empty path.
type Path struct {
	s string
}

// AbsoluteRoot is the pseudo-root "/".
var AbsoluteRoot = Path{s: "/"}

// NewPath parses and validates an absolute path.
func NewPath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	if s == "/" {
		return AbsoluteRoot, nil
	}
	if !strings.HasPrefix(s, "/") {
		return Path{}, fmt.Errorf("sdf: path %q is not absolute", s)
	}
	prim, prop, hasProp := strings.Cut(s, ".")
	for _, elem := range strings.Split(prim[1:], "/") {
		if !IsValidIdentifier(elem) {
			return Path{}, fmt.Errorf("sdf: path %q has invalid element %q", s, elem)
		}
	}
	if hasProp && !IsValidNamespacedName(prop) {
		return Path{}, fmt.Errorf("sdf: path %q has invalid property name %q", s, prop)
	}
	return Path{s: s}, nil
}

// MustPath is NewPath that panics on error. It is meant for constants.
func MustPath(s string) Path {
	p, err := NewPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the textual form of the path.
func (p Path) String() string { return p.s }

// IsEmpty reports whether p is the empty path.
func (p Path) IsEmpty() bool { return p.s == "" }

// IsRoot reports whether p is the pseudo-root.
func (p Path) IsRoot() bool { return p.s == "/" }

// IsPropertyPath reports whether p addresses a property.
func (p Path) IsPropertyPath() bool { return strings.Contains(p.s, ".") }

// AppendChild returns the path of a child prim. name must be a valid
// identifier.
func (p Path) AppendChild(name string) (Path, error) {
	if p.IsEmpty() || p.IsPropertyPath() {
		return Path{}, fmt.Errorf("sdf: cannot append child %q to %q", name, p.s)
	}
	if !IsValidIdentifier(name) {
		return Path{}, fmt.Errorf("sdf: invalid prim name %q", name)
	}
	if p.IsRoot() {
		return Path{s: "/" + name}, nil
	}
	return Path{s: p.s + "/" + name}, nil
}

// AppendProperty returns the path of a property of this prim.
func (p Path) AppendProperty(name string) (Path, error) {
	if p.IsEmpty() || p.IsRoot() || p.IsPropertyPath() {
		return Path{}, fmt.Errorf("sdf: cannot append property %q to %q", name, p.s)
	}
	if !IsValidNamespacedName(name) {
		return Path{}, fmt.Errorf("sdf: invalid property name %q", name)
	}
	return Path{s: p.s + "." + name}, nil
}

// PrimPath strips the property part, if any.
func (p Path) PrimPath() Path {
	if i := strings.IndexByte(p.s, '.'); i >= 0 {
		return Path{s: p.s[:i]}
	}
	return p
}

// Name returns the last element: the prim name, or the property name for
// property paths. The root and the empty path have no name.
func (p Path) Name() string {
	if i := strings.IndexByte(p.s, '.'); i >= 0 {
		return p.s[i+1:]
	}
	if p.IsEmpty() || p.IsRoot() {
		return ""
	}
	return p.s[strings.LastIndexByte(p.s, '/')+1:]
}

// Parent returns the owning prim of a property, or the parent prim of a
// prim. The parent of a root prim is AbsoluteRoot; the root and the empty
// path have an empty parent.
func (p Path) Parent() Path {
	if p.IsPropertyPath() {
		return p.PrimPath()
	}
	if p.IsEmpty() || p.IsRoot() {
		return Path{}
	}
	i := strings.LastIndexByte(p.s, '/')
	if i == 0 {
		return AbsoluteRoot
	}
	return Path{s: p.s[:i]}
}

// HasPrefix reports whether p equals prefix or lies beneath it.
func (p Path) HasPrefix(prefix Path) bool {
	if prefix.IsEmpty() || p.IsEmpty() {
		return false
	}
	if prefix.IsRoot() || p.s == prefix.s {
		return true
	}
	if !strings.HasPrefix(p.s, prefix.s) {
		return false
	}
	next := p.s[len(prefix.s)]
	return next == '/' || next == '.'
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := NewPath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
