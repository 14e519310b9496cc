// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package katana

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute is a host attribute value. The set of implementations is
// closed.
type Attribute interface {
	katanaAttribute()
}

// IntAttribute holds an integer. Booleans are stored as 0 and 1.
type IntAttribute struct{ Value int }

// FloatAttribute holds a float.
type FloatAttribute struct{ Value float32 }

// StringAttribute holds a string.
type StringAttribute struct{ Value string }

// GroupAttribute is an ordered set of named child attributes.
type GroupAttribute struct {
	names    []string
	children []Attribute
}

func (IntAttribute) katanaAttribute()    {}
func (FloatAttribute) katanaAttribute()  {}
func (StringAttribute) katanaAttribute() {}
func (GroupAttribute) katanaAttribute()  {}

// Len returns the number of direct children.
func (g GroupAttribute) Len() int { return len(g.names) }

// Names returns the child names in insertion order.
func (g GroupAttribute) Names() []string { return g.names }

// Child finds a direct child.
func (g GroupAttribute) Child(name string) (Attribute, bool) {
	for i, n := range g.names {
		if n == name {
			return g.children[i], true
		}
	}
	return nil, false
}

// Lookup finds a descendant by dotted path, e.g. "visibility.AI_RAY_CAMERA".
func (g GroupAttribute) Lookup(path string) (Attribute, bool) {
	head, rest, nested := strings.Cut(path, ".")
	child, ok := g.Child(head)
	if !ok || !nested {
		return child, ok
	}
	sub, ok := child.(GroupAttribute)
	if !ok {
		return nil, false
	}
	return sub.Lookup(rest)
}

// String renders the group as indented text, one attribute per line.
func (g GroupAttribute) String() string {
	var sb strings.Builder
	g.write(&sb, 0)
	return sb.String()
}

func (g GroupAttribute) write(sb *strings.Builder, indent int) {
	pad := strings.Repeat("    ", indent)
	for i, name := range g.names {
		if sub, ok := g.children[i].(GroupAttribute); ok {
			fmt.Fprintf(sb, "%s%s {\n", pad, name)
			sub.write(sb, indent+1)
			fmt.Fprintf(sb, "%s}\n", pad)
			continue
		}
		fmt.Fprintf(sb, "%s%s = %s\n", pad, name, formatLeaf(g.children[i]))
	}
}

func formatLeaf(a Attribute) string {
	switch a := a.(type) {
	case IntAttribute:
		return "int " + strconv.Itoa(a.Value)
	case FloatAttribute:
		return "float " + strconv.FormatFloat(float64(a.Value), 'g', -1, 32)
	case StringAttribute:
		return "string " + strconv.Quote(a.Value)
	default:
		return "null"
	}
}
