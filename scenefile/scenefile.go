// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package scenefile reads YAML scene documents: renderer node graphs,
// the materials to export from them, shapes and material bindings.
package scenefile

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Document is a decoded scene document.
type Document struct {
	Entries   []Entry    `yaml:"entries"`
	Nodes     []Node     `yaml:"nodes"`
	Materials []Material `yaml:"materials"`
	Bindings  []Binding  `yaml:"bindings"`
	Shapes    []Shape    `yaml:"shapes"`
}

// Entry declares a node type in addition to the built-in ones.
type Entry struct {
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"`
	Output string  `yaml:"output"`
	Params []Param `yaml:"params"`
}

// Param declares one parameter of an entry.
type Param struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Default any      `yaml:"default"`
	Enum    []string `yaml:"enum"`
}

// Node is a renderer node instance.
type Node struct {
	Name   string          `yaml:"name"`
	Type   string          `yaml:"type"`
	Params map[string]any  `yaml:"params"`
	Links  map[string]Link `yaml:"links"`
	User   []UserParam     `yaml:"user"`
}

// UserParam declares and optionally sets a user parameter.
type UserParam struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value any    `yaml:"value"`
}

// Link feeds a parameter from another node. It is written either as the
// source node name or as a mapping with node and component.
type Link struct {
	Node      string    `yaml:"node"`
	Component Component `yaml:"component"`
}

// UnmarshalYAML accepts the scalar shorthand.
func (l *Link) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*l = Link{Node: n.Value}
		return nil
	}
	type plain Link
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*l = Link(p)
	return nil
}

// Component selects an output channel by index or by channel letter.
// The zero value selects the whole output.
type Component struct {
	index int
	set   bool
}

var channels = map[string]int{
	"r": 0, "g": 1, "b": 2, "a": 3,
	"x": 0, "y": 1, "z": 2,
}

// UnmarshalYAML accepts a non-negative index or one of r, g, b, a, x, y, z.
func (c *Component) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: component must be an index or a channel letter", n.Line)
	}
	if i, err := strconv.Atoi(n.Value); err == nil {
		if i < 0 {
			return fmt.Errorf("line %d: negative component %d", n.Line, i)
		}
		*c = Component{index: i, set: true}
		return nil
	}
	i, ok := channels[n.Value]
	if !ok {
		return fmt.Errorf("line %d: unknown channel %q", n.Line, n.Value)
	}
	*c = Component{index: i, set: true}
	return nil
}

// Index returns the selected channel, or -1 for the whole output.
func (c Component) Index() int {
	if !c.set {
		return -1
	}
	return c.index
}

// Material requests the export of one material.
type Material struct {
	Name         string `yaml:"name"`
	Surface      string `yaml:"surface"`
	Displacement string `yaml:"displacement"`
}

// Binding binds a material, by name or prim path, to a shape.
type Binding struct {
	Material string `yaml:"material"`
	Shape    string `yaml:"shape"`
}

// Shape is a prim authored on the stage before export.
type Shape struct {
	Path       string         `yaml:"path"`
	Type       string         `yaml:"type"`
	Attributes map[string]any `yaml:"attributes"`
}

// Decode reads a document. Unknown keys are errors.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	return &doc, nil
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
