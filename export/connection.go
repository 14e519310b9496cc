// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import (
	"github.com/PaulDoessel/usd-arnold/arnold"
	"github.com/PaulDoessel/usd-arnold/schema"
	"github.com/PaulDoessel/usd-arnold/sdf"
)

// Output attribute names.
const (
	OutputName     = "outputs:out"
	NodeOutputName = "outputs:node"
	inputsPrefix   = "inputs:"
	outputsPrefix  = "outputs:"
)

// source is the upstream end of a connection.
type source struct {
	node *arnold.Node

	// component selects one channel of the output, -1 for all of it.
	component int

	// nodeRef marks a NODE parameter referencing node, which connects to
	// the node handle rather than to its computed output.
	nodeRef bool
}

func linkSource(l arnold.Link) source {
	return source{node: l.Source, component: l.Component}
}

func nodeRefSource(n *arnold.Node) source {
	return source{node: n, component: -1, nodeRef: true}
}

// output returns the name and type of the upstream attribute the
// connection reads from.
func (s source) output() (string, sdf.ValueTypeName, error) {
	switch {
	case s.nodeRef:
		return NodeOutputName, sdf.TypeToken, nil
	case s.component >= 0:
		return outputsPrefix + s.node.OutputType().ComponentName(s.component), sdf.TypeFloat, nil
	default:
		typ, err := TargetType(OutputName, s.node.OutputType())
		return OutputName, typ, err
	}
}

// checkSource validates a connection before anything upstream is
// exported, so a bad link never causes the source to be written.
func checkSource(dest *arnold.Node, p arnold.ParamEntry, s source) error {
	if _, err := TargetType(p.Name, p.Type); err != nil {
		return newError(ErrUnsupportedType, dest.Name(), p.Name,
			"linked parameter of type %s has no attribute equivalent", p.Type)
	}
	if s.nodeRef {
		return nil
	}
	out := s.node.OutputType()
	if s.component >= 0 {
		n := out.Components()
		if n < 2 {
			return newError(ErrInvalidComponentReference, dest.Name(), p.Name,
				"component %d of %s, whose %s output has a single component", s.component, s.node.Name(), out)
		}
		if s.component >= n {
			return newError(ErrInvalidComponentReference, dest.Name(), p.Name,
				"component %d of %s is out of range for its %s output", s.component, s.node.Name(), out)
		}
		return nil
	}
	if _, err := TargetType(OutputName, out); err != nil {
		return newError(ErrUnsupportedType, dest.Name(), p.Name,
			"output of %s has type %s with no attribute equivalent", s.node.Name(), out)
	}
	return nil
}

// connect wires the destination input to the exported source. The source
// must already be registered at srcPath.
func (s *Session) connect(dest *arnold.Node, destPath sdf.Path, p arnold.ParamEntry, src source, srcPath sdf.Path) error {
	name, typ, err := src.output()
	if err != nil {
		return err
	}
	if name != OutputName {
		// Component and node outputs are declared on first use.
		if err := s.sink.CreateAttribute(srcPath, name, typ); err != nil {
			return sinkError(src.node.Name(), err)
		}
	}
	from, err := srcPath.AppendProperty(name)
	if err != nil {
		return sinkError(src.node.Name(), err)
	}
	destType, err := TargetType(p.Name, p.Type)
	if err != nil {
		return err
	}
	if err := s.sink.Connect(destPath, inputName(dest, p), destType, from); err != nil {
		return sinkError(dest.Name(), err)
	}
	s.log.Debug().
		Str("input", destPath.String()+"."+inputName(dest, p)).
		Str("source", from.String()).
		Msg("connected")
	return nil
}

// inputName returns the attribute name of a node parameter. User
// parameters live in the user: namespace.
func inputName(n *arnold.Node, p arnold.ParamEntry) string {
	if n.IsUser(p.Name) {
		return inputsPrefix + schema.UserPrefix + p.Name
	}
	return inputsPrefix + p.Name
}
