// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/PaulDoessel/usd-arnold/arnold"
	"github.com/PaulDoessel/usd-arnold/schema"
	"github.com/PaulDoessel/usd-arnold/sdf"
)

// DefaultMaterialScope is where materials are created unless configured
// otherwise.
var DefaultMaterialScope = sdf.MustPath("/Looks")

// Options configures an export session.
type Options struct {
	// MaterialScope is the parent prim of exported materials.
	MaterialScope sdf.Path

	// ExportableParams restricts the exported parameters by name.
	// An empty list exports every parameter.
	ExportableParams []string

	// Logger receives diagnostics and progress. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the default session options.
func DefaultOptions() *Options {
	return &Options{MaterialScope: DefaultMaterialScope}
}

// Binding associates a shape with a material.
type Binding struct {
	Material sdf.Path `yaml:"material"`
	Shape    sdf.Path `yaml:"shape"`
}

// Session is one export: it owns the registry, the diagnostics report and
// the material bindings made through it. Sessions share no state.
type Session struct {
	sink     Sink
	scope    sdf.Path
	filter   map[string]struct{}
	log      zerolog.Logger
	registry *Registry
	report   Report
	bindings []Binding
}

// NewSession starts a session writing into sink. opts may be nil.
func NewSession(sink Sink, opts *Options) *Session {
	if opts == nil {
		opts = DefaultOptions()
	}
	s := &Session{
		sink:     sink,
		scope:    opts.MaterialScope,
		log:      zerolog.Nop(),
		registry: NewRegistry(sink.ChildExists),
	}
	if s.scope.IsEmpty() {
		s.scope = DefaultMaterialScope
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("component", "export").Logger()
	}
	if len(opts.ExportableParams) > 0 {
		s.filter = make(map[string]struct{}, len(opts.ExportableParams))
		for _, name := range opts.ExportableParams {
			s.filter[name] = struct{}{}
		}
	}
	return s
}

// Registry returns the session's node registry.
func (s *Session) Registry() *Registry { return s.registry }

// Report returns the diagnostics accumulated so far.
func (s *Session) Report() Report { return s.report }

// Bindings returns the material bindings made so far, in call order.
func (s *Session) Bindings() []Binding { return s.bindings }

// frame is a node whose parameters are being exported.
type frame struct {
	node   *arnold.Node
	path   sdf.Path
	params []arnold.ParamEntry
	next   int
}

// ExportNode exports node and everything upstream of it under parent and
// returns the node's prim path. A node already exported in this session
// is not exported again; its path is returned.
//
// Upstream nodes are exported before the parameters that read them are
// connected, using an explicit stack so that long shading chains do not
// grow the goroutine stack. A cycle aborts the export with
// ErrCyclicDependency and leaves the nodes on the current chain in
// progress in the registry.
func (s *Session) ExportNode(node *arnold.Node, parent sdf.Path) (sdf.Path, error) {
	if node == nil {
		return sdf.Path{}, newError(ErrInvalidNode, "", "", "nil node")
	}
	if path, ok := s.registry.Lookup(node); ok {
		return path, nil
	}
	if parent.IsEmpty() {
		parent = sdf.AbsoluteRoot
	}

	root, err := s.begin(node, parent)
	if err != nil {
		return sdf.Path{}, err
	}
	stack := []*frame{root}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next == len(f.params) {
			if err := s.finish(f); err != nil {
				return sdf.Path{}, err
			}
			stack = stack[:len(stack)-1]
			continue
		}

		p := f.params[f.next]
		src, linked := sourceOf(f.node, p)
		if !linked {
			if err := s.writeValue(f, p); err != nil {
				return sdf.Path{}, err
			}
			f.next++
			continue
		}
		if err := checkSource(f.node, p, src); err != nil {
			if err := s.skip(f.node, err); err != nil {
				return sdf.Path{}, err
			}
			f.next++
			continue
		}

		switch s.registry.State(src.node) {
		case StateDone:
			srcPath, _ := s.registry.Lookup(src.node)
			if err := s.connect(f.node, f.path, p, src, srcPath); err != nil {
				return sdf.Path{}, err
			}
			f.next++
		case StateInProgress:
			if !onStack(stack, src.node) {
				// Left in progress by an earlier aborted export.
				return sdf.Path{}, s.registry.checkUnvisited(src.node)
			}
			return sdf.Path{}, cycleError(stack, src.node)
		default:
			// Export the source first; this parameter is revisited once
			// the source is done.
			upstream, err := s.begin(src.node, parent)
			if err != nil {
				return sdf.Path{}, err
			}
			stack = append(stack, upstream)
		}
	}

	path, _ := s.registry.Lookup(node)
	return path, nil
}

// begin reserves a path for node, marks it in progress and writes the
// shader prim.
func (s *Session) begin(node *arnold.Node, parent sdf.Path) (*frame, error) {
	if err := s.registry.checkUnvisited(node); err != nil {
		return nil, err
	}
	name := node.Name()
	if name == "" {
		name = node.TypeName()
	}
	path, err := s.registry.ReservePath(name, parent)
	if err != nil {
		return nil, sinkError(node.Name(), err)
	}
	if err := s.registry.Begin(node, path); err != nil {
		return nil, err
	}
	if err := s.sink.CreateNode(path, schema.ShaderType); err != nil {
		return nil, sinkError(node.Name(), err)
	}
	if err := s.sink.SetAttribute(path, schema.ShaderIDAttr, sdf.TypeToken, sdf.Token(node.TypeName())); err != nil {
		return nil, sinkError(node.Name(), err)
	}

	params := node.Params()
	if s.filter != nil {
		kept := params[:0]
		for _, p := range params {
			if _, ok := s.filter[p.Name]; ok {
				kept = append(kept, p)
			}
		}
		params = kept
	}
	return &frame{node: node, path: path, params: params}, nil
}

// finish declares the node's output and marks it done.
func (s *Session) finish(f *frame) error {
	if typ, err := TargetType(OutputName, f.node.OutputType()); err == nil {
		if err := s.sink.CreateAttribute(f.path, OutputName, typ); err != nil {
			return sinkError(f.node.Name(), err)
		}
	}
	if err := s.registry.Register(f.node, f.path); err != nil {
		return err
	}
	s.log.Debug().
		Str("node", f.node.Name()).
		Str("type", f.node.TypeName()).
		Str("path", f.path.String()).
		Msg("exported node")
	return nil
}

// writeValue authors a literal parameter value. Values equal to the
// parameter default are written too: the stage cannot tell an unset
// attribute from one holding the default.
func (s *Session) writeValue(f *frame, p arnold.ParamEntry) error {
	name := inputName(f.node, p)
	v, ok := f.node.Value(p.Name)
	if !ok {
		typ, err := TargetType(p.Name, p.Type)
		if err != nil {
			return s.skip(f.node, err)
		}
		if err := s.sink.CreateAttribute(f.path, name, typ); err != nil {
			return sinkError(f.node.Name(), err)
		}
		return nil
	}
	typ, val, err := ToTarget(p.Name, p.Type, v)
	if err != nil {
		return s.skip(f.node, err)
	}
	if err := s.sink.SetAttribute(f.path, name, typ, val); err != nil {
		return sinkError(f.node.Name(), err)
	}
	return nil
}

// skip records a recoverable error in the report. Other errors are
// returned unchanged.
func (s *Session) skip(node *arnold.Node, err error) error {
	var e *Error
	if !errors.As(err, &e) || !e.Kind.Recoverable() {
		return err
	}
	if e.Node == "" {
		e.Node = node.Name()
	}
	d := diagnosticOf(e)
	s.report.Add(d)
	s.log.Warn().
		Str("kind", d.Kind.String()).
		Str("node", d.Node).
		Str("param", d.Param).
		Msg(d.Message)
	return nil
}

// sourceOf returns the upstream end feeding parameter p, if any. Links win
// over NODE values.
func sourceOf(n *arnold.Node, p arnold.ParamEntry) (source, bool) {
	if l, ok := n.Link(p.Name); ok {
		return linkSource(l), true
	}
	if p.Type != arnold.TypeNode {
		return source{}, false
	}
	v, ok := n.Value(p.Name)
	if !ok {
		return source{}, false
	}
	if ref, ok := v.(arnold.NodeRef); ok && ref.Node != nil {
		return nodeRefSource(ref.Node), true
	}
	return source{}, false
}

func onStack(stack []*frame, n *arnold.Node) bool {
	for _, f := range stack {
		if f.node == n {
			return true
		}
	}
	return false
}

func cycleError(stack []*frame, again *arnold.Node) error {
	var names []string
	for _, f := range stack {
		if len(names) > 0 || f.node == again {
			names = append(names, f.node.Name())
		}
	}
	names = append(names, again.Name())
	return newError(ErrCyclicDependency, again.Name(), "", "%s", strings.Join(names, " -> "))
}

// ExportMaterial creates a material under the material scope, exports the
// surface shader and the optional displacement shader beneath it, and
// connects them to the material's terminals.
func (s *Session) ExportMaterial(name string, surface, displacement *arnold.Node) (sdf.Path, error) {
	if surface == nil {
		return sdf.Path{}, newError(ErrInvalidNode, name, "", "material has no surface shader")
	}
	if err := s.ensureScope(); err != nil {
		return sdf.Path{}, err
	}
	path, err := s.registry.ReservePath(name, s.scope)
	if err != nil {
		return sdf.Path{}, sinkError(name, err)
	}
	if err := s.sink.CreateNode(path, schema.MaterialType); err != nil {
		return sdf.Path{}, sinkError(name, err)
	}

	surfPath, err := s.ExportNode(surface, path)
	if err != nil {
		return sdf.Path{}, err
	}
	if err := s.terminal(path, schema.SurfaceOutput, surfPath); err != nil {
		return sdf.Path{}, err
	}
	if displacement != nil {
		dispPath, err := s.ExportNode(displacement, path)
		if err != nil {
			return sdf.Path{}, err
		}
		if err := s.terminal(path, schema.DisplacementOutput, dispPath); err != nil {
			return sdf.Path{}, err
		}
	}

	s.log.Info().
		Str("material", path.String()).
		Str("surface", surfPath.String()).
		Msg("exported material")
	return path, nil
}

func (s *Session) ensureScope() error {
	if s.scope.IsRoot() || s.sink.ChildExists(s.scope.Parent(), s.scope.Name()) {
		return nil
	}
	if err := s.sink.CreateNode(s.scope, schema.ScopeType); err != nil {
		return sinkError("", err)
	}
	return nil
}

func (s *Session) terminal(material sdf.Path, output string, shader sdf.Path) error {
	out, err := shader.AppendProperty(OutputName)
	if err != nil {
		return sinkError("", err)
	}
	if err := s.sink.Connect(material, output, sdf.TypeToken, out); err != nil {
		return sinkError("", err)
	}
	return nil
}

// BindMaterial binds material to shape. Neither path is checked, and
// binding the same pair twice records two bindings.
func (s *Session) BindMaterial(material, shape sdf.Path) error {
	if err := s.sink.AddRelationshipTarget(shape, schema.MaterialBindingRel, material); err != nil {
		return sinkError("", err)
	}
	s.bindings = append(s.bindings, Binding{Material: material, Shape: shape})
	s.log.Debug().
		Str("material", material.String()).
		Str("shape", shape.String()).
		Msg("bound material")
	return nil
}
