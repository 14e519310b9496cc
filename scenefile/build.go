// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package scenefile

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/PaulDoessel/usd-arnold/arnold"
	"github.com/PaulDoessel/usd-arnold/schema"
	"github.com/PaulDoessel/usd-arnold/sdf"
	"github.com/PaulDoessel/usd-arnold/usd"
)

// Build is a document turned into live objects.
type Build struct {
	Universe  *arnold.Universe
	Stage     *usd.Stage
	Materials []MaterialRequest
	Bindings  []BindingRequest
}

// MaterialRequest is a material to export.
type MaterialRequest struct {
	Name         string
	Surface      *arnold.Node
	Displacement *arnold.Node
}

// BindingRequest binds a material to a shape. Exactly one of
// MaterialName and MaterialPath is set.
type BindingRequest struct {
	MaterialName string
	MaterialPath sdf.Path
	Shape        sdf.Path
}

// Build creates the universe, authors the shapes on a new stage and
// resolves material and binding requests. All problems are reported
// together.
func (d *Document) Build() (*Build, error) {
	b := &Build{
		Universe: arnold.NewUniverse(arnold.Builtins()...),
		Stage:    usd.NewStage(),
	}
	var errs []error

	for _, e := range d.Entries {
		if err := addEntry(b.Universe, e); err != nil {
			errs = append(errs, err)
		}
	}
	// Nodes are created first so that links and NODE values can refer
	// to nodes declared later in the document.
	nodes := make([]*arnold.Node, len(d.Nodes))
	for i, n := range d.Nodes {
		node, err := b.Universe.CreateNode(n.Type, n.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("scenefile: node %q: %w", n.Name, err))
			continue
		}
		nodes[i] = node
	}
	for i, n := range d.Nodes {
		if nodes[i] == nil {
			continue
		}
		errs = append(errs, setupNode(b.Universe, nodes[i], n)...)
	}
	for _, s := range d.Shapes {
		if err := authorShape(b.Stage, s); err != nil {
			errs = append(errs, err)
		}
	}

	materials := make(map[string]bool, len(d.Materials))
	for _, m := range d.Materials {
		req, err := materialRequest(b.Universe, m)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		materials[m.Name] = true
		b.Materials = append(b.Materials, req)
	}
	for _, bd := range d.Bindings {
		req, err := bindingRequest(bd, materials)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		b.Bindings = append(b.Bindings, req)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return b, nil
}

// DefaultShapeType is the prim type of shapes that do not name one.
const DefaultShapeType = "Mesh"

var entryKinds = map[string]arnold.EntryKind{
	"":       arnold.KindShader,
	"shader": arnold.KindShader,
	"shape":  arnold.KindShape,
	"light":  arnold.KindLight,
	"camera": arnold.KindCamera,
}

func addEntry(u *arnold.Universe, e Entry) error {
	kind, ok := entryKinds[strings.ToLower(e.Kind)]
	if !ok {
		return fmt.Errorf("scenefile: entry %q: unknown kind %q", e.Name, e.Kind)
	}
	out, ok := arnold.ParseType(e.Output)
	if !ok {
		return fmt.Errorf("scenefile: entry %q: unknown output type %q", e.Name, e.Output)
	}
	entry := &arnold.NodeEntry{Name: e.Name, Kind: kind, OutputType: out}
	for _, p := range e.Params {
		t, ok := arnold.ParseType(p.Type)
		if !ok {
			return fmt.Errorf("scenefile: entry %q: param %q: unknown type %q", e.Name, p.Name, p.Type)
		}
		pe := arnold.ParamEntry{Name: p.Name, Type: t, EnumValues: p.Enum, Default: arnold.Zero(t)}
		if p.Default != nil {
			if t == arnold.TypeNode {
				return fmt.Errorf("scenefile: entry %q: param %q: NODE parameters cannot have a default", e.Name, p.Name)
			}
			v, err := convert(t, p.Default)
			if err != nil {
				return fmt.Errorf("scenefile: entry %q: param %q: %w", e.Name, p.Name, err)
			}
			pe.Default = v
		} else if t == arnold.TypeEnum && len(p.Enum) > 0 {
			pe.Default = arnold.Enum(p.Enum[0])
		}
		entry.Params = append(entry.Params, pe)
	}
	if err := u.AddEntry(entry); err != nil {
		return fmt.Errorf("scenefile: %w", err)
	}
	return nil
}

func setupNode(u *arnold.Universe, node *arnold.Node, n Node) []error {
	var errs []error
	fail := func(param string, err error) {
		errs = append(errs, fmt.Errorf("scenefile: node %q: param %q: %w", n.Name, param, err))
	}

	for _, up := range n.User {
		t, ok := arnold.ParseType(up.Type)
		if !ok {
			fail(up.Name, fmt.Errorf("unknown type %q", up.Type))
			continue
		}
		if err := node.DeclareUser(up.Name, t); err != nil {
			fail(up.Name, err)
			continue
		}
		if up.Value != nil {
			if err := setParam(u, node, up.Name, up.Value); err != nil {
				fail(up.Name, err)
			}
		}
	}
	for _, name := range sortedKeys(n.Params) {
		if err := setParam(u, node, name, n.Params[name]); err != nil {
			fail(name, err)
		}
	}
	for _, name := range sortedKeys(n.Links) {
		l := n.Links[name]
		src, ok := u.Lookup(l.Node)
		if !ok {
			fail(name, fmt.Errorf("link source %q not found", l.Node))
			continue
		}
		var err error
		if i := l.Component.Index(); i >= 0 {
			err = node.LinkComponent(src, i, name)
		} else {
			err = node.LinkOutput(src, name)
		}
		if err != nil {
			fail(name, err)
		}
	}
	return errs
}

func setParam(u *arnold.Universe, node *arnold.Node, name string, raw any) error {
	p, ok := node.Param(name)
	if !ok {
		return arnold.ErrUnknownParam
	}
	var (
		v   arnold.Value
		err error
	)
	if p.Type == arnold.TypeNode {
		v, err = nodeRef(u, raw)
	} else {
		v, err = convert(p.Type, raw)
	}
	if err != nil {
		return err
	}
	return node.Set(name, v)
}

func nodeRef(u *arnold.Universe, raw any) (arnold.Value, error) {
	name, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("NODE value must be a node name, got %T", raw)
	}
	if name == "" {
		return arnold.NodeRef{}, nil
	}
	n, ok := u.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("node %q not found", name)
	}
	return arnold.NodeRef{Node: n}, nil
}

func materialRequest(u *arnold.Universe, m Material) (MaterialRequest, error) {
	req := MaterialRequest{Name: m.Name}
	if m.Name == "" {
		return req, errors.New("scenefile: material without a name")
	}
	if m.Surface == "" {
		return req, fmt.Errorf("scenefile: material %q: no surface shader", m.Name)
	}
	var ok bool
	if req.Surface, ok = u.Lookup(m.Surface); !ok {
		return req, fmt.Errorf("scenefile: material %q: surface %q not found", m.Name, m.Surface)
	}
	if m.Displacement != "" {
		if req.Displacement, ok = u.Lookup(m.Displacement); !ok {
			return req, fmt.Errorf("scenefile: material %q: displacement %q not found", m.Name, m.Displacement)
		}
	}
	return req, nil
}

func bindingRequest(bd Binding, materials map[string]bool) (BindingRequest, error) {
	shape, err := sdf.NewPath(bd.Shape)
	if err != nil || shape.IsEmpty() || shape.IsPropertyPath() || shape.IsRoot() {
		return BindingRequest{}, fmt.Errorf("scenefile: binding: invalid shape path %q", bd.Shape)
	}
	req := BindingRequest{Shape: shape}
	if strings.HasPrefix(bd.Material, "/") {
		if req.MaterialPath, err = sdf.NewPath(bd.Material); err != nil {
			return BindingRequest{}, fmt.Errorf("scenefile: binding: %w", err)
		}
		return req, nil
	}
	if !materials[bd.Material] {
		return BindingRequest{}, fmt.Errorf("scenefile: binding: material %q is not declared", bd.Material)
	}
	req.MaterialName = bd.Material
	return req, nil
}

func authorShape(stage *usd.Stage, s Shape) error {
	path, err := sdf.NewPath(s.Path)
	if err != nil {
		return fmt.Errorf("scenefile: shape: %w", err)
	}
	typeName := s.Type
	if typeName == "" {
		typeName = DefaultShapeType
	}
	prim, err := stage.DefinePrim(path, typeName)
	if err != nil {
		return fmt.Errorf("scenefile: shape: %w", err)
	}
	api := schema.NewShapeAPI(prim)
	for _, name := range sortedKeys(s.Attributes) {
		def, ok := schema.ShapeAttribute(name)
		if !ok {
			return fmt.Errorf("scenefile: shape %s: unknown attribute %q", s.Path, name)
		}
		v, err := convertAttr(def.Type, s.Attributes[name])
		if err != nil {
			return fmt.Errorf("scenefile: shape %s: %s: %w", s.Path, name, err)
		}
		if err := api.Set(name, v); err != nil {
			return fmt.Errorf("scenefile: shape %s: %w", s.Path, err)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// convert turns a decoded YAML value into a renderer value of type t.
func convert(t arnold.Type, raw any) (arnold.Value, error) {
	switch t {
	case arnold.TypeBoolean:
		switch v := raw.(type) {
		case bool:
			return arnold.Bool(v), nil
		case int:
			return arnold.Bool(v != 0), nil
		}
	case arnold.TypeByte:
		if i, ok := toInt(raw); ok && i >= 0 && i <= math.MaxUint8 {
			return arnold.Byte(i), nil
		}
	case arnold.TypeInt:
		if i, ok := toInt(raw); ok && i >= math.MinInt32 && i <= math.MaxInt32 {
			return arnold.Int(i), nil
		}
	case arnold.TypeUInt:
		if i, ok := toInt(raw); ok && i >= 0 && i <= math.MaxUint32 {
			return arnold.UInt(i), nil
		}
	case arnold.TypeInt64:
		if i, ok := toInt(raw); ok {
			return arnold.Int64(i), nil
		}
	case arnold.TypeUInt64:
		if u, ok := raw.(uint64); ok {
			return arnold.UInt64(u), nil
		}
		if i, ok := toInt(raw); ok && i >= 0 {
			return arnold.UInt64(i), nil
		}
	case arnold.TypeFloat:
		if f, ok := toFloat(raw); ok {
			return arnold.Float(f), nil
		}
	case arnold.TypeString:
		if s, ok := raw.(string); ok {
			return arnold.String(s), nil
		}
	case arnold.TypeEnum:
		if s, ok := raw.(string); ok {
			return arnold.Enum(s), nil
		}
	case arnold.TypeRGB:
		if f, ok := floats(raw, 3); ok {
			return arnold.RGB{R: f[0], G: f[1], B: f[2]}, nil
		}
	case arnold.TypeRGBA:
		if f, ok := floats(raw, 4); ok {
			return arnold.RGBA{R: f[0], G: f[1], B: f[2], A: f[3]}, nil
		}
	case arnold.TypeVector:
		if f, ok := floats(raw, 3); ok {
			return arnold.Vector{X: f[0], Y: f[1], Z: f[2]}, nil
		}
	case arnold.TypePoint:
		if f, ok := floats(raw, 3); ok {
			return arnold.Point{X: f[0], Y: f[1], Z: f[2]}, nil
		}
	case arnold.TypePoint2:
		if f, ok := floats(raw, 2); ok {
			return arnold.Point2{X: f[0], Y: f[1]}, nil
		}
	case arnold.TypeMatrix:
		if f, ok := floats(flatten(raw), 16); ok {
			var m arnold.Matrix
			for i := range f {
				m[i/4][i%4] = f[i]
			}
			return m, nil
		}
	default:
		return nil, fmt.Errorf("%s values cannot be written in a scene document", t)
	}
	return nil, fmt.Errorf("cannot use %v as %s", raw, t)
}

// convertAttr turns a decoded YAML value into a shape attribute value.
func convertAttr(t sdf.ValueTypeName, raw any) (sdf.Value, error) {
	switch t {
	case sdf.TypeBool:
		switch v := raw.(type) {
		case bool:
			return sdf.Bool(v), nil
		case int:
			return sdf.Bool(v != 0), nil
		}
	case sdf.TypeFloat:
		if f, ok := toFloat(raw); ok {
			return sdf.Float(f), nil
		}
	case sdf.TypeUInt:
		if i, ok := toInt(raw); ok && i >= 0 && i <= math.MaxUint32 {
			return sdf.UInt(i), nil
		}
	case sdf.TypeToken:
		if s, ok := raw.(string); ok {
			return sdf.Token(s), nil
		}
	case sdf.TypeString:
		if s, ok := raw.(string); ok {
			return sdf.String(s), nil
		}
	}
	return nil, fmt.Errorf("cannot use %v as %s", raw, t)
}

func toInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v <= math.MaxInt64 {
			return int64(v), true
		}
	}
	return 0, false
}

func toFloat(raw any) (float32, bool) {
	switch v := raw.(type) {
	case int:
		return float32(v), true
	case int64:
		return float32(v), true
	case uint64:
		return float32(v), true
	case float64:
		return float32(v), true
	}
	return 0, false
}

func floats(raw any, n int) ([]float32, bool) {
	list, ok := raw.([]any)
	if !ok || len(list) != n {
		return nil, false
	}
	out := make([]float32, n)
	for i, item := range list {
		f, ok := toFloat(item)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// flatten accepts a matrix written as four rows.
func flatten(raw any) any {
	rows, ok := raw.([]any)
	if !ok || len(rows) != 4 {
		return raw
	}
	var flat []any
	for _, r := range rows {
		row, ok := r.([]any)
		if !ok {
			return raw
		}
		flat = append(flat, row...)
	}
	return flat
}
