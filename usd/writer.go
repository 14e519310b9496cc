// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package usd

import (
	"io"
	"strings"

	"github.com/PaulDoessel/usd-arnold/sdf"
)

// Header is the first line of every usda document.
const Header = "#usda 1.0"

const indentUnit = "    "

// Writer renders a stage as usda text.
type Writer struct {
	stage *Stage

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int
}

// NewWriter creates a writer for stage.
func NewWriter(stage *Stage) *Writer {
	return &Writer{stage: stage}
}

// Write renders stage as usda text.
func Write(stage *Stage) string {
	w := NewWriter(stage)
	w.writeStage()
	return w.String()
}

// WriteTo renders stage as usda text into dst.
func WriteTo(dst io.Writer, stage *Stage) (int64, error) {
	n, err := io.WriteString(dst, Write(stage))
	return int64(n), err
}

// String returns the rendered text.
func (w *Writer) String() string {
	return w.out.String()
}

func (w *Writer) writeStage() {
	w.writeLine(Header)
	for _, p := range w.stage.RootPrims() {
		w.out.WriteByte('\n')
		w.writePrim(p)
	}
}

func (w *Writer) writePrim(p *Prim) {
	var head strings.Builder
	head.WriteString(p.Specifier().String())
	if p.TypeName() != "" {
		head.WriteByte(' ')
		head.WriteString(p.TypeName())
	}
	head.WriteString(` "`)
	head.WriteString(p.Name())
	head.WriteByte('"')
	w.writeLine(head.String())
	w.writeLine("{")
	w.indent++

	for _, a := range p.Attributes() {
		w.writeAttribute(a)
	}
	for _, r := range p.Relationships() {
		w.writeLine("rel " + r.Name() + " = " + pathList(r.Targets()))
	}

	hasProps := len(p.Attributes())+len(p.Relationships()) > 0
	for i, c := range p.Children() {
		if i > 0 || hasProps {
			w.out.WriteByte('\n')
		}
		w.writePrim(c)
	}

	w.indent--
	w.writeLine("}")
}

func (w *Writer) writeAttribute(a *Attribute) {
	decl := a.TypeName().String() + " " + a.Name()
	if a.Variability() == Uniform {
		decl = "uniform " + decl
	}

	if v, ok := a.Get(); ok {
		w.writeLine(decl + " = " + sdf.Format(v))
	}
	if a.HasConnections() {
		w.writeLine(decl + ".connect = " + pathList(a.Connections()))
	}
	if !a.HasValue() && !a.HasConnections() {
		w.writeLine(decl)
	}
}

func (w *Writer) writeLine(s string) {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString(indentUnit)
	}
	w.out.WriteString(s)
	w.out.WriteByte('\n')
}

func pathList(paths []sdf.Path) string {
	if len(paths) == 1 {
		return "<" + paths[0].String() + ">"
	}
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = "<" + p.String() + ">"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
