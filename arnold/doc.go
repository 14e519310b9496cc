// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package arnold models the renderer side of the exporter: parameter type
// codes, typed parameter values, node entries (node type definitions) and
// the nodes of a live shading graph.
//
// # Structure
//
// A [Universe] owns [NodeEntry] definitions and the [Node] instances created
// from them. Each node carries explicit parameter values, links to upstream
// nodes and optional user-declared parameters:
//
//	u := arnold.NewUniverse(arnold.Builtins()...)
//	surf, _ := u.CreateNode("standard_surface", "chrome")
//	tex, _ := u.CreateNode("image", "chrome_tex")
//	_ = tex.Set("filename", arnold.String("chrome.tx"))
//	_ = surf.LinkOutput(tex, "base_color")
//
// Node identity is pointer identity. Two nodes with the same parameter
// values are still two nodes.
//
// The exporter only reads from this package. The mutating methods exist to
// build graphs for it.
package arnold
