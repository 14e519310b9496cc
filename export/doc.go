// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package export writes renderer shading graphs to a scene description
// stage.
//
// # Sessions
//
// A [Session] exports nodes, materials and bindings into a [Sink]. It owns
// a [Registry] that maps each renderer node to the prim it was written to,
// so a node shared by several consumers is written once and every consumer
// connects to the same prim:
//
//	stage := usd.NewStage()
//	s := export.NewSession(stage, nil)
//	mat, err := s.ExportMaterial("chrome", surface, nil)
//	if err != nil {
//		return err
//	}
//	_ = s.BindMaterial(mat, sdf.MustPath("/World/sphere"))
//
// # Errors
//
// Parameters with no attribute equivalent and links to output channels
// that do not exist are skipped and recorded in the session [Report].
// Cycles in the shading graph abort the export with ErrCyclicDependency.
package export
