// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import "github.com/PaulDoessel/usd-arnold/sdf"

// Sink is the target scene graph written by a session. *usd.Stage
// implements it.
type Sink interface {
	// CreateNode defines a typed prim at path. It fails if a prim is
	// already defined there.
	CreateNode(path sdf.Path, typeName string) error

	// CreateAttribute declares an attribute without a value.
	CreateAttribute(path sdf.Path, name string, typeName sdf.ValueTypeName) error

	// SetAttribute declares an attribute and authors its value.
	SetAttribute(path sdf.Path, name string, typeName sdf.ValueTypeName, v sdf.Value) error

	// Connect declares an attribute and connects it to a property path.
	Connect(path sdf.Path, name string, typeName sdf.ValueTypeName, source sdf.Path) error

	// ChildExists reports whether parent already holds a child called name.
	ChildExists(parent sdf.Path, name string) bool

	// AddRelationshipTarget appends target to a relationship of the prim
	// at path.
	AddRelationshipTarget(path sdf.Path, name string, target sdf.Path) error
}
