// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes export errors.
type ErrorKind uint8

const (
	// ErrUnsupportedType indicates a parameter type with no scene
	// description equivalent. The parameter is skipped.
	ErrUnsupportedType ErrorKind = iota

	// ErrInvalidComponentReference indicates a link to an output channel
	// that does not exist. The connection is skipped.
	ErrInvalidComponentReference

	// ErrCyclicDependency indicates a node that transitively depends on
	// itself. The export is aborted.
	ErrCyclicDependency

	// ErrDuplicateRegistration indicates a node registered twice in one
	// session. It is a traversal defect, not a user error.
	ErrDuplicateRegistration

	// ErrInvalidNode indicates a nil or otherwise unusable node argument.
	ErrInvalidNode

	// ErrSink indicates the target stage rejected a write.
	ErrSink
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedType:
		return "UnsupportedType"
	case ErrInvalidComponentReference:
		return "InvalidComponentReference"
	case ErrCyclicDependency:
		return "CyclicDependency"
	case ErrDuplicateRegistration:
		return "DuplicateRegistration"
	case ErrInvalidNode:
		return "InvalidNode"
	case ErrSink:
		return "Sink"
	default:
		return "Unknown"
	}
}

// Recoverable reports whether errors of this kind are recorded in the
// report and skipped instead of aborting the export.
func (k ErrorKind) Recoverable() bool {
	return k == ErrUnsupportedType || k == ErrInvalidComponentReference
}

// Error represents an export error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Node is the renderer node name, if known.
	Node string

	// Param is the parameter name, if the error concerns one.
	Param string

	// Message provides details about the error.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "export %s", e.Kind)
	switch {
	case e.Node != "" && e.Param != "":
		fmt.Fprintf(&sb, " at %s.%s", e.Node, e.Param)
	case e.Node != "":
		fmt.Fprintf(&sb, " at %s", e.Node)
	case e.Param != "":
		fmt.Fprintf(&sb, " at .%s", e.Param)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so that
// errors.Is(err, &Error{Kind: ErrCyclicDependency}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsUnsupportedType returns true if the error is ErrUnsupportedType.
func (e *Error) IsUnsupportedType() bool {
	return e.Kind == ErrUnsupportedType
}

// IsInvalidComponentReference returns true if the error is
// ErrInvalidComponentReference.
func (e *Error) IsInvalidComponentReference() bool {
	return e.Kind == ErrInvalidComponentReference
}

// IsCyclicDependency returns true if the error is ErrCyclicDependency.
func (e *Error) IsCyclicDependency() bool {
	return e.Kind == ErrCyclicDependency
}

// IsDuplicateRegistration returns true if the error is
// ErrDuplicateRegistration.
func (e *Error) IsDuplicateRegistration() bool {
	return e.Kind == ErrDuplicateRegistration
}

// KindOf extracts the kind of an export error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind ErrorKind, node, param, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Node:    node,
		Param:   param,
		Message: fmt.Sprintf(format, args...),
	}
}

func sinkError(node string, err error) *Error {
	return &Error{Kind: ErrSink, Node: node, Err: err}
}
