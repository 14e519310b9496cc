// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import "fmt"

// Diagnostic records a parameter or connection that was skipped.
type Diagnostic struct {
	Kind    ErrorKind `yaml:"kind"`
	Node    string    `yaml:"node"`
	Param   string    `yaml:"param,omitempty"`
	Message string    `yaml:"message"`
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	if d.Param != "" {
		return fmt.Sprintf("%s: %s.%s: %s", d.Kind, d.Node, d.Param, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.Node, d.Message)
}

// MarshalYAML writes the kind by name.
func (k ErrorKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

func diagnosticOf(e *Error) Diagnostic {
	msg := e.Message
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	return Diagnostic{Kind: e.Kind, Node: e.Node, Param: e.Param, Message: msg}
}

// Report accumulates diagnostics over an export session.
type Report []Diagnostic

// Error implements the error interface.
func (r Report) Error() string {
	if len(r) == 0 {
		return "no diagnostics"
	}
	if len(r) == 1 {
		return r[0].Error()
	}
	return fmt.Sprintf("%s (and %d more diagnostics)", r[0].Error(), len(r)-1)
}

// Add appends a diagnostic.
func (r *Report) Add(d Diagnostic) {
	*r = append(*r, d)
}

// Len returns the number of diagnostics.
func (r Report) Len() int {
	return len(r)
}

// HasErrors returns true if there are any diagnostics.
func (r Report) HasErrors() bool {
	return len(r) > 0
}

// ByKind returns the diagnostics of one kind.
func (r Report) ByKind(kind ErrorKind) Report {
	var out Report
	for _, d := range r {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
