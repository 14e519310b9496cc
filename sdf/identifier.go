// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package sdf

import "strings"

// IsValidIdentifier reports whether name matches [A-Za-z_][A-Za-z0-9_]*.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsValidNamespacedName reports whether name is one or more identifiers
// joined by ':'.
func IsValidNamespacedName(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ":") {
		if !IsValidIdentifier(part) {
			return false
		}
	}
	return true
}
