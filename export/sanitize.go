// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnnamedIdentifier replaces names that sanitize to nothing.
const UnnamedIdentifier = "_unnamed"

// CleanName maps a renderer node name to a legal prim name. It is
// deterministic and total, but not injective: "a.b" and "a:b" both become
// "a_b". Uniqueness is the registry's job.
//
// Accented letters are reduced to their base letter, leading '/'
// separators are dropped, any other character outside [A-Za-z0-9_]
// becomes '_', and a leading digit gets a '_' prefix.
func CleanName(raw string) string {
	// A transformer chain keeps state, so build one per call.
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, raw)
	if err != nil {
		folded = raw
	}
	folded = strings.TrimLeft(folded, "/")

	var sb strings.Builder
	sb.Grow(len(folded) + 1)
	for i, r := range folded {
		if i == 0 && r >= '0' && r <= '9' {
			sb.WriteByte('_')
		}
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}

	if sb.Len() == 0 {
		return UnnamedIdentifier
	}
	return sb.String()
}
