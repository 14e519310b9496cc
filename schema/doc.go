// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package schema holds the ai: attribute schema: token constants, the
// shape attribute table, and typed views over usd prims.
package schema
