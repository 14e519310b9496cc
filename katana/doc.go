// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

// Package katana translates shape attributes into the host application's
// attribute groups.
package katana
