// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across thaitone.
//
// # Key Functions
//
//   - TruncateWidth, Preview: display-width aware truncation for Thai text
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	row := util.Preview(result.Adjusted, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
