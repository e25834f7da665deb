// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ok provides the name, version and commit of the ok binary.
package ok

// Name is the command name.
const Name = "ok"

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// VersionString returns the version and commit for display.
func VersionString() string {
	return Version + " (commit: " + Commit + ")"
}
