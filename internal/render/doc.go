// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render writes command lists to a terminal.
//
// Commands are grouped by the headings (and, for AlignByGroup, the blank lines)
// between them, and the trailing comments of each group are aligned according
// to the configured config.Alignment.
package render
