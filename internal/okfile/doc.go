// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package okfile parses command list files.
//
// Every line of a list file becomes one Item. Blank lines are Empty items,
// lines starting with '#' are Comment items (headings), and every other line
// is a Command item numbered from 1 in file order. The first '#' on a command
// line starts its trailing comment; quoting is not taken into account.
package okfile
