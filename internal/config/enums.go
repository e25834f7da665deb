// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"strconv"
	"strings"
)

// Alignment controls how command text is padded before a trailing comment.
type Alignment int

const (
	// AlignNone does not pad.
	AlignNone Alignment = iota
	// AlignByGroup pads to the widest command between comment or blank lines.
	AlignByGroup
	// AlignByGroupIgnoringBlankLines pads to the widest command between comment lines.
	AlignByGroupIgnoringBlankLines
	// AlignAll pads to the widest command in the file.
	AlignAll
)

var alignmentNames = []string{"None", "ByGroup", "ByGroupIgnoringBlankLines", "All"}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return "Alignment(" + strconv.Itoa(int(a)) + ")"
	}

	return alignmentNames[a]
}

// AlignmentFromInt returns n as an Alignment, or def when n is out of range.
func AlignmentFromInt(n int, def Alignment) Alignment {
	return fromInt(n, len(alignmentNames), def)
}

// ParseAlignment parses an ordinal or a case-insensitive name, falling back to def.
func ParseAlignment(raw string, def Alignment) Alignment {
	v, _ := parseEnum(raw, alignmentNames, def)
	return v
}

// Verbosity is the amount of feedback ok prints.
type Verbosity int

const (
	// Quiet suppresses the command echo and child stderr.
	Quiet Verbosity = iota
	// Normal is the default.
	Normal
	// Verbose adds diagnostics and the environment section of the help text.
	Verbose
)

var verbosityNames = []string{"Quiet", "Normal", "Verbose"}

func (v Verbosity) String() string {
	if v < 0 || int(v) >= len(verbosityNames) {
		return "Verbosity(" + strconv.Itoa(int(v)) + ")"
	}

	return verbosityNames[v]
}

// ParseVerbosity parses an ordinal or a case-insensitive name, falling back to def.
func ParseVerbosity(raw string, def Verbosity) Verbosity {
	v, _ := parseEnum(raw, verbosityNames, def)
	return v
}

func fromInt[E ~int](n, count int, def E) E {
	if n < 0 || n >= count {
		return def
	}

	return E(n)
}

// parseEnum reports false when raw did not select a value and def was returned.
func parseEnum[E ~int](raw string, names []string, def E) (E, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, false
	}

	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 || n >= len(names) {
			return def, false
		}

		return E(n), true
	}

	for i, name := range names {
		if strings.EqualFold(name, raw) {
			return E(i), true
		}
	}

	return def, false
}
