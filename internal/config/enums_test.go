// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlignment(t *testing.T) {
	testCases := []struct {
		raw  string
		want Alignment
	}{
		{raw: "0", want: AlignNone},
		{raw: "1", want: AlignByGroup},
		{raw: "2", want: AlignByGroupIgnoringBlankLines},
		{raw: "3", want: AlignAll},
		{raw: " 3 ", want: AlignAll},
		{raw: "4", want: AlignNone},
		{raw: "-1", want: AlignNone},
		{raw: "all", want: AlignAll},
		{raw: "BYGROUPIGNORINGBLANKLINES", want: AlignByGroupIgnoringBlankLines},
		{raw: "sideways", want: AlignNone},
		{raw: "", want: AlignNone},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAlignment(tc.raw, AlignNone))
		})
	}
}

func TestAlignmentFromInt(t *testing.T) {
	assert.Equal(t, AlignAll, AlignmentFromInt(3, AlignByGroup))
	assert.Equal(t, AlignNone, AlignmentFromInt(0, AlignByGroup))
	assert.Equal(t, AlignByGroup, AlignmentFromInt(9, AlignByGroup))
	assert.Equal(t, AlignByGroup, AlignmentFromInt(-2, AlignByGroup))
}

func TestParseVerbosity(t *testing.T) {
	assert.Equal(t, Quiet, ParseVerbosity("0", Normal))
	assert.Equal(t, Verbose, ParseVerbosity("2", Normal))
	assert.Equal(t, Normal, ParseVerbosity("3", Normal))
	assert.Equal(t, Quiet, ParseVerbosity("quiet", Normal))
	assert.Equal(t, Normal, ParseVerbosity("loud", Normal))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "ByGroup", AlignByGroup.String())
	assert.Equal(t, "Alignment(7)", Alignment(7).String())
	assert.Equal(t, "Verbose", Verbose.String())
	assert.Equal(t, "Verbosity(-1)", Verbosity(-1).String())
}
