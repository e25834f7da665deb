// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package okfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		src  string
		want bool
	}{
		{".ok", false},
		{"/home/me/.ok", false},
		{`C:\Users\me\.ok`, false},
		{"file::/tmp/.ok", false},
		{"file:///tmp/.ok", false},
		{"git::https://github.com/me/dotfiles//.ok", true},
		{"https://example.com/lists//.ok", true},
		{"s3::https://s3.amazonaws.com/bucket//.ok", true},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsRemote(tc.src))
		})
	}
}

func TestSplitFileNameFromGetterURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		url      string
		wantURL  string
		wantFile string
	}{
		{
			name:     "file at repository root",
			url:      "git::https://github.com/me/dotfiles//.ok",
			wantURL:  "git::https://github.com/me/dotfiles",
			wantFile: ".ok",
		},
		{
			name:     "file in sub directory",
			url:      "git::https://github.com/me/dotfiles//lists/build.ok",
			wantURL:  "git::https://github.com/me/dotfiles//lists",
			wantFile: "build.ok",
		},
		{
			name:     "ref is carried over",
			url:      "git::https://github.com/me/dotfiles//lists/build.ok?ref=v1.0.0",
			wantURL:  "git::https://github.com/me/dotfiles//lists?ref=v1.0.0",
			wantFile: "build.ok",
		},
		{
			name: "no sub path separator",
			url:  "https://example.com/list.ok",
		},
		{
			name: "trailing separator has no file",
			url:  "git::https://github.com/me/dotfiles//",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotURL, gotFile := splitFileNameFromGetterURL(tc.url)
			assert.Equal(t, tc.wantURL, gotURL)
			assert.Equal(t, tc.wantFile, gotFile)
		})
	}
}

func TestGetURLErrors(t *testing.T) {
	t.Parallel()

	_, err := getURL(context.Background(), "")
	require.ErrorIs(t, err, ErrGetRemote)

	_, err = getURL(context.Background(), "https://example.com/list.ok")
	require.ErrorIs(t, err, ErrGetRemote)
}
