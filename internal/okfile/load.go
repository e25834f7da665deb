// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package okfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/ok/internal/ctxlog"
)

var (
	// ErrGetRemote is returned when a remote list file cannot be retrieved.
	ErrGetRemote = errors.New("failed to get remote list file")
)

const (
	goGetterForcedSeparator = "::"
	goGetterSchemeSeparator = "://"
	goGetterPathSeparator   = "//"
	goGetterRefSeparator    = "?"
	minimumGetterParts      = 3 // scheme, host and path
)

// IsRemote reports whether src should be fetched with go-getter rather than read from disk.
func IsRemote(src string) bool {
	if strings.HasPrefix(src, "file::") || strings.HasPrefix(src, "file://") {
		return false
	}

	return strings.Contains(src, goGetterForcedSeparator) || strings.Contains(src, goGetterSchemeSeparator)
}

// Load reads the list from src, which is either a local path or a go-getter URL.
// A local path that does not exist yields ErrFileNotFound.
func Load(ctx context.Context, src string) (List, error) {
	if !IsRemote(src) {
		path := strings.TrimPrefix(strings.TrimPrefix(src, "file::"), "file://")
		ctxlog.Debug(ctx, "reading list file", "path", path)

		return ParseFile(path)
	}

	ctxlog.Debug(ctx, "fetching remote list file", "url", src)

	data, err := getURL(ctx, src)
	if err != nil {
		return nil, err
	}

	return Parse(bytes.NewReader(data))
}

// getURL retrieves a single file using go-getter.
// The temporary download directory is removed before returning.
func getURL(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrGetRemote
	}

	tmpDir, err := os.MkdirTemp("", "ok-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetRemote, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetRemote, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	newURL, fileName := splitFileNameFromGetterURL(url)
	if newURL == "" || fileName == "" {
		return nil, fmt.Errorf("%w: invalid URL format: %s", ErrGetRemote, url)
	}

	req := &getter.Request{
		Src:     newURL,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrGetRemote, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, errors.Join(ErrGetRemote, err)
	}

	return data, nil
}

// splitFileNameFromGetterURL splits a go-getter URL into the directory URL and the file name.
// Any ref query is carried over to the directory URL.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]
	if before, after, found := strings.Cut(last, goGetterRefSeparator); found {
		ref = after
		last = before
	}

	if last == "" || filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	dir := filepath.Dir(last)

	if dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}
