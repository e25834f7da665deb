// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package okfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/ok/internal/filesystem"
)

const (
	// DefaultFileName is the list file used when none is given.
	DefaultFileName = ".ok"
	commentPrefix   = "#"
	utf8BOM         = "\ufeff"
	maxLineLength   = 1024 * 1024
)

var (
	// ErrFileNotFound is returned when the list file does not exist.
	ErrFileNotFound = errors.New("list file not found")
	// ErrReadFile is returned when the list file cannot be read.
	ErrReadFile = errors.New("failed to read list file")
)

// Parse reads a list from r.
func Parse(r io.Reader) (List, error) {
	var (
		list   List
		number int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)

	first := true

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}

		line = strings.TrimSpace(line)

		switch {
		case line == "":
			list = append(list, NewEmpty())
		case strings.HasPrefix(line, commentPrefix):
			list = append(list, NewComment(line))
		default:
			number++

			command, comment, found := strings.Cut(line, commentPrefix)
			if !found {
				list = append(list, NewCommand(number, line, ""))
				continue
			}

			list = append(list, NewCommand(number, strings.TrimSpace(command), strings.TrimSpace(commentPrefix+comment)))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	return list, nil
}

// ParseFile reads the list file at path.
func ParseFile(path string) (List, error) {
	if !filesystem.Exists(path) {
		return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
	}

	f, err := filesystem.Factory().Open(path)
	if filesystem.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
	}

	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	defer f.Close() //nolint:errcheck

	return Parse(f)
}
