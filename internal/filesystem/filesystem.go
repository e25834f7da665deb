// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package filesystem holds the filesystem used to read list and env files.
// Tests replace Factory with an in-memory filesystem.
package filesystem

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

// Factory is a function that returns an afero filesystem.
var Factory = func() afero.Fs {
	return afero.NewOsFs()
}

// Exists reports whether path exists on the filesystem returned by Factory and is not a directory.
func Exists(path string) bool {
	if path == "" {
		return false
	}

	info, err := Factory().Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// IsNotExist reports whether err indicates a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
