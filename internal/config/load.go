// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/ok/internal/ctxlog"
	"github.com/matt-FFFFFF/ok/internal/envfile"
	"github.com/matt-FFFFFF/ok/internal/filesystem"
)

const (
	// EnvFileName is the name of the env-definition file.
	EnvFileName = ".ok.env"
	appDirName  = "ok"
)

var (
	// ErrLoadEnvFile is returned when definitions read from the env-definition file cannot be merged.
	ErrLoadEnvFile = errors.New("failed to load env file")
)

// LoadOptions controls Load.
type LoadOptions struct {
	// Environ is the process environment to snapshot. Nil means os.Environ().
	Environ []string
	// EnvFiles are the candidate env-definition files, first existing wins.
	// Nil means EnvFileCandidates().
	EnvFiles []string
}

// EnvFileCandidates returns the default env-definition file locations:
// the home directory first, then the "ok" directory under the user configuration directory.
func EnvFileCandidates() []string {
	var paths []string

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, EnvFileName))
	}

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, appDirName, EnvFileName))
	}

	return paths
}

// Load snapshots the environment and merges the first existing env-definition file
// over it. Malformed lines in the file are skipped. ${NAME} references in the file
// resolve against the snapshot, then against earlier definitions in the file.
// A file that cannot be read is logged and ignored.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	candidates := opts.EnvFiles
	if candidates == nil {
		candidates = EnvFileCandidates()
	}

	c := New(environ)
	logger := ctxlog.Logger(ctx)

	var path string

	for _, p := range candidates {
		if filesystem.Exists(p) {
			path = p
			break
		}
	}

	if path == "" {
		logger.Debug("no env file found", "candidates", candidates)
		return c, nil
	}

	env := envfile.New(envfile.WithLookup(c.LookupEnv), envfile.WithSkipParseErrors())
	if err := env.LoadFrom(path); err != nil {
		logger.Warn("env file ignored", "path", path, "error", err)
		return c, nil
	}

	if err := env.MergeWithOverride(c); err != nil {
		return c, errors.Join(ErrLoadEnvFile, err)
	}

	c.envFile = path
	logger.Debug("env file merged", "path", path, "definitions", env.Len())

	return c, nil
}
