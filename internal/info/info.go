// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package info builds the diagnostic report printed by --info.
package info

import (
	"errors"
	"io"
	"runtime"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/ok/internal/config"
	"github.com/matt-FFFFFF/ok/internal/filesystem"
	"github.com/matt-FFFFFF/ok/internal/okfile"
)

// ErrWriteReport is returned when the report cannot be encoded or written.
var ErrWriteReport = errors.New("failed to write info report")

// Build identifies the running binary.
type Build struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Commit  string `yaml:"commit"`
	Go      string `yaml:"go"`
	OS      string `yaml:"os"`
	Arch    string `yaml:"arch"`
}

// ListFile describes the list file that would be used.
type ListFile struct {
	Path   string `yaml:"path"`
	Remote bool   `yaml:"remote"`
	Exists bool   `yaml:"exists"`
}

// Report is the --info document.
type Report struct {
	Build    Build            `yaml:"build"`
	ListFile ListFile         `yaml:"list_file"`
	EnvFile  string           `yaml:"env_file"`
	Settings []config.Setting `yaml:"settings"`
}

// NewBuild fills in the runtime details for a binary.
func NewBuild(name, version, commit string) Build {
	return Build{
		Name:    name,
		Version: version,
		Commit:  commit,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// New collects the report for cfg and the list file at path.
// Remote list files are not fetched, so Exists is always false for them.
func New(build Build, cfg *config.Config, path string) Report {
	remote := okfile.IsRemote(path)

	envFile := cfg.EnvFile()
	if envFile == "" {
		envFile = "none"
	}

	return Report{
		Build: build,
		ListFile: ListFile{
			Path:   path,
			Remote: remote,
			Exists: !remote && filesystem.Exists(path),
		},
		EnvFile:  envFile,
		Settings: cfg.Settings(),
	}
}

// Write encodes r as YAML to w.
func (r Report) Write(w io.Writer) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	return nil
}
