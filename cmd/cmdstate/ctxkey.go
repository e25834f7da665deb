// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate carries per invocation state between the CLI commands.
// The state travels in the context so that every command, including help,
// sees the same configuration, loaded at most once.
package cmdstate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/ok/internal/color"
	"github.com/matt-FFFFFF/ok/internal/config"
	"github.com/matt-FFFFFF/ok/internal/ctxlog"
	"github.com/matt-FFFFFF/ok/internal/render"
	"github.com/urfave/cli/v3"
)

// Flag names shared by the commands.
const (
	FlagCommentAlign = "comment_align"
	FlagFile         = "file"
	FlagHelp         = "help"
	FlagInfo         = "info"
	FlagQuiet        = "quiet"
	FlagVerbose      = "verbose"
	FlagVersion      = "version"
)

// ErrNoState is returned when the context carries no State.
var ErrNoState = errors.New("command state missing from context")

// ContextKey is the context key for the State.
type ContextKey struct{}

// State is shared by all commands of one invocation.
type State struct {
	Stdout      io.Writer
	Stderr      io.Writer
	LoadOptions config.LoadOptions

	once sync.Once
	cfg  *config.Config
	err  error
}

// New creates a State writing to stdout and stderr.
func New(stdout, stderr io.Writer, opts config.LoadOptions) *State {
	return &State{
		Stdout:      stdout,
		Stderr:      stderr,
		LoadOptions: opts,
	}
}

// WithState stores s in ctx.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, ContextKey{}, s)
}

// FromContext returns the State stored in ctx.
func FromContext(ctx context.Context) (*State, error) {
	s, ok := ctx.Value(ContextKey{}).(*State)
	if !ok || s == nil {
		return nil, ErrNoState
	}

	return s, nil
}

// Config loads the configuration on first use and applies the flag overrides set on cmd.
func (s *State) Config(ctx context.Context, cmd *cli.Command) (*config.Config, error) {
	s.once.Do(func() {
		s.cfg, s.err = config.Load(ctx, s.LoadOptions)
	})

	if s.err != nil {
		return nil, s.err
	}

	applyFlags(s.cfg, cmd)

	if s.cfg.Verbosity() == config.Verbose {
		ctxlog.SetDefaultLevel(slog.LevelInfo)
	}

	return s.cfg, nil
}

func applyFlags(cfg *config.Config, cmd *cli.Command) {
	if cmd == nil {
		return
	}

	if cmd.IsSet(FlagCommentAlign) {
		raw := strings.TrimSpace(cmd.String(FlagCommentAlign))

		// An out of range number selects the default, anything unparsable is ignored.
		if n, err := strconv.Atoi(raw); err == nil {
			cfg.SetAlignment(config.AlignmentFromInt(n, config.DefaultAlignment))
		} else if a := config.ParseAlignment(raw, -1); a >= 0 {
			cfg.SetAlignment(a)
		}
	}

	if cmd.Bool(FlagQuiet) {
		cfg.SetVerbosity(config.Quiet)
	}

	// -v wins over -q.
	if cmd.Bool(FlagVerbose) {
		cfg.SetVerbosity(config.Verbose)
	}
}

// StyledWriter returns a writer for w using the configured colors.
// Color is only used when w is a color capable terminal.
func StyledWriter(cfg *config.Config, w io.Writer) *render.StyledWriter {
	return render.NewStyledWriter(w, render.NewPalette(cfg.Colors()), color.EnabledFor(w))
}
