// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package list shows the numbered command list.
package list

import (
	"context"
	"errors"
	"io"

	"github.com/matt-FFFFFF/ok/cmd/cmdstate"
	"github.com/matt-FFFFFF/ok/internal/config"
	"github.com/matt-FFFFFF/ok/internal/ctxlog"
	"github.com/matt-FFFFFF/ok/internal/okfile"
	"github.com/matt-FFFFFF/ok/internal/render"
	"github.com/urfave/cli/v3"
)

// ListCmd shows the list from the list file.
var ListCmd = &cli.Command{
	Name:     "list",
	Aliases:  []string{"ls", "l"},
	Usage:    "Show the list from the list file",
	HideHelp: true,
	Action:   Action,
}

// Action loads the list file named by the file flag and shows it.
// A missing list file is not an error and shows nothing.
func Action(ctx context.Context, cmd *cli.Command) error {
	st, err := cmdstate.FromContext(ctx)
	if err != nil {
		return err
	}

	cfg, err := st.Config(ctx, cmd)
	if err != nil {
		return err
	}

	items, found, err := Load(ctx, cmd.String(cmdstate.FlagFile))
	if err != nil || !found {
		return err
	}

	return Show(st.Stdout, cfg, items)
}

// Load reads the list at path, reporting found=false when a local file does not exist.
func Load(ctx context.Context, path string) (okfile.List, bool, error) {
	if path == "" {
		path = okfile.DefaultFileName
	}

	items, err := okfile.Load(ctx, path)

	switch {
	case errors.Is(err, okfile.ErrFileNotFound):
		ctxlog.Debug(ctx, "list file not found", "path", path)
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	ctxlog.Debug(ctx, "list file loaded", "path", path, "commands", items.CommandCount())

	return items, true, nil
}

// Show renders items to w using the alignment and colors of cfg.
func Show(w io.Writer, cfg *config.Config, items okfile.List) error {
	return render.List(cmdstate.StyledWriter(cfg, w), items, cfg.Alignment())
}
