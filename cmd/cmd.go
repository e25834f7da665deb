// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matt-FFFFFF/ok"
	"github.com/matt-FFFFFF/ok/cmd/cmdstate"
	"github.com/matt-FFFFFF/ok/cmd/help"
	"github.com/matt-FFFFFF/ok/cmd/list"
	"github.com/matt-FFFFFF/ok/internal/config"
	"github.com/matt-FFFFFF/ok/internal/ctxlog"
	"github.com/matt-FFFFFF/ok/internal/info"
	"github.com/matt-FFFFFF/ok/internal/okfile"
	"github.com/matt-FFFFFF/ok/internal/render"
	"github.com/matt-FFFFFF/ok/internal/shell"
	"github.com/urfave/cli/v3"
)

// Exit codes returned by Run. A command's own exit code is passed through.
const (
	ExitOK              = 0
	ExitUnexpected      = 1
	ExitInvalidArgument = 2
)

// Options configures a Run.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Environ is the environment snapshot. Nil means os.Environ().
	Environ []string
	// EnvFiles are the env-definition file candidates. Nil means the default locations.
	EnvFiles []string
}

// New creates the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:  ok.Name,
		Usage: "run numbered shell commands from a list file",
		Description: `ok shows the commands listed in a '.ok' file with a number in front of each one.
Run a command by passing its number, with any extra arguments appended to it.`,
		UsageText: "ok [options] <number> [script-arguments...]",
		Commands: []*cli.Command{
			list.ListCmd,
			help.HelpCmd,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    cmdstate.FlagCommentAlign,
				Aliases: []string{"c"},
				Usage:   "Level of comment alignment (0-3)",
			},
			&cli.StringFlag{
				Name:      cmdstate.FlagFile,
				Aliases:   []string{"f"},
				Usage:     "Use a custom file instead of '.ok'",
				Value:     okfile.DefaultFileName,
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    cmdstate.FlagHelp,
				Aliases: []string{"h"},
				Usage:   "Show this usage information",
			},
			&cli.BoolFlag{
				Name:    cmdstate.FlagInfo,
				Aliases: []string{"i"},
				Usage:   "Show the resolved configuration and exit",
			},
			&cli.BoolFlag{
				Name:    cmdstate.FlagVerbose,
				Aliases: []string{"v"},
				Usage:   "Show more output",
			},
			&cli.BoolFlag{
				Name:    cmdstate.FlagQuiet,
				Aliases: []string{"q"},
				Usage:   "Show less output",
			},
			&cli.BoolFlag{
				Name:    cmdstate.FlagVersion,
				Aliases: []string{"V"},
				Usage:   "Show version and exit",
			},
		},
		HideHelp:       true,
		HideVersion:    true,
		Action:         actionFunc,
		OnUsageError:   onUsageError,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// Run runs the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, opts Options) (code int) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(opts.Stderr, "Unexpected Error: %v\n", r) //nolint:errcheck
			code = ExitUnexpected
		}
	}()

	st := cmdstate.New(opts.Stdout, opts.Stderr, config.LoadOptions{
		Environ:  opts.Environ,
		EnvFiles: opts.EnvFiles,
	})

	root := New()
	root.Writer = opts.Stdout
	root.ErrWriter = opts.Stderr

	err := root.Run(cmdstate.WithState(ctx, st), args)

	return ExitCode(err, opts.Stderr)
}

// ExitCode maps an error returned by the root command to an exit code.
// Errors that carry no exit code are reported to w as unexpected.
func ExitCode(err error, w io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	fmt.Fprintf(w, "Unexpected Error: %v\n", err) //nolint:errcheck

	return ExitUnexpected
}

func onUsageError(_ context.Context, cmd *cli.Command, err error, _ bool) error {
	fmt.Fprintf(cmd.Root().ErrWriter, "Incorrect Usage: %v\n", err) //nolint:errcheck
	return cli.Exit("", ExitInvalidArgument)
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	st, err := cmdstate.FromContext(ctx)
	if err != nil {
		return err
	}

	cfg, err := st.Config(ctx, cmd)
	if err != nil {
		return err
	}

	path := cmd.String(cmdstate.FlagFile)

	switch {
	case cmd.Bool(cmdstate.FlagHelp):
		return help.Write(st.Stdout, cfg.Verbosity() == config.Verbose)
	case cmd.Bool(cmdstate.FlagVersion):
		_, err := fmt.Fprintln(st.Stdout, ok.VersionString())
		return err
	case cmd.Bool(cmdstate.FlagInfo):
		return info.New(info.NewBuild(ok.Name, ok.Version, ok.Commit), cfg, path).Write(st.Stdout)
	}

	items, found, err := list.Load(ctx, path)
	if err != nil || !found {
		return err
	}

	args := cmd.Args()

	number, convErr := strconv.Atoi(args.First())
	if !args.Present() || convErr != nil {
		return list.Show(st.Stdout, cfg, items)
	}

	maxNumber, err := items.MaxCommandNumber()
	if errors.Is(err, okfile.ErrEmptyList) {
		fmt.Fprintf(st.Stdout, "No commands found in '%s'\n", path) //nolint:errcheck
		return cli.Exit("", ExitInvalidArgument)
	}

	item, found := items.FindByNumber(number)
	if !found {
		fmt.Fprintf(st.Stdout, "Command number '%d' is out of range. Must be between 1 and %d\n", number, maxNumber) //nolint:errcheck
		return cli.Exit("", ExitInvalidArgument)
	}

	return runItem(ctx, st, cfg, item, args.Tail())
}

func runItem(ctx context.Context, st *cmdstate.State, cfg *config.Config, item okfile.Item, args []string) error {
	quiet := cfg.Verbosity() == config.Quiet

	if !quiet {
		if err := render.Prompt(cmdstate.StyledWriter(cfg, st.Stdout), cfg.Prompt(), item); err != nil {
			return err
		}
	}

	c, err := shell.New(ctx, cfg.Environ(), item.Command, args)
	if err != nil {
		return err
	}

	ctxlog.Info(ctx, "running command", "number", item.Number, "command", item.Command, "args", args)

	res, err := c.Run(ctx)
	if err != nil {
		return err
	}

	if _, err := st.Stdout.Write(res.StdOut); err != nil {
		return err
	}

	if !quiet && len(res.StdErr) > 0 {
		if _, err := st.Stderr.Write(res.StdErr); err != nil {
			return err
		}
	}

	ctxlog.Info(ctx, "command finished", "exitCode", res.ExitCode)

	if res.ExitCode != 0 {
		return cli.Exit("", res.ExitCode)
	}

	return nil
}
