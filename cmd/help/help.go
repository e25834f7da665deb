// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package help prints the ok usage text.
package help

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/ok"
	"github.com/matt-FFFFFF/ok/cmd/cmdstate"
	"github.com/matt-FFFFFF/ok/internal/config"
	"github.com/matt-FFFFFF/ok/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const usage = `Usage: ok [options] <number> [script-arguments...]
       ok <command> [options]

number:
  1..commandCount       Run <number>th command from the list file.

script-arguments:
  ...                   These are passed through when a line is executed.
                        Put arguments that start with '-' after '--'.

command:
  l, ls, list           Show the list from the list file.
                        Default command when none are specified.
  h, help               Show this usage information.

options:
  -c, --comment_align N Level of comment alignment.
                        0=no alignment, 1=align consecutive lines (Default),
                        2=including blank lines, 3=align all.
  -f, --file PATH       Use a custom file instead of '.ok'.
                        Remote files are supported as go-getter URLs,
                        e.g. git::https://github.com/me/dotfiles//.ok
  -h, --help            Show this usage information.
  -i, --info            Show the resolved configuration and exit.
  -v, --verbose         Show more output, mostly errors.
                        Will also show environment variables in this screen.
  -q, --quiet           Show less output.
  -V, --version         Show version and exit.
`

const environment = `
environment variables (colors are console color names or 0-15, or 'default'):
  _OK_C_HEADING         Color for lines starting with a comment (heading).
                        Defaults to red.
  _OK_C_NUMBER          Color for numbering. Defaults to cyan.
  _OK_C_COMMENT         Color for comments. Defaults to blue.
  _OK_C_COMMAND         Color for commands.
                        Defaults to standard terminal color.
  _OK_C_PROMPT          Color for prompt. Defaults to cyan.

environment variables (other configuration):
  _OK_COMMENT_ALIGN     Level of comment alignment. 0=no alignment,
                        1=align consecutive lines (Default),
                        2=including blank lines, 3=align all.
  _OK_PROMPT            String used as prompt. Defaults to '> '.
  _OK_VERBOSE           Level of feedback ok provides.
                        0=quiet, 1=normal (Default),
                        2=verbose. Can be overridden with --verbose or --quiet.
  %-21s Log level: DEBUG, INFO, WARN (Default) or ERROR.
  NO_COLOR              Disable colored output.
  FORCE_COLOR           Enable colored output even when not a terminal.

Variables may also be set in '%s' in the home directory
or the ok directory below the user configuration directory.
`

func init() {
	// Help requested through the library itself gets the same text.
	cli.HelpPrinter = func(w io.Writer, _ string, data any) {
		cmd, _ := data.(*cli.Command)
		_ = Write(w, cmd != nil && cmd.Bool(cmdstate.FlagVerbose))
	}
}

// HelpCmd shows the usage information.
var HelpCmd = &cli.Command{
	Name:     "help",
	Aliases:  []string{"h"},
	Usage:    "Show this usage information",
	HideHelp: true,
	Action:   Action,
}

// Action writes the usage text to the state's stdout.
func Action(ctx context.Context, cmd *cli.Command) error {
	st, err := cmdstate.FromContext(ctx)
	if err != nil {
		return err
	}

	cfg, err := st.Config(ctx, cmd)
	if err != nil {
		return err
	}

	return Write(st.Stdout, cfg.Verbosity() == config.Verbose)
}

// Write writes the usage text. The environment section is only included when verbose.
func Write(w io.Writer, verbose bool) error {
	sb := strings.Builder{}

	fmt.Fprintf(&sb, "%s %s\n", ok.Name, ok.VersionString())
	sb.WriteString("Run numbered shell commands from a list file in the current directory.\n\n")
	sb.WriteString(usage)

	if verbose {
		fmt.Fprintf(&sb, environment, ctxlog.LevelEnvVar(), config.EnvFileName)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
