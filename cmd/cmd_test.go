// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const testList = `# Greetings
echo hello   # greet
echo bye

# Misc
printf '%s|'
`

type harness struct {
	t        *testing.T
	dir      string
	listFile string
	envFiles []string
}

func newHarness(t *testing.T, list string) *harness {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	listFile := filepath.Join(dir, ".ok")
	require.NoError(t, os.WriteFile(listFile, []byte(list), 0o600))

	return &harness{t: t, dir: dir, listFile: listFile, envFiles: []string{}}
}

func (h *harness) withEnvFile(content string) *harness {
	h.t.Helper()

	path := filepath.Join(h.dir, ".ok.env")
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o600))
	h.envFiles = []string{path}

	return h
}

// run runs ok with the list file flag prepended to args.
func (h *harness) run(args ...string) (int, string, string) {
	h.t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := Run(context.Background(), append([]string{"ok", "-f", h.listFile}, args...), Options{
		Stdout:   stdout,
		Stderr:   stderr,
		Environ:  []string{"SHELL=/bin/sh", "PATH=" + os.Getenv("PATH")},
		EnvFiles: h.envFiles,
	})

	return code, stdout.String(), stderr.String()
}

var renderedList = strings.Join([]string{
	"# Greetings",
	"1. echo hello # greet",
	"2. echo bye  ",
	"",
	"# Misc",
	"3. printf '%s|'",
}, "\n") + "\n"

func TestShowList(t *testing.T) {
	h := newHarness(t, testList)

	for _, args := range [][]string{nil, {"list"}, {"ls"}, {"l"}, {"foo"}} {
		code, stdout, stderr := h.run(args...)
		assert.Equal(t, ExitOK, code, "args %v", args)
		assert.Equal(t, renderedList, stdout, "args %v", args)
		assert.Empty(t, stderr, "args %v", args)
	}
}

func TestShowListAlignAll(t *testing.T) {
	h := newHarness(t, "ls # a\n\nlonger # b\n")

	code, stdout, _ := h.run("-c", "3")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "1. ls     # a\n\n2. longer # b\n", stdout)

	_, stdout, _ = h.run("-c", "0")
	assert.Equal(t, "1. ls # a\n\n2. longer # b\n", stdout)

	_, stdout, _ = h.run("-c", "42")
	assert.Equal(t, "1. ls # a\n\n2. longer # b\n", stdout)
}

func TestMissingListFile(t *testing.T) {
	h := newHarness(t, testList)
	h.listFile = filepath.Join(h.dir, "missing")

	code, stdout, stderr := h.run("1")
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestRunCommand(t *testing.T) {
	h := newHarness(t, testList)

	code, stdout, _ := h.run("1")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "> echo hello # greet\nhello\n", stdout)

	code, stdout, _ = h.run("2")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "> echo bye\nbye\n", stdout)
}

func TestRunCommandPassesArgs(t *testing.T) {
	h := newHarness(t, testList)

	code, stdout, _ := h.run("-q", "3", "a b", "c")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "a b|c|", stdout)
}

func TestRunCommandQuiet(t *testing.T) {
	h := newHarness(t, "echo out; echo err 1>&2\n")

	code, stdout, stderr := h.run("-q", "1")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "out\n", stdout)
	assert.Empty(t, stderr)

	code, stdout, stderr = h.run("1")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "> echo out; echo err 1>&2\nout\n", stdout)
	assert.Equal(t, "err\n", stderr)
}

func TestVerboseWinsOverQuiet(t *testing.T) {
	h := newHarness(t, "echo hi\n")

	_, stdout, _ := h.run("-q", "-v", "1")
	assert.Equal(t, "> echo hi\nhi\n", stdout)
}

func TestRunCommandExitCode(t *testing.T) {
	h := newHarness(t, "exit 7\n")

	code, _, _ := h.run("-q", "1")
	assert.Equal(t, 7, code)
}

func TestCommandNumberOutOfRange(t *testing.T) {
	h := newHarness(t, testList)

	for _, n := range []string{"4", "0"} {
		code, stdout, _ := h.run(n)
		assert.Equal(t, ExitInvalidArgument, code)
		assert.Equal(t, "Command number '"+n+"' is out of range. Must be between 1 and 3\n", stdout)
	}
}

func TestNoCommands(t *testing.T) {
	h := newHarness(t, "# just a heading\n")

	code, stdout, _ := h.run("1")
	assert.Equal(t, ExitInvalidArgument, code)
	assert.Equal(t, "No commands found in '"+h.listFile+"'\n", stdout)

	code, stdout, _ = h.run()
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "# just a heading\n", stdout)
}

func TestEnvFile(t *testing.T) {
	h := newHarness(t, "echo $GREETING\n").withEnvFile(`
_OK_PROMPT="$ "
GREETING=hi
`)

	code, stdout, _ := h.run("1")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "$ echo $GREETING\nhi\n", stdout)
}

func TestHelp(t *testing.T) {
	h := newHarness(t, testList)

	for _, args := range [][]string{{"help"}, {"h"}, {"-h"}, {"--help"}} {
		code, stdout, _ := h.run(args...)
		assert.Equal(t, ExitOK, code, "args %v", args)
		assert.Contains(t, stdout, "Usage: ok [options] <number> [script-arguments...]", "args %v", args)
		assert.NotContains(t, stdout, "_OK_COMMENT_ALIGN", "args %v", args)
	}

	_, stdout, _ := h.run("-v", "-h")
	assert.Contains(t, stdout, "_OK_COMMENT_ALIGN")
}

func TestVersion(t *testing.T) {
	h := newHarness(t, testList)

	code, stdout, _ := h.run("-V")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "dev (commit: unknown)\n", stdout)
}

func TestInfo(t *testing.T) {
	h := newHarness(t, testList)

	code, stdout, _ := h.run("-i")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "list_file:")
	assert.Contains(t, stdout, h.listFile)
	assert.Contains(t, stdout, "exists: true")
	assert.Contains(t, stdout, "_OK_COMMENT_ALIGN")
}

func TestUnknownFlag(t *testing.T) {
	h := newHarness(t, testList)

	code, _, stderr := h.run("--no-such-flag")
	assert.Equal(t, ExitInvalidArgument, code)
	assert.Contains(t, stderr, "Incorrect Usage")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	assert.Equal(t, ExitOK, ExitCode(nil, buf))
	assert.Equal(t, 5, ExitCode(cli.Exit("", 5), buf))
	assert.Empty(t, buf.String())

	assert.Equal(t, ExitUnexpected, ExitCode(errors.New("boom"), buf))
	assert.Equal(t, "Unexpected Error: boom\n", buf.String())
}
