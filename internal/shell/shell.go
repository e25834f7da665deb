// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/matt-FFFFFF/ok/internal/ctxlog"
	"github.com/matt-FFFFFF/ok/internal/signalbroker"
	"golang.org/x/sync/errgroup"
)

const (
	maxBufferSize        = 8 * 1024 * 1024 // 8MB
	commandSwitchWindows = "/C"
	commandSwitchUnix    = "-c"
	winSystem32          = "System32"
	cmdExe               = "cmd.exe"
	binSh                = "/bin/sh"
	winSystemRootEnv     = "SystemRoot"
	shellEnv             = "SHELL"
)

var (
	// ErrCommandNotFound is returned when the command text is empty or the shell cannot be found.
	ErrCommandNotFound = errors.New("command not found")
	// ErrCouldNotStartProcess is returned when the shell could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when an operating system pipe could not be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadBuffer is returned when output could not be read from the child.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
	// ErrWaitProcess is returned when waiting for the child fails.
	ErrWaitProcess = errors.New("failed to wait for process")
)

// Command is a command line ready to run in a shell.
type Command struct {
	// Path is the shell executable.
	Path string
	// Args are the shell arguments, not including the executable name.
	Args []string
	// Env is the child environment as KEY=VALUE strings.
	Env []string
	// Stdin is handed to the child, defaults to os.Stdin.
	Stdin *os.File
}

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	StdOut   []byte
	StdErr   []byte
	// Truncated is set when either stream exceeded the maximum buffer size.
	Truncated bool
}

// New creates a Command that runs text followed by args in the platform shell.
// The shell is chosen from env, which also becomes the child environment.
func New(ctx context.Context, env []string, text string, args []string) (*Command, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrCommandNotFound
	}

	line := CommandLine(runtime.GOOS, text, args)

	path, err := defaultShell(ctx, env)
	if err != nil {
		return nil, err
	}

	switch runtime.GOOS {
	case GOOSWindows:
		return &Command{Path: path, Args: []string{commandSwitchWindows, line}, Env: env}, nil
	default:
		return &Command{Path: path, Args: []string{commandSwitchUnix, line}, Env: env}, nil
	}
}

func defaultShell(ctx context.Context, env []string) (string, error) {
	if runtime.GOOS == GOOSWindows {
		systemRoot := lookupEnv(env, winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe), nil
	}

	shell := lookupEnv(env, shellEnv)
	if shell == "" {
		return binSh, nil
	}

	ctxlog.Debug(ctx, "using SHELL environment variable", "shell", shell)

	if filepath.IsAbs(shell) {
		return shell, nil
	}

	path, err := exec.LookPath(shell)
	if err != nil {
		return "", errors.Join(ErrCommandNotFound, err)
	}

	return path, nil
}

// lookupEnv returns the last value of key in env.
func lookupEnv(env []string, key string) string {
	value := ""

	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			value = v
		}
	}

	return value
}

// Run starts the command and waits for it to exit.
// A non-zero exit code is reported in the Result, not as an error.
func (c *Command) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.Logger(ctx).With("path", c.Path)
	logger.Debug("command info", "args", c.Args)

	rOut, wOut, err := os.Pipe()
	if err != nil {
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		closeAll(rOut, wOut)
		return nil, errors.Join(ErrFailedToCreatePipe, err)
	}

	stdin := c.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	ps, err := os.StartProcess(c.Path, append([]string{filepath.Base(c.Path)}, c.Args...), &os.ProcAttr{
		Env:   c.Env,
		Files: []*os.File{stdin, wOut, wErr},
	})

	// The child holds its own copies of the write ends.
	closeAll(wOut, wErr)

	if err != nil {
		closeAll(rOut, rErr)
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	sigCh := signalbroker.New(ctx)
	watchDone := make(chan struct{})

	go func() {
		defer close(watchDone)
		signalbroker.Watch(ctx, sigCh, ps)
	}()

	res := &Result{}

	var g errgroup.Group

	var outTrunc, errTrunc bool

	g.Go(func() error {
		var err error
		res.StdOut, outTrunc, err = readAllUpToMax(rOut, maxBufferSize)

		return err
	})

	g.Go(func() error {
		var err error
		res.StdErr, errTrunc, err = readAllUpToMax(rErr, maxBufferSize)

		return err
	})

	state, psErr := ps.Wait()
	readErr := g.Wait()

	signalbroker.Stop(sigCh)
	<-watchDone

	closeAll(rOut, rErr)

	if psErr != nil {
		return nil, errors.Join(ErrWaitProcess, psErr)
	}

	if readErr != nil {
		return nil, readErr
	}

	res.ExitCode = state.ExitCode()
	res.Truncated = outTrunc || errTrunc

	logger.Debug("process finished",
		"exitCode", res.ExitCode,
		"stdoutBytes", len(res.StdOut),
		"stderrBytes", len(res.StdErr),
	)

	if res.Truncated {
		logger.Warn("command output truncated", "maxBytes", maxBufferSize)
	}

	return res, nil
}

// readAllUpToMax reads r to EOF, keeping at most maxBufferSize bytes.
// The remainder is discarded so the writer never blocks on a full pipe.
func readAllUpToMax(r io.Reader, maxBufferSize int64) ([]byte, bool, error) {
	var buf bytes.Buffer

	n, err := io.CopyN(&buf, r, maxBufferSize+1)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, false, errors.Join(ErrFailedToReadBuffer, err)
	}

	if n <= maxBufferSize {
		return buf.Bytes(), false, nil
	}

	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, false, errors.Join(ErrFailedToReadBuffer, err)
	}

	return buf.Bytes()[:maxBufferSize], true, nil
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
