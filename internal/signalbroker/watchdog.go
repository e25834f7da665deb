// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/ok/internal/ctxlog"
)

// Killer is a running process that can be forcefully stopped.
type Killer interface {
	Kill() error
}

// Watch consumes sigCh until it is closed.
// The first signal of a type is ignored, a second signal of the same type kills p.
func Watch(ctx context.Context, sigCh <-chan os.Signal, p Killer) {
	logger := ctxlog.Logger(ctx)
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; !ok {
			logger.Info("watchdog", "detail", "received first signal of type, no-op", "signal", sig.String())
			seen[sig] = struct{}{}

			continue
		}

		logger.Info("watchdog", "detail", "received second signal of type, killing process", "signal", sig.String())

		if err := p.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			logger.Error("watchdog", "detail", "process kill error", "error", err)
		}
	}
}
