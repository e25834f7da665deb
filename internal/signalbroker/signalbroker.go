// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker keeps ok alive while a child command handles a termination signal.
// By default it listens for os.Interrupt, syscall.SIGTERM and syscall.SIGQUIT.
//
// The child shares the terminal's process group and receives keyboard interrupts
// itself. Watch only steps in when the same signal arrives a second time.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/ok/internal/ctxlog"
)

var termSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New starts relaying sigs, or the termination signals when none are given, to the returned channel.
// Relayed signals no longer terminate the process.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop stops relaying to ch and closes it, which ends a running Watch.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
	close(ch)
}
