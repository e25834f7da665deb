// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"errors"
	"os"
	"sync"
	"syscall"
	"testing"

	"github.com/matt-FFFFFF/ok/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

type fakeProcess struct {
	mu    sync.Mutex
	kills int
	err   error
}

func (f *fakeProcess) Kill() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.kills++

	return f.err
}

func watch(t *testing.T, p Killer, sigs ...os.Signal) {
	t.Helper()

	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)
	sigCh := make(chan os.Signal, len(sigs))

	for _, s := range sigs {
		sigCh <- s
	}

	close(sigCh)
	Watch(ctx, sigCh, p)
}

func TestWatchFirstSignalNoKill(t *testing.T) {
	t.Parallel()

	p := &fakeProcess{}
	watch(t, p, os.Interrupt)
	assert.Zero(t, p.kills)
}

func TestWatchSecondSignalKills(t *testing.T) {
	t.Parallel()

	p := &fakeProcess{}
	watch(t, p, os.Interrupt, os.Interrupt)
	assert.Equal(t, 1, p.kills)
}

func TestWatchDifferentSignalsNoKill(t *testing.T) {
	t.Parallel()

	p := &fakeProcess{}
	watch(t, p, os.Interrupt, syscall.SIGTERM)
	assert.Zero(t, p.kills)
}

func TestWatchKillErrorIsTolerated(t *testing.T) {
	t.Parallel()

	p := &fakeProcess{err: errors.New("no such process")}
	watch(t, p, syscall.SIGTERM, syscall.SIGTERM, syscall.SIGTERM)
	assert.Equal(t, 2, p.kills)
}

func TestNewAndStop(t *testing.T) {
	t.Parallel()

	ch := New(context.Background(), syscall.SIGHUP)
	Stop(ch)

	_, ok := <-ch
	assert.False(t, ok)
}
