// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the ok command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/ok/cmd"
	"github.com/matt-FFFFFF/ok/internal/ctxlog"
)

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	os.Exit(cmd.Run(ctx, os.Args, cmd.Options{}))
}
