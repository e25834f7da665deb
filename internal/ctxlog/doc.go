// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on log/slog.
//
// The default logger writes human-readable records to standard error so that
// list output on standard output stays clean. The level is read from the
// environment variable named after the executable, e.g. OK_LOG_LEVEL for "ok".
package ctxlog
