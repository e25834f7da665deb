// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell runs a command line through the platform shell and captures its output.
//
// Standard input is inherited from the calling process. Standard output and standard error
// are read to completion, each capped at 8 MiB, before Run returns. Termination signals
// are held by signalbroker for the lifetime of the child.
package shell
