// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config resolves the settings of ok.
//
// # Configuration Precedence
//
// Each setting is resolved on read, highest priority first:
//
//  1. An explicit override, set from command line flags.
//  2. The environment variable, when it parses.
//  3. The compiled in default.
//
// The environment is a snapshot of the process environment taken by Load, with the
// env-definition file (.ok.env in the home directory, or in the "ok" directory of the
// user configuration directory) merged over it. Later file values win over the
// process environment.
package config
