// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package envfile parses KEY=VALUE definition files and merges them into an environment.
//
// Supported syntax, one definition per line:
//
//	# full line comment
//	export NAME=value          # trailing comment
//	NAME: value
//	NAME="escaped\tvalue"
//	NAME='literal ${NOT_EXPANDED}'
//	NAME=${OTHER}/suffix
//
// Values are interpolated by Env, not by the Parser: a ${NAME} token resolves
// against the caller supplied lookup first, then against definitions loaded so far,
// and otherwise to the empty string.
package envfile
