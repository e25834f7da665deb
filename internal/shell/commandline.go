// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// GOOSWindows is the runtime.GOOS value for Windows.
const GOOSWindows = "windows"

// CommandLine appends args to text, quoting them for the shell used on goos.
// On Windows only arguments containing a space are quoted.
func CommandLine(goos, text string, args []string) string {
	if len(args) == 0 {
		return text
	}

	var quoted string

	if goos == GOOSWindows {
		parts := make([]string, len(args))
		for i, arg := range args {
			if strings.Contains(arg, " ") {
				arg = `"` + arg + `"`
			}

			parts[i] = arg
		}

		quoted = strings.Join(parts, " ")
	} else {
		quoted = shellquote.Join(args...)
	}

	if text == "" {
		return quoted
	}

	return text + " " + quoted
}
