// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"strconv"
	"strings"
)

// consoleColors maps the sixteen console color names, in ordinal order, to ANSI codes.
// The dark variants are the normal intensity colors, the plain names are the bright ones.
var consoleColors = []struct {
	name string
	code Code
}{
	{"black", FgBlack},
	{"darkblue", FgBlue},
	{"darkgreen", FgGreen},
	{"darkcyan", FgCyan},
	{"darkred", FgRed},
	{"darkmagenta", FgMagenta},
	{"darkyellow", FgYellow},
	{"gray", FgWhite},
	{"darkgray", FgHiBlack},
	{"blue", FgHiBlue},
	{"green", FgHiGreen},
	{"cyan", FgHiCyan},
	{"red", FgHiRed},
	{"magenta", FgHiMagenta},
	{"yellow", FgHiYellow},
	{"white", FgHiWhite},
}

// Parse converts a console color name (case-insensitive) or its ordinal (0-15) to a Code.
// "default" selects the terminal foreground. The second return value is false when
// the value is blank or not recognised.
func Parse(s string) (Code, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= len(consoleColors) {
			return 0, false
		}

		return consoleColors[n].code, true
	}

	name := strings.ToLower(s)
	if name == "default" {
		return FgDefault, true
	}

	for _, c := range consoleColors {
		if c.name == name {
			return c.code, true
		}
	}

	return 0, false
}

// Name returns the console color name for a Code produced by Parse.
func Name(c Code) string {
	if c == FgDefault {
		return "default"
	}

	for _, cc := range consoleColors {
		if cc.code == c {
			return cc.name
		}
	}

	return strconv.Itoa(int(c))
}
