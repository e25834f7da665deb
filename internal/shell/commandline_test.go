// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		goos string
		text string
		args []string
		want string
	}{
		{"no args", "linux", "make", nil, "make"},
		{"simple args", "linux", "make", []string{"build", "test"}, "make build test"},
		{"space quoted on unix", "linux", "echo", []string{"a b"}, "echo 'a b'"},
		{"quote escaped on unix", "darwin", "echo", []string{"it's"}, `echo it\'s`},
		{"space quoted on windows", GOOSWindows, "echo", []string{"a b", "c"}, `echo "a b" c`},
		{"quote left alone on windows", GOOSWindows, "echo", []string{"it's"}, "echo it's"},
		{"empty text", "linux", "", []string{"ls"}, "ls"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CommandLine(tc.goos, tc.text, tc.args))
		})
	}
}
