// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"github.com/matt-FFFFFF/ok/internal/color"
	"github.com/matt-FFFFFF/ok/internal/config"
)

// Role is the kind of text being written, used to pick its color.
type Role int

const (
	// RolePlain is written without color.
	RolePlain Role = iota
	RoleNumber
	RoleCommand
	RoleComment
	RoleHeading
	RolePrompt
)

// Palette maps roles to colors.
type Palette map[Role]color.Code

// NewPalette builds a Palette from resolved colors.
func NewPalette(c config.Colors) Palette {
	return Palette{
		RoleNumber:  c.Number,
		RoleCommand: c.Command,
		RoleComment: c.Comment,
		RoleHeading: c.Heading,
		RolePrompt:  c.Prompt,
	}
}

// StyledWriter writes colored segments of text.
// Each colored segment is followed by a reset so no color leaks across lines.
// The first write error is kept and later writes are skipped.
type StyledWriter struct {
	w       io.Writer
	palette Palette
	colour  bool
	err     error
}

// NewStyledWriter creates a StyledWriter. Color is only emitted when colour is true.
func NewStyledWriter(w io.Writer, palette Palette, colour bool) *StyledWriter {
	return &StyledWriter{
		w:       w,
		palette: palette,
		colour:  colour,
	}
}

// Print writes text in the color assigned to role.
func (s *StyledWriter) Print(text string, role Role) {
	if text == "" || s.err != nil {
		return
	}

	if code, ok := s.palette[role]; ok && s.colour {
		text = color.Wrap(text, code)
	}

	_, s.err = io.WriteString(s.w, text)
}

// EndLine terminates the current line.
func (s *StyledWriter) EndLine() {
	if s.err != nil {
		return
	}

	_, s.err = io.WriteString(s.w, "\n")
}

// Err returns the first error encountered while writing.
func (s *StyledWriter) Err() error {
	return s.err
}
