// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/ok/internal/config"
	"github.com/matt-FFFFFF/ok/internal/okfile"
	"github.com/mattn/go-runewidth"
)

// Widths holds the command column widths computed by Measure.
type Widths struct {
	// Groups maps a group index to the widest command in that group.
	// Groups without commands have no entry.
	Groups map[int]int
	// Max is the widest command in the list, 0 if there are none.
	Max int
}

// grouper tracks the current group while walking a list.
type grouper struct {
	alignment config.Alignment
	index     int
}

// closes reports whether item ends the current group.
// Blank lines only separate groups under AlignByGroup.
func (g *grouper) closes(item okfile.Item) bool {
	switch item.Kind {
	case okfile.KindComment:
		return true
	case okfile.KindEmpty:
		return g.alignment == config.AlignByGroup
	default:
		return false
	}
}

// Measure computes the column widths for items.
func Measure(items okfile.List, alignment config.Alignment) Widths {
	w := Widths{Groups: make(map[int]int)}
	g := grouper{alignment: alignment}
	current := 0

	record := func() {
		if current > 0 {
			w.Groups[g.index] = current
			w.Max = max(w.Max, current)
		}
	}

	for _, item := range items {
		if item.IsCommand() {
			current = max(current, commandWidth(item.Command))
			continue
		}

		if g.closes(item) {
			record()
			g.index++
			current = 0
		}
	}

	record()

	return w
}

// commandWidth is the display width of a command. runewidth gives a tab no
// width, a tab is counted as one column here.
func commandWidth(command string) int {
	return runewidth.StringWidth(command) + strings.Count(command, "\t")
}

func padRight(command string, width int) string {
	if n := width - commandWidth(command); n > 0 {
		return command + strings.Repeat(" ", n)
	}

	return command
}

// Width returns the padded width of a command in group under alignment.
func (w Widths) Width(alignment config.Alignment, group int) int {
	switch alignment {
	case config.AlignNone:
		return 0
	case config.AlignAll:
		return w.Max
	default:
		return w.Groups[group]
	}
}

// List writes items to sw, one line per item.
func List(sw *StyledWriter, items okfile.List, alignment config.Alignment) error {
	widths := Measure(items, alignment)
	g := grouper{alignment: alignment}

	for _, item := range items {
		if !item.IsCommand() {
			if g.closes(item) {
				g.index++
			}

			sw.Print(item.Comment, RoleHeading)
			sw.EndLine()

			continue
		}

		sw.Print(strconv.Itoa(item.Number)+". ", RoleNumber)

		command := item.Command
		if width := widths.Width(alignment, g.index); width > 0 {
			command = padRight(command, width)
		}

		sw.Print(command, RoleCommand)

		if strings.TrimSpace(item.Comment) != "" {
			sw.Print(" ", RolePlain)
			sw.Print(item.Comment, RoleComment)
		}

		sw.EndLine()
	}

	return sw.Err()
}

// Prompt echoes the command about to run.
func Prompt(sw *StyledWriter, prompt string, item okfile.Item) error {
	sw.Print(prompt+item.Command, RolePrompt)

	if item.HasComment() {
		sw.Print(" ", RolePlain)
		sw.Print(item.Comment, RoleComment)
	}

	sw.EndLine()

	return sw.Err()
}
