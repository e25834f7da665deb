// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package okfile

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmptyList is returned when a list has no command items.
	ErrEmptyList = errors.New("list contains no commands")
)

// Kind discriminates the item variants.
type Kind int

const (
	// KindEmpty is a blank line.
	KindEmpty Kind = iota
	// KindComment is a full line comment.
	KindComment
	// KindCommand is a numbered command.
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindComment:
		return "comment"
	case KindCommand:
		return "command"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Item is one line of a list file.
type Item struct {
	Kind Kind
	// Number is the 1-based command number, 0 for non-command items.
	Number int
	// Command is the trimmed shell command, empty for non-command items.
	Command string
	// Comment is the trimmed comment including its leading '#'.
	Comment string
}

// NewCommand creates a command item.
func NewCommand(number int, command, comment string) Item {
	return Item{Kind: KindCommand, Number: number, Command: command, Comment: comment}
}

// NewComment creates a comment item.
func NewComment(comment string) Item {
	return Item{Kind: KindComment, Comment: comment}
}

// NewEmpty creates an empty item.
func NewEmpty() Item {
	return Item{Kind: KindEmpty}
}

// IsCommand reports whether the item is a command.
func (i Item) IsCommand() bool {
	return i.Kind == KindCommand
}

// HasComment reports whether the item carries comment text.
func (i Item) HasComment() bool {
	return i.Comment != ""
}

func (i Item) String() string {
	sb := strings.Builder{}

	if i.Number > 0 {
		sb.WriteString(strconv.Itoa(i.Number))
		sb.WriteString(". ")
	}

	if strings.TrimSpace(i.Command) != "" {
		sb.WriteString(i.Command)
		sb.WriteString(" ")
	}

	sb.WriteString(i.Comment)

	return strings.TrimRight(sb.String(), " \t")
}

// List is the ordered sequence of items read from a list file.
type List []Item

// CommandCount returns the number of command items.
func (l List) CommandCount() int {
	n := 0

	for _, item := range l {
		if item.IsCommand() {
			n++
		}
	}

	return n
}

// MaxCommandNumber returns the highest command number.
// It returns ErrEmptyList when the list has no commands.
func (l List) MaxCommandNumber() (int, error) {
	maxNumber := 0
	found := false

	for _, item := range l {
		if item.IsCommand() {
			maxNumber = max(maxNumber, item.Number)
			found = true
		}
	}

	if !found {
		return 0, ErrEmptyList
	}

	return maxNumber, nil
}

// FindByNumber returns the command item numbered n.
func (l List) FindByNumber(n int) (Item, bool) {
	if n < 1 {
		return Item{}, false
	}

	for _, item := range l {
		if item.IsCommand() && item.Number == n {
			return item, true
		}
	}

	return Item{}, false
}
