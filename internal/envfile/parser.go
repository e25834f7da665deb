// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/ok/internal/filesystem"
)

const (
	exportPrefix = "export "
	separators   = "=:"
	quotes       = `"'`
	commentChar  = '#'
)

// Entry is a single definition read from an env file.
type Entry struct {
	Key   string
	Value string
	// Quote is the opening quote of the raw value, or 0 when unquoted.
	Quote byte
	Line  int
}

// SingleQuoted reports whether the raw value was wrapped in single quotes.
func (e Entry) SingleQuoted() bool {
	return e.Quote == '\''
}

// Parser reads env file definitions.
// With SkipParseErrors set, malformed lines are dropped instead of failing the parse.
type Parser struct {
	SkipParseErrors bool
}

// NewParser creates a new Parser.
func NewParser(skipParseErrors bool) *Parser {
	return &Parser{SkipParseErrors: skipParseErrors}
}

// ParseFile parses the file at path.
func (p *Parser) ParseFile(path string) ([]Entry, error) {
	if path == "" || !filesystem.Exists(path) {
		return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
	}

	f, err := filesystem.Factory().Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	defer f.Close() //nolint:errcheck

	return p.Parse(f)
}

// Parse parses definitions from r.
func (p *Parser) Parse(r io.Reader) ([]Entry, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	return p.ParseLines(lines)
}

// ParseLines parses definitions from already split lines.
func (p *Parser) ParseLines(lines []string) ([]Entry, error) {
	var entries []Entry

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == commentChar {
			continue
		}

		entry, err := parseLine(i+1, trimmed)
		if err != nil {
			if p.SkipParseErrors {
				continue
			}

			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func parseLine(lineNo int, line string) (Entry, error) {
	if strings.HasPrefix(line, exportPrefix) {
		line = strings.TrimLeft(line[len(exportPrefix):], " \t")
	}

	sep := strings.IndexAny(line, separators)
	if sep < 0 {
		return Entry{}, NewParseError(ErrMissingSeparator, lineNo, len(line)+1, line)
	}

	key := strings.TrimSpace(line[:sep])
	if key == "" {
		return Entry{}, NewParseError(ErrEmptyKey, lineNo, 1, line)
	}

	entry := Entry{Key: key, Line: lineNo}
	value := strings.TrimSpace(line[sep+1:])

	switch {
	case value == "":
	case strings.IndexByte(quotes, value[0]) >= 0:
		end := strings.IndexAny(value[1:], quotes)
		if end < 0 {
			col := strings.IndexByte(line[sep+1:], value[0]) + sep + 2
			return Entry{}, NewParseError(ErrUnterminatedQuote, lineNo, col, line)
		}

		entry.Quote = value[0]
		value = value[1 : end+1]

		if entry.Quote == '"' {
			value = unescape(value)
		}
	default:
		if i := strings.IndexByte(value, commentChar); i >= 0 {
			value = strings.TrimSpace(value[:i])
		}
	}

	entry.Value = value

	return entry, nil
}

// unescape decodes backslash escapes. Contents that do not decode are returned unchanged.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}

	return u
}
