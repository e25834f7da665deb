// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package envfile

import (
	"fmt"
	"iter"
	"os"
	"regexp"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/ok/internal/filesystem"
)

var varPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// LookupFunc resolves a variable name, like os.LookupEnv.
type LookupFunc func(string) (string, bool)

// Setter is an environment that definitions can be merged into.
type Setter interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnvironment is the real process environment.
type OSEnvironment struct{}

// LookupEnv implements Setter.
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Setenv implements Setter.
func (OSEnvironment) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Env is an ordered mapping of definitions loaded from env files, with values interpolated.
type Env struct {
	keys            []string
	values          map[string]string
	lookup          LookupFunc
	skipParseErrors bool
}

// Option configures an Env.
type Option func(*Env)

// WithLookup sets the lookup used first when interpolating ${NAME} tokens.
// The default is os.LookupEnv.
func WithLookup(fn LookupFunc) Option {
	return func(e *Env) {
		e.lookup = fn
	}
}

// WithSkipParseErrors drops malformed lines instead of failing the load.
func WithSkipParseErrors() Option {
	return func(e *Env) {
		e.skipParseErrors = true
	}
}

// New creates an empty Env.
func New(opts ...Option) *Env {
	e := &Env{
		values: make(map[string]string),
		lookup: os.LookupEnv,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// LoadFrom parses each file in order and adds its definitions.
// All paths are checked before anything is parsed, and every missing path is reported.
func (e *Env) LoadFrom(paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: no paths given", ErrFileNotFound)
	}

	var missing error

	for _, path := range paths {
		if !filesystem.Exists(path) {
			missing = multierror.Append(missing, fmt.Errorf("%w: %q", ErrFileNotFound, path))
		}
	}

	if missing != nil {
		return missing
	}

	parser := NewParser(e.skipParseErrors)

	for _, path := range paths {
		entries, err := parser.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		e.Add(entries...)
	}

	return nil
}

// Add interpolates and stores entries. A repeated key replaces the earlier value
// but keeps its original position.
func (e *Env) Add(entries ...Entry) {
	for _, entry := range entries {
		value := entry.Value
		if !entry.SingleQuoted() {
			value = e.interpolate(value)
		}

		if _, ok := e.values[entry.Key]; !ok {
			e.keys = append(e.keys, entry.Key)
		}

		e.values[entry.Key] = value
	}
}

// interpolate replaces each distinct ${NAME} token once. Substituted text is not re-scanned.
func (e *Env) interpolate(value string) string {
	matches := varPattern.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return value
	}

	resolved := make(map[string]string, len(matches))

	for _, m := range matches {
		name := value[m[2]:m[3]]
		if _, ok := resolved[name]; !ok {
			resolved[name] = e.resolve(name)
		}
	}

	return varPattern.ReplaceAllStringFunc(value, func(token string) string {
		return resolved[token[2:len(token)-1]]
	})
}

func (e *Env) resolve(name string) string {
	if e.lookup != nil {
		if v, ok := e.lookup(name); ok {
			return v
		}
	}

	return e.values[name]
}

// Get returns the value for key.
func (e *Env) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Keys returns the keys in load order.
func (e *Env) Keys() []string {
	return slices.Clone(e.keys)
}

// Len returns the number of definitions.
func (e *Env) Len() int {
	return len(e.keys)
}

// All iterates over the definitions in load order.
func (e *Env) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range e.keys {
			if !yield(k, e.values[k]) {
				return
			}
		}
	}
}

// Merge writes definitions that are not already present in dst.
func (e *Env) Merge(dst Setter) error {
	for k, v := range e.All() {
		if _, ok := dst.LookupEnv(k); ok {
			continue
		}

		if err := dst.Setenv(k, v); err != nil {
			return err
		}
	}

	return nil
}

// MergeWithOverride writes every definition to dst, replacing existing values.
func (e *Env) MergeWithOverride(dst Setter) error {
	for k, v := range e.All() {
		if err := dst.Setenv(k, v); err != nil {
			return err
		}
	}

	return nil
}
