// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/ok/internal/color"
)

// Environment variables read by Config.
const (
	EnvCommentAlign = "_OK_COMMENT_ALIGN"
	EnvPrompt       = "_OK_PROMPT"
	EnvVerbose      = "_OK_VERBOSE"
	EnvColorCommand = "_OK_C_COMMAND"
	EnvColorComment = "_OK_C_COMMENT"
	EnvColorHeading = "_OK_C_HEADING"
	EnvColorNumber  = "_OK_C_NUMBER"
	EnvColorPrompt  = "_OK_C_PROMPT"
)

// Defaults used when neither an override nor a valid environment variable is present.
const (
	DefaultAlignment = AlignByGroup
	DefaultPrompt    = "> "
	DefaultVerbosity = Normal
)

// Source names the layer a setting value was resolved from.
type Source string

const (
	// SourceOverride is an explicit value, usually from a flag.
	SourceOverride Source = "override"
	// SourceEnv is the environment, including the env-definition file.
	SourceEnv Source = "env"
	// SourceDefault is the compiled in default.
	SourceDefault Source = "default"
)

// Colors holds the resolved color for each kind of output.
type Colors struct {
	Command color.Code
	Comment color.Code
	Heading color.Code
	Number  color.Code
	Prompt  color.Code
}

type colorSetting struct {
	name   string
	envVar string
	def    color.Code
	field  func(*Colors) *color.Code
}

var colorSettings = []colorSetting{
	{"command_color", EnvColorCommand, color.FgDefault, func(c *Colors) *color.Code { return &c.Command }},
	{"comment_color", EnvColorComment, color.FgHiBlue, func(c *Colors) *color.Code { return &c.Comment }},
	{"heading_color", EnvColorHeading, color.FgHiRed, func(c *Colors) *color.Code { return &c.Heading }},
	{"number_color", EnvColorNumber, color.FgHiCyan, func(c *Colors) *color.Code { return &c.Number }},
	{"prompt_color", EnvColorPrompt, color.FgHiCyan, func(c *Colors) *color.Code { return &c.Prompt }},
}

// Setting describes one resolved setting.
type Setting struct {
	Name   string `yaml:"name"`
	EnvVar string `yaml:"env_var"`
	Value  string `yaml:"value"`
	Source Source `yaml:"source"`
}

// Config resolves settings from overrides and an environment snapshot.
// It is not safe for concurrent mutation.
type Config struct {
	env       map[string]string
	envFile   string
	alignment *Alignment
	prompt    *string
	verbosity *Verbosity
	colors    map[string]color.Code
}

// New creates a Config over a snapshot of environ, given as KEY=VALUE strings.
func New(environ []string) *Config {
	c := &Config{env: make(map[string]string, len(environ))}

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		c.env[k] = v
	}

	return c
}

// LookupEnv looks up key in the environment snapshot.
func (c *Config) LookupEnv(key string) (string, bool) {
	v, ok := c.env[key]
	return v, ok
}

// Getenv returns the value of key in the environment snapshot, or "".
func (c *Config) Getenv(key string) string {
	return c.env[key]
}

// Setenv sets key in the environment snapshot. The process environment is not changed.
func (c *Config) Setenv(key, value string) error {
	c.env[key] = value
	return nil
}

// Environ returns the environment snapshot as sorted KEY=VALUE strings.
func (c *Config) Environ() []string {
	keys := slices.Sorted(maps.Keys(c.env))
	out := make([]string, 0, len(keys))

	for _, k := range keys {
		out = append(out, k+"="+c.env[k])
	}

	return out
}

// EnvFile returns the env-definition file merged by Load, or "" if none was found.
func (c *Config) EnvFile() string {
	return c.envFile
}

// SetAlignment overrides the comment alignment.
func (c *Config) SetAlignment(a Alignment) {
	c.alignment = &a
}

// Alignment returns the comment alignment.
func (c *Config) Alignment() Alignment {
	a, _ := c.resolveAlignment()
	return a
}

func (c *Config) resolveAlignment() (Alignment, Source) {
	if c.alignment != nil {
		return *c.alignment, SourceOverride
	}

	if a, ok := parseEnum(c.Getenv(EnvCommentAlign), alignmentNames, DefaultAlignment); ok {
		return a, SourceEnv
	}

	return DefaultAlignment, SourceDefault
}

// SetPrompt overrides the prompt string.
func (c *Config) SetPrompt(p string) {
	c.prompt = &p
}

// Prompt returns the string printed before an executed command.
func (c *Config) Prompt() string {
	p, _ := c.resolvePrompt()
	return p
}

func (c *Config) resolvePrompt() (string, Source) {
	if c.prompt != nil {
		return *c.prompt, SourceOverride
	}

	if p := c.Getenv(EnvPrompt); strings.TrimSpace(p) != "" {
		return p, SourceEnv
	}

	return DefaultPrompt, SourceDefault
}

// SetVerbosity overrides the verbosity.
func (c *Config) SetVerbosity(v Verbosity) {
	c.verbosity = &v
}

// Verbosity returns the verbosity.
func (c *Config) Verbosity() Verbosity {
	v, _ := c.resolveVerbosity()
	return v
}

func (c *Config) resolveVerbosity() (Verbosity, Source) {
	if c.verbosity != nil {
		return *c.verbosity, SourceOverride
	}

	if v, ok := parseEnum(c.Getenv(EnvVerbose), verbosityNames, DefaultVerbosity); ok {
		return v, SourceEnv
	}

	return DefaultVerbosity, SourceDefault
}

// Colors returns the resolved output colors.
func (c *Config) Colors() Colors {
	var colors Colors

	for _, s := range colorSettings {
		code, _ := c.resolveColor(s)
		*s.field(&colors) = code
	}

	return colors
}

// SetColor overrides the color read from envVar, one of the EnvColor constants.
// It reports false for any other variable.
func (c *Config) SetColor(envVar string, code color.Code) bool {
	for _, s := range colorSettings {
		if s.envVar != envVar {
			continue
		}

		if c.colors == nil {
			c.colors = make(map[string]color.Code, len(colorSettings))
		}

		c.colors[envVar] = code

		return true
	}

	return false
}

func (c *Config) resolveColor(s colorSetting) (color.Code, Source) {
	if code, ok := c.colors[s.envVar]; ok {
		return code, SourceOverride
	}

	if code, ok := color.Parse(c.Getenv(s.envVar)); ok {
		return code, SourceEnv
	}

	return s.def, SourceDefault
}

// Settings lists every setting with its effective value and source.
func (c *Config) Settings() []Setting {
	a, aSrc := c.resolveAlignment()
	p, pSrc := c.resolvePrompt()
	v, vSrc := c.resolveVerbosity()

	settings := []Setting{
		{Name: "comment_align", EnvVar: EnvCommentAlign, Value: a.String(), Source: aSrc},
		{Name: "prompt", EnvVar: EnvPrompt, Value: p, Source: pSrc},
		{Name: "verbose", EnvVar: EnvVerbose, Value: v.String(), Source: vSrc},
	}

	for _, s := range colorSettings {
		code, src := c.resolveColor(s)
		settings = append(settings, Setting{Name: s.name, EnvVar: s.envVar, Value: color.Name(code), Source: src})
	}

	return settings
}
