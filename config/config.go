// Package config loads text edit settings from TOML files and applies them
// to a textedit.Model.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/texted/textedit"
)

// Settings mirrors the configurable parts of textedit.Config.
type Settings struct {
	Multiline     bool   `toml:"multiline"`
	ReadOnly      bool   `toml:"read_only"`
	StyleTags     bool   `toml:"style_tags"`
	NoAutoWrap    bool   `toml:"no_auto_wrap"`
	PasswordChar  string `toml:"password_char"`
	AllowInput    string `toml:"allow_input"`
	Placeholder   string `toml:"placeholder"`
	BlinkInterval int    `toml:"blink_interval_ms"`
	BlockSize     int    `toml:"block_size"`
	MaxPending    int    `toml:"max_pending"`
	AutoWidth     int    `toml:"auto_width"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
}

// ParseError reports a malformed settings file.
type ParseError struct {
	Path         string
	Line, Column int
	Err          error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config: %s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the settings at path. A missing file yields zero Settings.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse decodes settings from TOML. Unknown keys are errors.
func Parse(data []byte) (Settings, error) { return parse("<input>", data) }

func parse(source string, data []byte) (Settings, error) {
	var s Settings
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		pe := &ParseError{Path: source, Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return Settings{}, pe
	}
	if err := s.validate(); err != nil {
		return Settings{}, &ParseError{Path: source, Err: err}
	}
	return s, nil
}

func (s Settings) validate() error {
	if utf8.RuneCountInString(s.PasswordChar) > 1 {
		return fmt.Errorf("password_char %q: want a single character", s.PasswordChar)
	}
	for name, v := range map[string]int{
		"blink_interval_ms": s.BlinkInterval,
		"block_size":        s.BlockSize,
		"max_pending":       s.MaxPending,
		"auto_width":        s.AutoWidth,
		"width":             s.Width,
		"height":            s.Height,
	} {
		if v < 0 {
			return fmt.Errorf("%s is negative: %d", name, v)
		}
	}
	return nil
}

func (s Settings) passwordChar() rune {
	r, _ := utf8.DecodeRuneInString(s.PasswordChar)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

func (s Settings) blinkInterval() time.Duration {
	return time.Duration(s.BlinkInterval) * time.Millisecond
}

// EditConfig returns base with the settings laid over it.
func (s Settings) EditConfig(base textedit.Config) textedit.Config {
	base.Multiline = s.Multiline
	base.ReadOnly = s.ReadOnly
	base.UsingStyleTags = s.StyleTags
	base.NoAutoWrap = s.NoAutoWrap
	base.PasswordChar = s.passwordChar()
	base.AllowInput = s.AllowInput
	base.Placeholder = s.Placeholder
	base.BlinkInterval = s.blinkInterval()
	base.BlockSize = s.BlockSize
	base.MaxPending = s.MaxPending
	base.AutoWidth = s.AutoWidth
	base.Width = s.Width
	base.Height = s.Height
	return base
}

// Apply updates a running model with the settings that can change after
// construction. Sizes and queue limits need a new model.
func (s Settings) Apply(m *textedit.Model) {
	m.SetMultiline(s.Multiline)
	m.SetReadOnly(s.ReadOnly)
	m.SetUsingStyleTags(s.StyleTags)
	m.SetPasswordChar(s.passwordChar())
	m.SetAllowInput(s.AllowInput)
	m.SetPlaceholder(s.Placeholder)
	m.SetBlinkInterval(s.blinkInterval())
}
