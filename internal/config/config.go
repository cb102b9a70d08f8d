// Package config loads gridtext settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/gridtext/editor"
)

// Config holds the user settings read from config.toml.
type Config struct {
	// Delimiter is a single character or one of "comma", "tab",
	// "semicolon", "pipe".
	Delimiter string `toml:"delimiter"`
	// RowBreak is the literal row break, usually "\n" or "\r\n".
	RowBreak string `toml:"row_break"`

	ShowLineNums bool `toml:"show_line_numbers"`
	RawLayout    bool `toml:"raw_layout"`
	HistoryLimit int  `toml:"history_limit"`
	ReadOnly     bool `toml:"read_only"`
}

var namedDelimiters = map[string]rune{
	"comma":     ',',
	"tab":       '\t',
	"semicolon": ';',
	"pipe":      '|',
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Delimiter:    ",",
		RowBreak:     "\n",
		ShowLineNums: true,
		HistoryLimit: 1000,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/gridtext/config.toml or its platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "gridtext", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if _, err := cfg.DelimiterRune(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ParseDelimiter accepts a single character or a delimiter name.
func ParseDelimiter(s string) (rune, error) {
	if r, ok := namedDelimiters[strings.ToLower(s)]; ok {
		return r, nil
	}
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '\n' || r == '\r' {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// DelimiterRune returns the configured delimiter; empty means ','.
func (c *Config) DelimiterRune() (rune, error) {
	if c.Delimiter == "" {
		return ',', nil
	}
	return ParseDelimiter(c.Delimiter)
}

// Editor converts the settings into an editor.Config for text.
func (c *Config) Editor(text string) (editor.Config, error) {
	delim, err := c.DelimiterRune()
	if err != nil {
		return editor.Config{}, err
	}
	return editor.Config{
		Text:         text,
		Delimiter:    delim,
		RowBreak:     c.RowBreak,
		ShowLineNums: c.ShowLineNums,
		RawLayout:    c.RawLayout,
		Style:        editor.DefaultStyle(),
		HistoryLimit: c.HistoryLimit,
		ReadOnly:     c.ReadOnly,
	}, nil
}
