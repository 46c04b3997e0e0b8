// Package config loads bares.toml.
//
//	[eval]
//	domain = "int16"          # int8 | int16 | int32
//
//	[input]
//	fold_width = false        # fold full-width digits/operators to ASCII
//	max_line_bytes = 1048576  # longer lines fail alone with LINE_TOO_LONG
//
//	[output]
//	format = "text"           # text | pretty | json | msgpack
//	color = "auto"            # auto | on | off
//	show_source = false
//
//	[trace]
//	output = ""               # path, or "-" for stderr
//	level = "off"             # off | driver | line | debug
//	format = "auto"           # auto | text | ndjson
//	mode = "stream"           # stream | ring
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"bares/internal/diagfmt"
	"bares/internal/eval"
	"bares/internal/source"
	"bares/internal/trace"
)

// FileName is the name looked up by Find.
const FileName = "bares.toml"

type Config struct {
	Eval   EvalConfig   `toml:"eval"`
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Trace  TraceConfig  `toml:"trace"`

	// Path is the file the values came from; empty for defaults.
	Path string `toml:"-"`
}

type EvalConfig struct {
	Domain string `toml:"domain"`
}

type InputConfig struct {
	FoldWidth    bool `toml:"fold_width"`
	MaxLineBytes int  `toml:"max_line_bytes"`
}

type OutputConfig struct {
	Format     string `toml:"format"`
	Color      string `toml:"color"`
	ShowSource bool   `toml:"show_source"`
}

type TraceConfig struct {
	Output string `toml:"output"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Mode   string `toml:"mode"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Eval:   EvalConfig{Domain: eval.DefaultDomain.String()},
		Input:  InputConfig{MaxLineBytes: source.DefaultMaxLineBytes},
		Output: OutputConfig{Format: diagfmt.FormatText.String(), Color: "auto"},
		Trace:  TraceConfig{Level: trace.LevelOff.String(), Format: "auto", Mode: "stream"},
	}
}

// Find walks up from startDir looking for bares.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads explicit if set, otherwise the nearest bares.toml above
// startDir, otherwise the defaults.
func Discover(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every enumerated value.
func (c Config) Validate() error {
	if _, err := eval.ParseDomain(c.Eval.Domain); err != nil {
		return fmt.Errorf("[eval].domain: %w", err)
	}
	if c.Input.MaxLineBytes < 0 {
		return fmt.Errorf("[input].max_line_bytes must not be negative, got %d", c.Input.MaxLineBytes)
	}
	if _, err := diagfmt.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("[output].format: %w", err)
	}
	if _, err := ParseColorMode(c.Output.Color); err != nil {
		return fmt.Errorf("[output].color: %w", err)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	return nil
}

// Domain returns the parsed result domain. Call after Validate.
func (c Config) Domain() eval.Domain {
	d, _ := eval.ParseDomain(c.Eval.Domain)
	return d
}

// ColorMode controls colored output.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// ParseColorMode accepts auto, on and off.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "on", "always", "true":
		return ColorOn, nil
	case "off", "never", "false":
		return ColorOff, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (expected: auto|on|off)", s)
}

// Enabled resolves the mode against whether the output is a terminal.
func (m ColorMode) Enabled(isTerminal bool) bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	return isTerminal
}
