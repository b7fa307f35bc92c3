package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Config struct {
	// Catalog is the path of a YAML catalog used instead of the built-in one.
	Catalog string `json:"catalog,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme forces the palette variant ("light", "dark", "auto").
	Theme string `json:"theme,omitempty"`
	// Glyphs selects the glyph set ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.folio).
	if v := strings.TrimSpace(os.Getenv("FOLIO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".folio"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing file yields an empty config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Keep the previous file around so an accidental overwrite is recoverable.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

var setters = map[string]func(cfg *Config, v string) error{
	"catalog": func(cfg *Config, v string) error {
		if v != "" {
			abs, err := filepath.Abs(v)
			if err != nil {
				return err
			}
			v = abs
		}
		cfg.Catalog = v
		return nil
	},
	"tui.theme": func(cfg *Config, v string) error {
		switch v {
		case "", "light", "dark", "auto":
		default:
			return fmt.Errorf("invalid theme %q (want light, dark or auto)", v)
		}
		cfg.tui().Theme = v
		return nil
	},
	"tui.glyphs": func(cfg *Config, v string) error {
		switch v {
		case "", "unicode", "ascii":
		default:
			return fmt.Errorf("invalid glyphs %q (want unicode or ascii)", v)
		}
		cfg.tui().Glyphs = v
		return nil
	},
}

// Keys lists the settable keys.
func Keys() []string {
	out := make([]string, 0, len(setters))
	for k := range setters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Set assigns one dotted key. An empty value clears it.
func (cfg *Config) Set(key, value string) error {
	fn, ok := setters[strings.TrimSpace(key)]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return fn(cfg, strings.TrimSpace(value))
}

func (cfg *Config) tui() *TUIConfig {
	if cfg.TUI == nil {
		cfg.TUI = &TUIConfig{}
	}
	return cfg.TUI
}

// Theme and Glyphs are nil-safe accessors for the TUI preferences.
func (cfg *Config) Theme() string {
	if cfg == nil || cfg.TUI == nil {
		return ""
	}
	return cfg.TUI.Theme
}

func (cfg *Config) Glyphs() string {
	if cfg == nil || cfg.TUI == nil {
		return ""
	}
	return cfg.TUI.Glyphs
}
