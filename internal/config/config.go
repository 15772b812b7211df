package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"todocard/internal/todo"
)

const (
	AppDirName            = "todocard"
	DefaultConfigFileName = "config.toml"
	DefaultLogLevel       = "info"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Menu       string `toml:"menu"`
	Edit       string `toml:"edit"`
	Delete     string `toml:"delete"`
	ClearAll   string `toml:"clear_all"`
	NextFilter string `toml:"next_filter"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
}

type Config struct {
	DefaultFilter string `toml:"default_filter"`
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath prefers $XDG_CONFIG_HOME and falls back to the OS
// config dir, then to the working directory.
func ResolveConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDirName, DefaultConfigFileName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppDirName, DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	normalize(&cfg)
	if _, err := cfg.Filter(); err != nil {
		return cfg, fmt.Errorf("%s: default_filter: %w", path, err)
	}
	return cfg, nil
}

// Filter parses DefaultFilter.
func (c Config) Filter() (todo.Filter, error) {
	return todo.ParseFilter(c.DefaultFilter)
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// normalize fills keys left blank in a hand-edited file so that no binding
// silently disappears.
func normalize(cfg *Config) {
	def := Default()
	if cfg.DefaultFilter == "" {
		cfg.DefaultFilter = def.DefaultFilter
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	k, d := &cfg.Keys, def.Keys
	fill := func(v *string, fallback string) {
		if *v == "" {
			*v = fallback
		}
	}
	fill(&k.Quit, d.Quit)
	fill(&k.Add, d.Add)
	fill(&k.Up, d.Up)
	fill(&k.Down, d.Down)
	fill(&k.Toggle, d.Toggle)
	fill(&k.Menu, d.Menu)
	fill(&k.Edit, d.Edit)
	fill(&k.Delete, d.Delete)
	fill(&k.ClearAll, d.ClearAll)
	fill(&k.NextFilter, d.NextFilter)
	fill(&k.Confirm, d.Confirm)
	fill(&k.Cancel, d.Cancel)
}

func Default() Config {
	return Config{
		DefaultFilter: "all",
		LogLevel:      DefaultLogLevel,
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Menu:       ".",
			Edit:       "e",
			Delete:     "d",
			ClearAll:   "C",
			NextFilter: "tab",
			Confirm:    "enter",
			Cancel:     "esc",
		},
	}
}
