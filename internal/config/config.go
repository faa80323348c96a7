package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/slidebar/internal/bar"
)

const (
	ActionAdd     = "add"
	ActionRemove  = "remove"
	ActionRefresh = "refresh"
	ActionPreview = "preview"
	ActionShow    = "show"
)

var actions = []string{ActionAdd, ActionRemove, ActionRefresh, ActionPreview, ActionShow}

// Config is everything cmd/slidebar runs with. Values come from Default,
// then the optional YAML file, then flags given on the command line.
type Config struct {
	ConfigPath    string   `yaml:"-"`
	InputPath     string   `yaml:"input"`
	OutputDir     string   `yaml:"output"`
	Action        string   `yaml:"action"`
	Theme         string   `yaml:"theme"`
	Size          int      `yaml:"size"`
	ActiveColor   bar.RGB  `yaml:"active_color"`
	InactiveColor bar.RGB  `yaml:"inactive_color"`
	SkipFirst     bool     `yaml:"skip_first"`
	Position      []string `yaml:"position"`
	DPI           int      `yaml:"dpi"`
	Workers       int      `yaml:"workers"`
	Hidden        []int    `yaml:"hidden"`
	Columns       int      `yaml:"columns"`
}

func Default() *Config {
	return &Config{
		OutputDir:     "output",
		Action:        ActionShow,
		Size:          bar.DefaultSize(),
		ActiveColor:   bar.DefaultActiveColor,
		InactiveColor: bar.DefaultInactiveColor,
		DPI:           150,
		Workers:       runtime.NumCPU(),
		Columns:       40,
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the keys present in a YAML file onto c
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.ConfigPath = path
	return nil
}

// ApplyBar takes the style of a restored bar, so a later file or flag only
// changes what it names.
func (c *Config) ApplyBar(ab bar.ActiveBar) {
	c.Theme = ab.Theme.Key()
	c.Size = ab.Size
	c.ActiveColor = ab.Colors.Active
	c.InactiveColor = ab.Colors.Inactive
	c.SkipFirst = ab.SkipFirst

	t := ab.Position.Toggles()
	c.Position = nil
	for _, e := range []struct {
		name string
		on   bool
	}{{"top", t.Top}, {"right", t.Right}, {"bottom", t.Bottom}, {"left", t.Left}} {
		if e.on {
			c.Position = append(c.Position, e.name)
		}
	}
}

// RegisterFlags binds the command line flags to c. Current values become the defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML файл с настройками")
	fs.StringVar(&c.InputPath, "input", c.InputPath, "Путь к PDF или папке с изображениями (по умолчанию: самый свежий файл в input/pdf/)")
	fs.StringVar(&c.OutputDir, "output", c.OutputDir, "Папка для слайдов с прогресс-баром")
	fs.StringVar(&c.Action, "action", c.Action, "Действие: "+strings.Join(actions, ", "))
	fs.StringVar(&c.Theme, "theme", c.Theme, "Тема бара (по умолчанию: текущая или первая зарегистрированная)")
	fs.IntVar(&c.Size, "size", c.Size, "Толщина бара")
	fs.TextVar(&c.ActiveColor, "active", c.ActiveColor, "Цвет пройденной части, #rrggbb")
	fs.TextVar(&c.InactiveColor, "inactive", c.InactiveColor, "Цвет оставшейся части, #rrggbb")
	fs.BoolVar(&c.SkipFirst, "skip-first", c.SkipFirst, "Не учитывать первый слайд (титульный)")
	fs.Func("position", "Положение: top, bottom, left, right через запятую", func(s string) error {
		c.Position = splitList(s)
		return nil
	})
	fs.IntVar(&c.DPI, "dpi", c.DPI, "DPI")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Потоки")
	fs.Func("hidden", "Скрытые страницы через запятую, с 1", func(s string) error {
		pages, err := parsePages(s)
		if err != nil {
			return err
		}
		c.Hidden = pages
		return nil
	})
	fs.IntVar(&c.Columns, "columns", c.Columns, "Ширина превью в терминале")
}

// ApplyFlags copies from src only the flags that were set on the command line
func (c *Config) ApplyFlags(fs *flag.FlagSet, src *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "config":
			c.ConfigPath = src.ConfigPath
		case "input":
			c.InputPath = src.InputPath
		case "output":
			c.OutputDir = src.OutputDir
		case "action":
			c.Action = src.Action
		case "theme":
			c.Theme = src.Theme
		case "size":
			c.Size = src.Size
		case "active":
			c.ActiveColor = src.ActiveColor
		case "inactive":
			c.InactiveColor = src.InactiveColor
		case "skip-first":
			c.SkipFirst = src.SkipFirst
		case "position":
			c.Position = src.Position
		case "dpi":
			c.DPI = src.DPI
		case "workers":
			c.Workers = src.Workers
		case "hidden":
			c.Hidden = src.Hidden
		case "columns":
			c.Columns = src.Columns
		}
	})
}

// Validate checks c against the theme catalog
func (c *Config) Validate(catalog *bar.Catalog) error {
	var errs []error

	known := false
	for _, a := range actions {
		if c.Action == a {
			known = true
		}
	}
	if !known {
		errs = append(errs, fmt.Errorf("unknown action %q", c.Action))
	}
	if c.Theme != "" {
		if _, err := catalog.Lookup(c.Theme); err != nil {
			errs = append(errs, err)
		}
	}
	if bar.SizeIndex(c.Size) < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", bar.ErrInvalidSize, c.Size))
	}
	if t, err := c.Toggles(); err != nil {
		errs = append(errs, err)
	} else if _, err := bar.ResolvePosition(bar.AllEdges, t); err != nil {
		errs = append(errs, err)
	}
	if c.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive, got %d", c.DPI))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	for _, p := range c.Hidden {
		if p < 1 {
			errs = append(errs, fmt.Errorf("hidden page %d: pages start at 1", p))
		}
	}
	if c.Columns <= 0 {
		errs = append(errs, fmt.Errorf("columns must be positive, got %d", c.Columns))
	}
	return errors.Join(errs...)
}

func (c *Config) Colors() bar.Colors {
	return bar.Colors{Active: c.ActiveColor, Inactive: c.InactiveColor}
}

// Toggles parses the position list
func (c *Config) Toggles() (bar.Toggles, error) {
	names := make([]string, len(c.Position))
	for i, n := range c.Position {
		names[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return bar.ParseEdges(names)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parsePages(s string) ([]int, error) {
	var pages []int
	for _, part := range splitList(s) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", part, err)
		}
		pages = append(pages, n)
	}
	return pages, nil
}
