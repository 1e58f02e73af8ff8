package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/xvgterm/internal/render"
)

const (
	DefaultStyle = "block"
	// DefaultMinWidth and DefaultMinHeight are the smallest terminal that
	// still gets a graph.
	DefaultMinWidth  = 5
	DefaultMinHeight = 7
	// DefaultReservedRows keeps room below the graph for the summary line
	// and the shell prompt.
	DefaultReservedRows = 2
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Config holds the rendering settings. Zero Width or Height means "use the
// terminal size".
type Config struct {
	Style        string `yaml:"style"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Strict       bool   `yaml:"strict"`
	MinWidth     int    `yaml:"min_width"`
	MinHeight    int    `yaml:"min_height"`
	ReservedRows int    `yaml:"reserved_rows"`
}

func DefaultConfig() *Config {
	return &Config{
		Style:        DefaultStyle,
		MinWidth:     DefaultMinWidth,
		MinHeight:    DefaultMinHeight,
		ReservedRows: DefaultReservedRows,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge reads a YAML file over c. Keys missing from the file keep their
// current values.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return c.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply copies the non-zero fields of o onto c.
func (c *Config) Apply(o *Config) {
	if o.Style != "" {
		c.Style = o.Style
	}
	if o.Width != 0 {
		c.Width = o.Width
	}
	if o.Height != 0 {
		c.Height = o.Height
	}
	if o.Strict {
		c.Strict = true
	}
	if o.MinWidth != 0 {
		c.MinWidth = o.MinWidth
	}
	if o.MinHeight != 0 {
		c.MinHeight = o.MinHeight
	}
	if o.ReservedRows != 0 {
		c.ReservedRows = o.ReservedRows
	}
}

func (c *Config) Validate() error {
	if _, err := render.ParseStyle(c.Style); err != nil {
		return err
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: negative size %dx%d", c.Width, c.Height)
	}
	if c.ReservedRows < 0 {
		return fmt.Errorf("config: negative reserved_rows %d", c.ReservedRows)
	}
	return nil
}

// DrawingStyle returns the parsed Style.
func (c *Config) DrawingStyle() render.Style {
	s, err := render.ParseStyle(c.Style)
	if err != nil {
		return render.Block
	}
	return s
}
