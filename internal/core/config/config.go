// Package config handles configuration loading and validation for mindmap.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/mindmap/internal/core/mindmap"
	"github.com/hay-kot/mindmap/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Text   TextConfig   `yaml:"text"`
	Files  FilesConfig  `yaml:"files"`
	Keys   KeysConfig   `yaml:"keys"`
	TUI    TUIConfig    `yaml:"tui"`
}

// LayoutConfig holds node geometry in terminal cells.
type LayoutConfig struct {
	NodeWidth      int `yaml:"node_width"`
	NodeHeight     int `yaml:"node_height"`
	Margin         int `yaml:"margin"`      // gap between a new node and its anchor
	RootTop        int `yaml:"root_top"`    // row of the root node in a fresh document
	LoadMargin     int `yaml:"load_margin"` // inset for scattered nodes on load
	DefaultAnchorX int `yaml:"default_anchor_x"`
	DefaultAnchorY int `yaml:"default_anchor_y"`
}

// TextConfig holds the built-in node texts.
type TextConfig struct {
	Root        string `yaml:"root"`        // text of the root node in a fresh document
	Placeholder string `yaml:"placeholder"` // text of a newly added node
	Fallback    string `yaml:"fallback"`    // text committed when an edit is blank
	Hint        string `yaml:"hint"`        // shown in place of empty text
}

// FilesConfig controls where saved documents are written.
type FilesConfig struct {
	OutputDir string `yaml:"output_dir"`
	Filename  string `yaml:"filename"`
}

// KeysConfig maps editor actions to key strings.
type KeysConfig struct {
	Add    []string `yaml:"add"`
	Delete []string `yaml:"delete"`
	Edit   []string `yaml:"edit"`
	Save   []string `yaml:"save"`
	Open   []string `yaml:"open"`
	Help   []string `yaml:"help"`
	Quit   []string `yaml:"quit"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			NodeWidth:      20,
			NodeHeight:     3,
			Margin:         2,
			RootTop:        1,
			LoadMargin:     2,
			DefaultAnchorX: 2,
			DefaultAnchorY: 2,
		},
		Text: TextConfig{
			Root:        "Central Topic",
			Placeholder: "New Idea",
			Fallback:    "Untitled",
			Hint:        "Click to edit",
		},
		Files: FilesConfig{
			OutputDir: ".",
			Filename:  "mindmap.txt",
		},
		Keys: KeysConfig{
			Add:    []string{"a", "n"},
			Delete: []string{"d", "delete"},
			Edit:   []string{"e", "enter"},
			Save:   []string{"s", "ctrl+s"},
			Open:   []string{"o", "ctrl+o"},
			Help:   []string{"?"},
			Quit:   []string{"q", "ctrl+c"},
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path. A missing file yields the
// defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Layout.NodeWidth == 0 {
		c.Layout.NodeWidth = defaults.Layout.NodeWidth
	}
	if c.Layout.NodeHeight == 0 {
		c.Layout.NodeHeight = defaults.Layout.NodeHeight
	}

	if c.Text.Root == "" {
		c.Text.Root = defaults.Text.Root
	}
	if c.Text.Placeholder == "" {
		c.Text.Placeholder = defaults.Text.Placeholder
	}
	if c.Text.Fallback == "" {
		c.Text.Fallback = defaults.Text.Fallback
	}
	if c.Text.Hint == "" {
		c.Text.Hint = defaults.Text.Hint
	}

	if c.Files.OutputDir == "" {
		c.Files.OutputDir = defaults.Files.OutputDir
	}
	if c.Files.Filename == "" {
		c.Files.Filename = defaults.Files.Filename
	}

	keys := []struct {
		dst *[]string
		def []string
	}{
		{&c.Keys.Add, defaults.Keys.Add},
		{&c.Keys.Delete, defaults.Keys.Delete},
		{&c.Keys.Edit, defaults.Keys.Edit},
		{&c.Keys.Save, defaults.Keys.Save},
		{&c.Keys.Open, defaults.Keys.Open},
		{&c.Keys.Help, defaults.Keys.Help},
		{&c.Keys.Quit, defaults.Keys.Quit},
	}
	for _, k := range keys {
		if len(*k.dst) == 0 {
			*k.dst = k.def
		}
	}

	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.Layout.NodeWidth < 3 {
		return fmt.Errorf("layout.node_width must be at least 3")
	}
	if c.Layout.NodeHeight < 3 {
		return fmt.Errorf("layout.node_height must be at least 3")
	}
	if c.Layout.Margin < 0 || c.Layout.LoadMargin < 0 || c.Layout.RootTop < 0 {
		return fmt.Errorf("layout offsets cannot be negative")
	}

	if c.Files.Filename == "" {
		return fmt.Errorf("files.filename cannot be empty")
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a built-in theme (available: %v)", c.TUI.Theme, styles.ThemeNames())
	}

	return nil
}

// ToLayout converts the cell geometry into the mindmap layout.
func (c *Config) ToLayout() mindmap.Layout {
	return mindmap.Layout{
		NodeWidth:  float64(c.Layout.NodeWidth),
		NodeHeight: float64(c.Layout.NodeHeight),
		Margin:     float64(c.Layout.Margin),
		RootTop:    float64(c.Layout.RootTop),
		LoadMargin: float64(c.Layout.LoadMargin),
		DefaultAnchor: mindmap.Point{
			X: float64(c.Layout.DefaultAnchorX),
			Y: float64(c.Layout.DefaultAnchorY),
		},
	}
}

// ToTexts converts the text settings into the store's built-in texts.
func (c *Config) ToTexts() mindmap.Texts {
	return mindmap.Texts{
		Root:        c.Text.Root,
		Placeholder: c.Text.Placeholder,
		Fallback:    c.Text.Fallback,
	}
}
