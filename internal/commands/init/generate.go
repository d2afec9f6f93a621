package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/mindmap/internal/core/config"
)

// ConfigOptions holds the answers collected by the wizard.
type ConfigOptions struct {
	Theme     string
	OutputDir string
	NodeWidth int
}

// GenerateConfig returns the default config with the wizard answers applied.
// Zero values keep the defaults.
func GenerateConfig(opts ConfigOptions) config.Config {
	cfg := config.DefaultConfig()
	if opts.Theme != "" {
		cfg.TUI.Theme = opts.Theme
	}
	if opts.OutputDir != "" {
		cfg.Files.OutputDir = opts.OutputDir
	}
	if opts.NodeWidth > 0 {
		cfg.Layout.NodeWidth = opts.NodeWidth
	}
	return cfg
}

// WriteConfig writes cfg as YAML to path, creating parent directories.
func WriteConfig(cfg config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	header := []byte("# mindmap configuration, generated by 'mindmap init'\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
