// Package initcmd implements the interactive 'mindmap init' wizard.
package initcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/mindmap/internal/core/config"
	"github.com/hay-kot/mindmap/internal/core/styles"
	"github.com/hay-kot/mindmap/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	opts := ConfigOptions{}
	if !w.opts.Yes {
		var err error
		opts, err = w.promptUser()
		if err != nil {
			return err
		}
	}
	opts.OutputDir = expandHome(opts.OutputDir)

	if ConfigExists(w.opts.ConfigPath) {
		backupPath, err := BackupConfig(w.opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			p.Successf("Backed up config to: %s", backupPath)
		}
	}

	cfg := GenerateConfig(opts)
	if err := WriteConfig(cfg, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	if err := cfg.ValidateDeep(w.opts.ConfigPath); err != nil {
		p.Warnf("Config needs attention: %v", err)
	} else {
		p.Successf("Config is valid")
	}

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'mindmap edit' to open a new mind map")
	p.Printf("  2. Run 'mindmap config validate' after editing %s", w.opts.ConfigPath)

	return nil
}

func (w *Wizard) promptUser() (ConfigOptions, error) {
	defaults := config.DefaultConfig()

	theme := defaults.TUI.Theme
	outputDir := defaults.Files.OutputDir
	width := strconv.Itoa(defaults.Layout.NodeWidth)

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&theme),
		huh.NewInput().
			Title("Output directory").
			Description("Where saved mind maps are written").
			Value(&outputDir),
		huh.NewInput().
			Title("Node width").
			Description("Width of a node in terminal cells").
			Validate(validateNodeWidth).
			Value(&width),
	))
	if err := form.Run(); err != nil {
		return ConfigOptions{}, err
	}

	n, _ := strconv.Atoi(strings.TrimSpace(width))
	return ConfigOptions{
		Theme:     theme,
		OutputDir: strings.TrimSpace(outputDir),
		NodeWidth: n,
	}, nil
}

func validateNodeWidth(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 3 {
		return fmt.Errorf("must be at least 3")
	}
	return nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
