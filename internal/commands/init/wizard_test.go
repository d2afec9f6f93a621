package initcmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/mindmap/internal/core/config"
	"github.com/hay-kot/mindmap/internal/printer"
)

func TestBackupConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	backup, err := BackupConfig(path)
	require.NoError(t, err)
	assert.Empty(t, backup, "missing config needs no backup")

	require.NoError(t, os.WriteFile(path, []byte("tui:\n  theme: gruvbox\n"), 0o600))

	backup, err = BackupConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path+".bak", backup)

	got, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "tui:\n  theme: gruvbox\n", string(got))
}

func TestGenerateConfig(t *testing.T) {
	cfg := GenerateConfig(ConfigOptions{Theme: "gruvbox", NodeWidth: 24})

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, 24, cfg.Layout.NodeWidth)
	assert.Equal(t, config.DefaultConfig().Files.OutputDir, cfg.Files.OutputDir)
}

func TestWriteConfig_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := GenerateConfig(ConfigOptions{Theme: "catppuccin", OutputDir: "/tmp/maps"})
	require.NoError(t, WriteConfig(want, path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestWizard_Yes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	var buf bytes.Buffer
	ctx := printer.NewContext(context.Background(), printer.New(&buf))

	err := NewWizard(WizardOptions{ConfigPath: path, Yes: true}).Run(ctx)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Contains(t, buf.String(), "Created config")
	assert.NoFileExists(t, path+".bak")
}

func TestWizard_YesRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	err := NewWizard(WizardOptions{ConfigPath: path, Yes: true}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}

func TestWizard_ForceBacksUp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	var buf bytes.Buffer
	ctx := printer.NewContext(context.Background(), printer.New(&buf))

	err := NewWizard(WizardOptions{ConfigPath: path, Yes: true, Force: true}).Run(ctx)
	require.NoError(t, err)

	assert.FileExists(t, path+".bak")
	assert.Contains(t, buf.String(), "Backed up config")
}

func TestValidateNodeWidth(t *testing.T) {
	assert.NoError(t, validateNodeWidth(" 12 "))
	assert.Error(t, validateNodeWidth("2"))
	assert.Error(t, validateNodeWidth("wide"))
}
