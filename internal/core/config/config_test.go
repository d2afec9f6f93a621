package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/mindmap/internal/core/mindmap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	want := DefaultConfig()
	assert.Equal(t, &want, cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mindmap.txt", cfg.Files.Filename)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
layout:
  node_width: 30
text:
  root: "中心トピック"
keys:
  add: ["+"]
tui:
  theme: gruvbox
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Layout.NodeWidth)
	assert.Equal(t, 3, cfg.Layout.NodeHeight, "unset values keep defaults")
	assert.Equal(t, "中心トピック", cfg.Text.Root)
	assert.Equal(t, "New Idea", cfg.Text.Placeholder)
	assert.Equal(t, []string{"+"}, cfg.Keys.Add)
	assert.Equal(t, []string{"d", "delete"}, cfg.Keys.Delete)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "malformed yaml",
			content: "layout: [",
			errMsg:  "parse config file",
		},
		{
			name:    "narrow nodes",
			content: "layout:\n  node_width: 2\n",
			errMsg:  "node_width",
		},
		{
			name:    "negative margin",
			content: "layout:\n  margin: -1\n",
			errMsg:  "negative",
		},
		{
			name:    "unknown theme",
			content: "tui:\n  theme: neon\n",
			errMsg:  "not a built-in theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_ToLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.DefaultAnchorX = 4
	cfg.Layout.DefaultAnchorY = 6

	layout := cfg.ToLayout()

	assert.InDelta(t, 20.0, layout.NodeWidth, 0)
	assert.InDelta(t, 3.0, layout.NodeHeight, 0)
	assert.Equal(t, mindmap.Point{X: 4, Y: 6}, layout.DefaultAnchor)
}

func TestConfig_ToTexts(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, mindmap.DefaultTexts(), cfg.ToTexts())
}
