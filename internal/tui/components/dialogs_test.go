package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeDialog_View(t *testing.T) {
	d := NewNoticeDialog("Cannot delete", "The central topic cannot be deleted.")

	out := ansi.Strip(d.View(80))
	assert.Contains(t, out, "Cannot delete")
	assert.Contains(t, out, "The central topic cannot be deleted.")
	assert.Contains(t, out, "OK")
}

func TestNoticeDialog_Overlay(t *testing.T) {
	d := NewNoticeDialog("Cannot delete", "The central topic cannot be deleted.")

	out := ansi.Strip(d.Overlay(Blank(80, 20), 80, 20))
	assert.Contains(t, out, "The central topic cannot be deleted.")

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.NotContains(t, lines[0], "Cannot delete", "dialog is centered, not drawn on the first row")
}

func TestHelpDialog_Overlay(t *testing.T) {
	h := NewHelpDialog("Help", []HelpDialogSection{
		{Title: "Nodes", Entries: []HelpEntry{{Key: "a", Desc: "add node"}}},
	}, "", 100, 40)

	out := ansi.Strip(h.Overlay(Blank(100, 40), 100, 40))
	assert.Contains(t, out, "add node")
}

func TestHelpMarkdown(t *testing.T) {
	md := HelpMarkdown([]HelpDialogSection{
		{
			Title: "Nodes",
			Entries: []HelpEntry{
				{Key: "a", Desc: "add node"},
				{Key: "d", Desc: "delete node"},
			},
		},
	})

	assert.Contains(t, md, "## Nodes")
	assert.Contains(t, md, "| `a` | add node |")
	assert.Contains(t, md, "| `d` | delete node |")
}

func TestHelpDialog_View(t *testing.T) {
	h := NewHelpDialog("Help", []HelpDialogSection{
		{Title: "Nodes", Entries: []HelpEntry{{Key: "a", Desc: "add node"}}},
	}, "", 100, 40)

	out := ansi.Strip(h.View())
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "add node")
}

func TestPrompt(t *testing.T) {
	p := NewPrompt("Open:", "map.txt", "path", 40)

	assert.Equal(t, "map.txt", p.Value())
	assert.Contains(t, ansi.Strip(p.View()), "Open:")
}
