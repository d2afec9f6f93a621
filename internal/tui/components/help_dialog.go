package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/hay-kot/mindmap/internal/core/styles"
)

const (
	helpMaxWidth  = 72
	helpMaxHeight = 30
	helpMargin    = 4
	helpChrome    = 6 // border + padding + title + footer
)

// HelpEntry is a single keyboard shortcut.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog shows key bindings and notes as rendered markdown in a
// scrollable viewport.
type HelpDialog struct {
	title    string
	viewport viewport.Model
	width    int
}

// NewHelpDialog renders sections and the free-form markdown notes for a
// screen of the given size.
func NewHelpDialog(title string, sections []HelpDialogSection, notes string, width, height int) *HelpDialog {
	w := min(helpMaxWidth, max(width-helpMargin, 20))
	h := min(helpMaxHeight, max(height-helpMargin, helpChrome+1))

	vp := viewport.New(
		viewport.WithWidth(w-4),
		viewport.WithHeight(h-helpChrome),
	)
	vp.SetContent(renderMarkdown(HelpMarkdown(sections)+notes, w-6))

	return &HelpDialog{
		title:    title,
		viewport: vp,
		width:    w,
	}
}

// HelpMarkdown formats sections as markdown tables.
func HelpMarkdown(sections []HelpDialogSection) string {
	var b strings.Builder
	for _, section := range sections {
		if section.Title != "" {
			fmt.Fprintf(&b, "## %s\n\n", section.Title)
		}
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, e := range section.Entries {
			fmt.Fprintf(&b, "| `%s` | %s |\n", e.Key, e.Desc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderMarkdown(md string, wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// ScrollUp scrolls the content up one line.
func (h *HelpDialog) ScrollUp() {
	h.viewport.ScrollUp(1)
}

// ScrollDown scrolls the content down one line.
func (h *HelpDialog) ScrollDown() {
	h.viewport.ScrollDown(1)
}

// View renders the dialog box.
func (h *HelpDialog) View() string {
	title := h.title
	if h.viewport.TotalLineCount() > h.viewport.VisibleLineCount() {
		title += styles.StatusStyle.Render(fmt.Sprintf(" (%.0f%%)", h.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		h.viewport.View(),
		styles.ModalHelpStyle.Render("↑/↓ scroll • esc/? close"),
	)

	return styles.ModalStyle.Padding(0, 1).Width(h.width).Render(content)
}

// Overlay renders the dialog as a layer centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	x := max((width-lipgloss.Width(modal))/2, 0)
	y := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(x).Y(y).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}
