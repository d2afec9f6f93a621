package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/mindmap/internal/core/styles"
)

// View renders the frame in the alternate screen with cell-motion mouse
// reporting, so drags report every cell the pointer crosses, and focus
// reporting, so losing focus ends a drag.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	return v
}

// render draws the header, the canvas, the footer and any overlays.
func (m Model) render() string {
	width, height := m.vp.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	canvas := canvasRenderer{
		store:    m.store,
		state:    m.ctrl.State(),
		hint:     m.cfg.Text.Hint,
		editView: m.input.View(),
	}.render()

	parts := []string{m.headerView(width)}
	if height > headerHeight+footerHeight {
		parts = append(parts, canvas)
	}
	if height > headerHeight {
		parts = append(parts, m.footerView(width))
	}
	out := strings.Join(parts, "\n")

	out = m.toastView.Overlay(out, width, height)

	switch m.state {
	case stateNotice:
		if m.notice != nil {
			out = m.notice.Overlay(out, width, height)
		}
	case stateHelp:
		if m.help != nil {
			out = m.help.Overlay(out, width, height)
		}
	}

	return out
}

func (m Model) headerView(width int) string {
	title := styles.HeaderStyle.Render("mindmap")
	info := styles.StatusStyle.Render(fmt.Sprintf(" %s · %d nodes", documentName(m.docPath), m.store.Len()))
	return ansi.Truncate(title+info, width, "…")
}

func (m Model) footerView(width int) string {
	if m.state == statePrompt && m.prompt != nil {
		return ansi.Truncate(m.prompt.View(), width, "")
	}

	st := m.ctrl.State()
	var status string
	switch {
	case st.EditingID != "":
		status = "editing"
	case st.Dragging != nil:
		status = "moving"
	case st.SelectedID != "":
		if n, ok := m.store.Get(st.SelectedID); ok {
			status = ansi.Truncate(n.Text, 24, "…")
		}
	}

	sep := styles.HelpSepStyle.Render(" • ")
	items := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		items = append(items, m.helpItem(b))
	}

	line := strings.Join(items, sep)
	if status != "" {
		line = styles.StatusStyle.Render(status) + sep + line
	}
	return ansi.Truncate(line, width, "…")
}

func (m Model) helpItem(b key.Binding) string {
	h := b.Help()
	if h == m.keys.Delete.Help() && !m.ctrl.CanDelete() {
		return styles.DeleteOffStyle.Render(h.Key + " " + h.Desc)
	}
	return styles.HelpKeyStyle.Render(h.Key) + " " + styles.HelpDescStyle.Render(h.Desc)
}
