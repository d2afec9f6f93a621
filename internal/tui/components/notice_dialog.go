package components

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/mindmap/internal/core/styles"
)

const noticeMaxWidth = 48

// NoticeDialog is a blocking message with a single acknowledge button.
type NoticeDialog struct {
	Title   string
	Message string
}

// NewNoticeDialog creates a notice dialog.
func NewNoticeDialog(title, message string) *NoticeDialog {
	return &NoticeDialog{Title: title, Message: message}
}

// View renders the dialog box.
func (d *NoticeDialog) View(width int) string {
	w := min(noticeMaxWidth, max(width-8, 20))

	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.ModalTitleStyle.Render(d.Title),
		"",
		lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(d.Message),
		"",
		styles.ModalButtonStyle.Render("OK"),
		styles.ModalHelpStyle.Render("enter/esc dismiss"),
	)

	return styles.ModalStyle.Render(content)
}

// Overlay renders the dialog as a layer centered over background.
func (d *NoticeDialog) Overlay(background string, width, height int) string {
	modal := d.View(width)

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	centerX := (width - lipgloss.Width(modal)) / 2
	centerY := (height - lipgloss.Height(modal)) / 2
	modalLayer.X(max(centerX, 0)).Y(max(centerY, 0)).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}
