// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color

	// ColorFaint is the muted color pushed further toward the background.
	ColorFaint color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Canvas node styles. Each carries the border only; width and height
	// are applied by the renderer from the layout.
	NodeStyle         lipgloss.Style
	NodeRootStyle     lipgloss.Style
	NodeSelectedStyle lipgloss.Style
	NodeEditingStyle  lipgloss.Style
	NodeDraggingStyle lipgloss.Style
	NodeHintStyle     lipgloss.Style

	HeaderStyle    lipgloss.Style
	StatusStyle    lipgloss.Style
	HelpKeyStyle   lipgloss.Style
	HelpDescStyle  lipgloss.Style
	HelpSepStyle   lipgloss.Style
	PromptStyle    lipgloss.Style
	DeleteOffStyle lipgloss.Style

	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	ModalButtonStyle lipgloss.Style

	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// Notification icons.
const (
	IconNotifyInfo    = "i"
	IconNotifyWarning = "!"
	IconNotifyError   = "x"
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error
	ColorFaint = Blend(p.Muted, p.Background, 0.4)

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	NodeStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Foreground(ColorForeground).
		Align(lipgloss.Center)
	NodeRootStyle = NodeStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorSecondary).
		Bold(true)
	NodeSelectedStyle = NodeStyle.
		BorderForeground(ColorPrimary)
	NodeEditingStyle = NodeStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorWarning)
	NodeDraggingStyle = NodeStyle.
		BorderForeground(ColorFaint).
		Foreground(ColorMuted)
	NodeHintStyle = lipgloss.NewStyle().
		Foreground(ColorFaint).
		Italic(true)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	HelpDescStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpSepStyle = lipgloss.NewStyle().
		Foreground(ColorFaint)
	PromptStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DeleteOffStyle = lipgloss.NewStyle().
		Foreground(ColorFaint).
		Strikethrough(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorForeground)
	ToastInfoStyle = toast.BorderForeground(ColorPrimary)
	ToastWarningStyle = toast.BorderForeground(ColorWarning)
	ToastErrorStyle = toast.BorderForeground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = secondary
	cfg.Table.Color = fg

	return cfg
}
