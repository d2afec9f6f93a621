// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/mindmap/internal/core/styles"
)

type ctxKey struct{}

// Printer writes styled messages to an output stream.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes a line. Styles are downsampled to what p's writer
// supports, so piped output carries no escape codes.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = lipgloss.Fprintf(p.w, format+"\n", args...)
}

// Section writes a header line.
func (p *Printer) Section(title string) {
	p.Printf("%s", styles.CommandHeaderStyle.Render(title))
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle, "✔", format, args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorPrimary), "•", format, args...)
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorWarning), "!", format, args...)
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle, "✘", format, args...)
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	p.Printf("%s %s", style.Render(icon), fmt.Sprintf(format, args...))
}
