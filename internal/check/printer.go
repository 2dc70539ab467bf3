package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var rule = strings.Repeat("=", 40)

// printer writes report lines with colored status glyphs. Colors are only
// emitted when the writer is a terminal.
type printer struct {
	w       io.Writer
	okStyle lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	notice  lipgloss.Style
}

func newPrinter(w io.Writer) printer {
	if w == nil {
		w = io.Discard
	}
	r := lipgloss.NewRenderer(w)
	return printer{
		w:       w,
		okStyle: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

func (p printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p printer) ok(format string, args ...any) {
	p.glyph(p.okStyle, "✓", " ", format, args...)
}

func (p printer) fail(format string, args ...any) {
	p.glyph(p.failure, "✗", " ", format, args...)
}

func (p printer) warn(format string, args ...any) {
	p.glyph(p.warning, "⚠️", "  ", format, args...)
}

func (p printer) info(format string, args ...any) {
	p.glyph(p.notice, "ℹ️", "  ", format, args...)
}

func (p printer) glyph(style lipgloss.Style, mark string, gap string, format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s%s\n", style.Render(mark), gap, fmt.Sprintf(format, args...))
}
