package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan for headings
)

// Color modes accepted by NewRenderer.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Theme is the set of styles used by the text report. Styles are bound to a
// renderer so the same code yields ANSI or plain bytes depending on where
// the output goes.
type Theme struct {
	Banner  lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Text    lipgloss.Style
	Subtle  lipgloss.Style
	Good    lipgloss.Style
	Bad     lipgloss.Style
	Warn    lipgloss.Style
	Header  lipgloss.Style
}

// NewTheme builds the report styles on r.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Banner:  r.NewStyle().Foreground(ColorPrimary).Bold(true),
		Section: r.NewStyle().Foreground(ColorCyan).Bold(true),
		Label:   r.NewStyle().Foreground(ColorSecondary),
		Text:    r.NewStyle().Foreground(ColorText),
		Subtle:  r.NewStyle().Foreground(ColorSecondary),
		Good:    r.NewStyle().Foreground(ColorSuccess),
		Bad:     r.NewStyle().Foreground(ColorError),
		Warn:    r.NewStyle().Foreground(ColorWarning).Bold(true),
		Header:  r.NewStyle().Foreground(ColorPrimary).Bold(true),
	}
}

// PlainTheme renders without any escape sequences.
func PlainTheme(w io.Writer) Theme {
	return NewTheme(NewRenderer(w, ColorNever))
}

// NewRenderer returns a lipgloss renderer for w. In auto mode colors are
// used only when w is a terminal.
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !IsTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
