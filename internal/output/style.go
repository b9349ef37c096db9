package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styler colours verdict cells in table output. A nil or disabled Styler
// returns text unchanged.
type Styler struct {
	enabled bool
	valid   lipgloss.Style
	invalid lipgloss.Style
	dim     lipgloss.Style
}

// NewStyler returns a Styler for w. Colour is used only when w is a terminal
// and noColor is false.
func NewStyler(w io.Writer, noColor bool) *Styler {
	if noColor || !IsTerminal(w) {
		return &Styler{}
	}
	r := lipgloss.NewRenderer(w)
	return &Styler{
		enabled: true,
		valid:   r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		invalid: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		dim:     r.NewStyle().Faint(true),
	}
}

// Verdict renders ok as "valid" or "invalid".
func (s *Styler) Verdict(ok bool) string {
	if ok {
		return s.render("valid", func(s *Styler) lipgloss.Style { return s.valid })
	}
	return s.render("invalid", func(s *Styler) lipgloss.Style { return s.invalid })
}

// Dim renders secondary text such as failure reasons.
func (s *Styler) Dim(text string) string {
	return s.render(text, func(s *Styler) lipgloss.Style { return s.dim })
}

func (s *Styler) render(text string, style func(*Styler) lipgloss.Style) string {
	if s == nil || !s.enabled || text == "" {
		return text
	}
	return style(s).Render(text)
}
