package stamp

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Layout is the 24-hour, zero-padded timestamp layout.
const Layout = "2006-01-02 15:04:05"

// AppendPrefix appends "[YYYY-MM-DD HH:MM:SS] " for t to b.
func AppendPrefix(b []byte, t time.Time) []byte {
	b = append(b, '[')
	b = t.AppendFormat(b, Layout)
	return append(b, ']', ' ')
}

// ColorMode controls whether the bracketed timestamp is coloured.
type ColorMode string

const (
	ColorNever  ColorMode = "never"
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
)

// ParseColorMode accepts never, auto or always. The empty string means never.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorNever:
		return ColorNever, nil
	case ColorAuto, ColorAlways:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("color must be never, auto, or always; got %q", s)
}

// Styler renders the prefix, coloured when the mode and the output allow it.
// A nil or disabled Styler renders the plain prefix.
type Styler struct {
	enabled bool
	style   lipgloss.Style
}

// NewStyler builds a Styler for output written to w.
func NewStyler(w io.Writer, mode ColorMode) *Styler {
	if mode == "" || mode == ColorNever {
		return &Styler{}
	}
	r := lipgloss.NewRenderer(w)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	if r.ColorProfile() == termenv.Ascii {
		return &Styler{}
	}
	return &Styler{
		enabled: true,
		style:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Enabled reports whether the Styler emits escape sequences.
func (s *Styler) Enabled() bool {
	return s != nil && s.enabled
}

// AppendPrefix appends the (possibly styled) prefix for t to b.
func (s *Styler) AppendPrefix(b []byte, t time.Time) []byte {
	if !s.Enabled() {
		return AppendPrefix(b, t)
	}
	b = append(b, s.style.Render("["+t.Format(Layout)+"]")...)
	return append(b, ' ')
}
