package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderANSI renders a FormattedString for a color terminal.
//
// Output will look close to what you'd see in Minecraft (ignoring the font
// difference). Strikethrough whitespace is drawn as a run of struck-through
// dashes, since a terminal can't draw the vanilla client's solid line.
// Obfuscated text is left as-is; a static medium has no equivalent for it.
func (fs FormattedString) RenderANSI() string {
	var b strings.Builder
	for _, span := range fs {
		text := span.Text
		styles := span.Styles
		if span.StrikethroughWhitespace {
			// The dashes draw the line themselves; striking them through
			// as well would double it up.
			text = strings.Repeat("-", len(span.Text))
			styles &^= Strikethrough
		}

		style := lipgloss.NewStyle()
		if span.Color != Default {
			style = style.Foreground(lipgloss.Color(span.Color.ForegroundHex()))
		}
		if (styles & Bold) != 0 {
			style = style.Bold(true)
		}
		if (styles & Strikethrough) != 0 {
			style = style.Strikethrough(true)
		}
		if (styles & Underline) != 0 {
			style = style.Underline(true)
		}
		if (styles & Italic) != 0 {
			style = style.Italic(true)
		}

		b.WriteString(style.Render(text))
	}
	return b.String()
}
