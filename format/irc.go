package format

import (
	"fmt"
	"strings"
)

const (
	ircColor = "\x03"

	ircReset         = "\x0f"
	ircBold          = "\x02"
	ircItalic        = "\x1d"
	ircUnderline     = "\x1f"
	ircStrikethrough = "\x1e"
)

// ircColorNumbers maps legacy chat colors to the nearest mIRC palette entry.
var ircColorNumbers = [...]int{
	White:       0,
	Black:       1,
	DarkBlue:    2,
	DarkGreen:   3,
	Red:         4,
	DarkRed:     5,
	DarkPurple:  6,
	Gold:        7,
	Yellow:      8,
	Green:       9,
	DarkAqua:    10,
	Aqua:        11,
	Blue:        12,
	LightPurple: 13,
	DarkGray:    14,
	Gray:        15,
}

// RenderIRC renders a FormattedString into an IRC message.
//
// Formatting is emitted as deltas: style codes toggle, so only the styles
// that changed between spans are written. Obfuscated has no IRC equivalent
// and is dropped. Strikethrough whitespace is drawn as dashes, like the
// solid line the vanilla client renders.
func (fs FormattedString) RenderIRC() string {
	output := ""

	var lastSpan Span
	for _, span := range fs {
		text := span.Text
		if span.StrikethroughWhitespace {
			text = strings.Repeat("-", len(span.Text))
		}

		if span.IsZeroFormat() && !lastSpan.IsZeroFormat() {
			output += ircReset + text
			lastSpan = span
			continue
		}

		styleChanges := span.Styles ^ lastSpan.Styles
		if (styleChanges & Bold) != 0 {
			output += ircBold
		}
		if (styleChanges & Italic) != 0 {
			output += ircItalic
		}
		if (styleChanges & Underline) != 0 {
			output += ircUnderline
		}
		if (styleChanges & Strikethrough) != 0 {
			output += ircStrikethrough
		}

		if span.Color != lastSpan.Color {
			if span.Color == Default {
				output += ircColor

				if len(text) > 0 && !isByteSafeAfterIncompleteColor(text[0]) {
					output += ircBold + ircBold
				}
			} else {
				output += fmt.Sprintf("%s%02d", ircColor, ircColorNumbers[span.Color])
			}
		}

		output += text
		lastSpan = span
	}

	return output
}

func isByteSafeAfterIncompleteColor(c byte) bool {
	return !(('0' <= c && c <= '9') || c == ',')
}
