package format

import "strings"

var discordEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"*", "\\*",
	"_", "\\_",
	"~", "\\~",
	"`", "\\`",
)

// RenderDiscord renders a FormattedString into a Discord message.
//
// Colors have no Discord equivalent and are dropped; styles become
// markdown. Strikethrough whitespace is drawn as literal dashes rather
// than ~~ ~~, which Discord would collapse.
func (fs FormattedString) RenderDiscord() string {
	output := ""
	for _, span := range fs {
		if span.StrikethroughWhitespace {
			output += strings.Repeat("-", len(span.Text)) + "\ufeff"
			continue
		}

		t := discordEscaper.Replace(span.Text)

		if (span.Styles & Italic) != 0 {
			t = "*" + t + "*"
		}
		if (span.Styles & Bold) != 0 {
			t = "**" + t + "**"
		}
		if (span.Styles & Strikethrough) != 0 {
			t = "~~" + t + "~~"
		}
		if (span.Styles & Underline) != 0 {
			t = "__" + t + "__"
		}
		output += t + "\ufeff" // add a U+FEFF to avoid running together format codes; "*foo*\ufeff**bar**" instead of "*foo***bar**"
	}

	return output
}
