package slp

import (
	"encoding/json"
	"strings"

	"github.com/Cldfire/mc-legacy-formatting/format"
)

// Chat is a chat component. Servers send the status description either as
// a bare JSON string or as an object with styling and child components.
type Chat struct {
	Text          string `json:"text"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Underlined    bool   `json:"underlined,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Obfuscated    bool   `json:"obfuscated,omitempty"`
	Color         string `json:"color,omitempty"`
	Extra         []Chat `json:"extra,omitempty"`
}

// UnmarshalJSON accepts both forms of a chat component.
func (c *Chat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Chat{Text: s}
		return nil
	}
	type chat Chat
	var obj chat
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*c = Chat(obj)
	return nil
}

// Legacy flattens the component tree into legacy-coded text suitable for
// format.Spans. Each component's color code precedes its style codes, as a
// color code clears any active styles. Component style inheritance is not
// modeled; children restate their own formatting.
func (c Chat) Legacy() string {
	var b strings.Builder
	c.appendLegacy(&b)
	return b.String()
}

func (c Chat) appendLegacy(b *strings.Builder) {
	if c.Color == "reset" {
		writeCode(b, 'r')
	} else if col, ok := format.ColorByName(c.Color); ok {
		if ch, ok := col.Code(); ok {
			writeCode(b, ch)
		}
	}
	if c.Obfuscated {
		writeCode(b, 'k')
	}
	if c.Bold {
		writeCode(b, 'l')
	}
	if c.Strikethrough {
		writeCode(b, 'm')
	}
	if c.Underlined {
		writeCode(b, 'n')
	}
	if c.Italic {
		writeCode(b, 'o')
	}
	b.WriteString(c.Text)
	for _, extra := range c.Extra {
		extra.appendLegacy(b)
	}
}

func writeCode(b *strings.Builder, c rune) {
	b.WriteRune(format.StartChar)
	b.WriteRune(c)
}
