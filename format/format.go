package format

import "strings"

// Enum
type Color int

// Legacy chat colors
// The zero value is Default, meaning "no color set": text parsed before any
// color code keeps whatever the rendering medium considers its default color.
const (
	Default Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

// ColorFromChar maps a code character to its Color.
// The vanilla client accepts lower and uppercase interchangeably.
func ColorFromChar(c rune) (Color, bool) {
	switch c {
	case '0':
		return Black, true
	case '1':
		return DarkBlue, true
	case '2':
		return DarkGreen, true
	case '3':
		return DarkAqua, true
	case '4':
		return DarkRed, true
	case '5':
		return DarkPurple, true
	case '6':
		return Gold, true
	case '7':
		return Gray, true
	case '8':
		return DarkGray, true
	case '9':
		return Blue, true
	case 'a', 'A':
		return Green, true
	case 'b', 'B':
		return Aqua, true
	case 'c', 'C':
		return Red, true
	case 'd', 'D':
		return LightPurple, true
	case 'e', 'E':
		return Yellow, true
	case 'f', 'F':
		return White, true
	}
	return Default, false
}

var colorNames = [...]string{
	Default:     "default",
	Black:       "black",
	DarkBlue:    "dark_blue",
	DarkGreen:   "dark_green",
	DarkAqua:    "dark_aqua",
	DarkRed:     "dark_red",
	DarkPurple:  "dark_purple",
	Gold:        "gold",
	Gray:        "gray",
	DarkGray:    "dark_gray",
	Blue:        "blue",
	Green:       "green",
	Aqua:        "aqua",
	Red:         "red",
	LightPurple: "light_purple",
	Yellow:      "yellow",
	White:       "white",
}

func (c Color) String() string {
	if c < Default || int(c) >= len(colorNames) {
		return "invalid"
	}
	return colorNames[c]
}

// ColorByName maps a chat component color name ("dark_red", "aqua", ...)
// to its Color.
func ColorByName(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name && Color(c) != Default {
			return Color(c), true
		}
	}
	return Default, false
}

var colorChars = [...]rune{
	Black:       '0',
	DarkBlue:    '1',
	DarkGreen:   '2',
	DarkAqua:    '3',
	DarkRed:     '4',
	DarkPurple:  '5',
	Gold:        '6',
	Gray:        '7',
	DarkGray:    '8',
	Blue:        '9',
	Green:       'a',
	Aqua:        'b',
	Red:         'c',
	LightPurple: 'd',
	Yellow:      'e',
	White:       'f',
}

// Code returns the code character selecting this color. Default has no
// code character.
func (c Color) Code() (rune, bool) {
	if c <= Default || int(c) >= len(colorChars) {
		return 0, false
	}
	return colorChars[c], true
}

var foregroundRGB = [...][3]uint8{
	Default:     {255, 255, 255},
	Black:       {0, 0, 0},
	DarkBlue:    {0, 0, 170},
	DarkGreen:   {0, 170, 0},
	DarkAqua:    {0, 170, 170},
	DarkRed:     {170, 0, 0},
	DarkPurple:  {170, 0, 170},
	Gold:        {255, 170, 0},
	Gray:        {170, 170, 170},
	DarkGray:    {85, 85, 85},
	Blue:        {85, 85, 255},
	Green:       {85, 255, 85},
	Aqua:        {85, 255, 255},
	Red:         {255, 85, 85},
	LightPurple: {255, 85, 255},
	Yellow:      {255, 255, 85},
	White:       {255, 255, 255},
}

// ForegroundRGB returns the color the vanilla client uses to draw text of
// this color. Default yields the same values as White.
func (c Color) ForegroundRGB() (r, g, b uint8) {
	rgb := foregroundRGB[c]
	return rgb[0], rgb[1], rgb[2]
}

// BackgroundRGB returns the color the vanilla client uses for the drop
// shadow behind text of this color; each channel is a quarter of the
// foreground value.
func (c Color) BackgroundRGB() (r, g, b uint8) {
	rgb := foregroundRGB[c]
	return rgb[0] / 4, rgb[1] / 4, rgb[2] / 4
}

const hexDigits = "0123456789abcdef"

func rgbHex(r, g, b uint8) string {
	return string([]byte{
		'#',
		hexDigits[r>>4], hexDigits[r&0xf],
		hexDigits[g>>4], hexDigits[g&0xf],
		hexDigits[b>>4], hexDigits[b&0xf],
	})
}

// ForegroundHex returns the foreground color as a `#rrggbb` string.
func (c Color) ForegroundHex() string {
	return rgbHex(c.ForegroundRGB())
}

// BackgroundHex returns the background color as a `#rrggbb` string.
func (c Color) BackgroundHex() string {
	return rgbHex(c.BackgroundRGB())
}

// Bitfield
type Styles int

// None represents no styles
const None Styles = 0

// Style codes
const (
	Obfuscated Styles = 1 << iota
	Bold
	Strikethrough
	Underline
	Italic
)

// StylesFromChar maps a code character to its style flag.
// The vanilla client accepts lower and uppercase interchangeably.
func StylesFromChar(c rune) (Styles, bool) {
	switch c {
	case 'k', 'K':
		return Obfuscated, true
	case 'l', 'L':
		return Bold, true
	case 'm', 'M':
		return Strikethrough, true
	case 'n', 'N':
		return Underline, true
	case 'o', 'O':
		return Italic, true
	}
	return None, false
}

func (s Styles) String() string {
	if s == None {
		return "none"
	}
	parts := []string{}
	if s&Obfuscated != 0 {
		parts = append(parts, "obfuscated")
	}
	if s&Bold != 0 {
		parts = append(parts, "bold")
	}
	if s&Strikethrough != 0 {
		parts = append(parts, "strikethrough")
	}
	if s&Underline != 0 {
		parts = append(parts, "underline")
	}
	if s&Italic != 0 {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, "|")
}

// Span represents a piece of text with a single format.
//
// Text is a substring of the input it was parsed from; the parser never
// copies text out of its input.
type Span struct {
	Text   string
	Color  Color
	Styles Styles

	// StrikethroughWhitespace is set when Text consists of nothing but
	// whitespace that carried the strikethrough style. The vanilla client
	// renders such a run as a solid line rather than blank space, so
	// renderers should draw a line (or dashes) in place of Text.
	StrikethroughWhitespace bool
}

// IsZeroFormat returns whether `s` has no formatting
func (s Span) IsZeroFormat() bool {
	return s.Color == Default && s.Styles == None
}

// FormattedString represents a string made up of `Span`s
type FormattedString []Span

// RenderPlain renders a FormattedString with all formatting stripped.
func (fs FormattedString) RenderPlain() string {
	var b strings.Builder
	for _, span := range fs {
		b.WriteString(span.Text)
	}
	return b.String()
}
