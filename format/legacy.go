package format

import "unicode/utf8"

// StartChar is the character the vanilla client uses to introduce a
// formatting code. Community tooling often uses '&' instead; see
// SpanIter.WithStartChar.
const StartChar = '§'

// SpanIter parses text containing legacy formatting codes ("§4", "§l", ...)
// into Spans, one per call to Next.
//
// A SpanIter holds only a cursor into its input plus the currently active
// color and styles; spans are produced on demand and share the input's
// bytes. Parsing the same input with the same start character always yields
// the same sequence of spans. A SpanIter is not safe for concurrent use.
type SpanIter struct {
	buf       string
	pos       int
	startChar rune
	color     Color
	styles    Styles
}

// NewSpanIter creates a SpanIter parsing `s` with the vanilla start character.
func NewSpanIter(s string) *SpanIter {
	return &SpanIter{buf: s, startChar: StartChar}
}

// WithStartChar sets the character that introduces a formatting code and
// returns the iterator for chaining.
func (it *SpanIter) WithStartChar(c rune) *SpanIter {
	it.startChar = c
	return it
}

// SetStartChar sets the character that introduces a formatting code.
func (it *SpanIter) SetStartChar(c rune) {
	it.startChar = c
}

// applyCode applies the formatting code `c` to the iterator's state,
// reporting whether `c` was a recognized code.
func (it *SpanIter) applyCode(c rune) bool {
	if color, ok := ColorFromChar(c); ok {
		it.color = color
		// A color code also wipes the active styles; style codes leave the
		// color alone. Asymmetric, but it's what the vanilla client does.
		it.styles = None
		return true
	}
	if style, ok := StylesFromChar(c); ok {
		it.styles |= style
		return true
	}
	if c == 'r' || c == 'R' {
		it.color = Default
		it.styles = None
		return true
	}
	return false
}

func isFormatCode(c rune) bool {
	if _, ok := ColorFromChar(c); ok {
		return true
	}
	if _, ok := StylesFromChar(c); ok {
		return true
	}
	return c == 'r' || c == 'R'
}

// makeSpan makes a Span for buf[start:end] from the current iterator state.
func (it *SpanIter) makeSpan(start, end int) Span {
	span := Span{Text: it.buf[start:end], Color: it.color, Styles: it.styles}
	// The vanilla client draws a run of whitespace carrying the
	// strikethrough style as a solid line; tag those spans so renderers
	// can replicate that.
	if it.styles&Strikethrough != 0 && isASCIIWhitespace(span.Text) {
		span.StrikethroughWhitespace = true
	}
	return span
}

func isASCIIWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			return false
		}
	}
	return true
}

// Next returns the next Span, or ok == false once the input is exhausted.
//
// Each call consumes any formatting codes preceding the next run of text,
// then the run itself. The span's text never contains a recognized code
// pair; a start character not followed by a recognized code character is
// ordinary text and stays in the span, along with the character after it.
// Codes with no text after them produce no span.
func (it *SpanIter) Next() (span Span, ok bool) {
	// Gather any run of leading codes into the color/style state.
	for it.pos < len(it.buf) {
		r, size := utf8.DecodeRuneInString(it.buf[it.pos:])
		if r != it.startChar {
			break
		}
		code, codeSize := utf8.DecodeRuneInString(it.buf[it.pos+size:])
		if codeSize == 0 || !isFormatCode(code) {
			break
		}
		it.applyCode(code)
		it.pos += size + codeSize
	}

	if it.pos >= len(it.buf) {
		return Span{}, false
	}
	start := it.pos

	// Gather text until a recognized code pair ends the span. The pair is
	// consumed and applied now so the next call picks up where we left off.
	for it.pos < len(it.buf) {
		r, size := utf8.DecodeRuneInString(it.buf[it.pos:])
		if r != it.startChar {
			it.pos += size
			continue
		}
		code, codeSize := utf8.DecodeRuneInString(it.buf[it.pos+size:])
		if codeSize == 0 {
			// Trailing bare start character; it's ordinary text.
			it.pos += size
			continue
		}
		if !isFormatCode(code) {
			// Not a real code: both characters are ordinary text. The
			// second one is consumed too, so "§§4" stays literal.
			it.pos += size + codeSize
			continue
		}
		span = it.makeSpan(start, it.pos)
		it.pos += size + codeSize
		it.applyCode(code)
		return span, true
	}

	return it.makeSpan(start, len(it.buf)), true
}

// Spans parses `s` into a FormattedString using the vanilla start character.
func Spans(s string) FormattedString {
	return SpansStartChar(StartChar, s)
}

// SpansStartChar parses `s` into a FormattedString using the given start
// character.
func SpansStartChar(startChar rune, s string) FormattedString {
	spans := FormattedString{}
	it := NewSpanIter(s).WithStartChar(startChar)
	for {
		span, ok := it.Next()
		if !ok {
			return spans
		}
		spans = append(spans, span)
	}
}
