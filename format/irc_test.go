package format

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderIRC(t *testing.T) {
	Convey("When RenderIRC is used", t, func() {
		cases := []testCase{
			{"", FormattedString{}},
			{"foo", FormattedString{
				{Text: "foo"},
			}},
			{"\x0304foo", FormattedString{
				{Text: "foo", Color: Red},
			}},
			{"\x0304foo\x0fbar", FormattedString{
				{Text: "foo", Color: Red},
				{Text: "bar"},
			}},
			{"\x02foo\x0fbar", FormattedString{
				{Text: "foo", Styles: Bold},
				{Text: "bar"},
			}},
			// Style codes toggle, so only changed styles are emitted.
			{"\x02\x0307foo\x02bar", FormattedString{
				{Text: "foo", Color: Gold, Styles: Bold},
				{Text: "bar", Color: Gold},
			}},
			{"\x02\x1d\x1ffoo\x0fbar", FormattedString{
				{Text: "foo", Styles: Bold | Italic | Underline},
				{Text: "bar"},
			}},
			{"\x02\x0302foo\x03\x02\x021bar", FormattedString{
				{Text: "foo", Color: DarkBlue, Styles: Bold},
				{Text: "1bar", Styles: Bold},
			}},
			{"\x1e\x0306---", FormattedString{
				{Text: "   ", Color: DarkPurple, Styles: Strikethrough, StrikethroughWhitespace: true},
			}},
			{"\x0300white\x030112colors\x030515deep", FormattedString{
				{Text: "white", Color: White},
				{Text: "12colors", Color: Black},
				{Text: "15deep", Color: DarkRed},
			}},
			{"ΨΩΔ", FormattedString{
				{Text: "ΨΩΔ"},
			}},
		}

		for _, c := range cases {
			Convey(fmt.Sprintf("When %+v is used", c.structured), func() {
				So(c.structured.RenderIRC(), ShouldEqual, c.raw)
			})
		}
	})
}
