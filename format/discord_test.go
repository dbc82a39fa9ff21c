package format

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderDiscord(t *testing.T) {
	Convey("When RenderDiscord is used", t, func() {
		cases := []testCase{
			{"", FormattedString{}},
			{"foo\ufeff", FormattedString{
				{Text: "foo"},
			}},
			// Colors don't survive the trip to Discord.
			{"foo\ufeff", FormattedString{
				{Text: "foo", Color: DarkRed},
			}},
			{"**foo**\ufeff", FormattedString{
				{Text: "foo", Styles: Bold},
			}},
			{"*foo*\ufeff**bar**\ufeff", FormattedString{
				{Text: "foo", Styles: Italic},
				{Text: "bar", Styles: Bold},
			}},
			{"__**\\*foo\\***__\ufeff", FormattedString{
				{Text: "*foo*", Styles: Bold | Underline},
			}},
			{"~~foo~~\ufeff", FormattedString{
				{Text: "foo", Styles: Strikethrough},
			}},
			{"---\ufeff", FormattedString{
				{Text: "   ", Styles: Strikethrough, StrikethroughWhitespace: true},
			}},
			{"\\_\\_not underline\\_\\_\ufeff", FormattedString{
				{Text: "__not underline__"},
			}},
		}

		for _, c := range cases {
			Convey(fmt.Sprintf("When %+v is used", c.structured), func() {
				So(c.structured.RenderDiscord(), ShouldEqual, c.raw)
			})
		}
	})
}
