package slp

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/Cldfire/mc-legacy-formatting/format"

	. "github.com/smartystreets/goconvey/convey"
)

func TestChatUnmarshal(t *testing.T) {
	Convey("When chat components are decoded", t, func() {
		Convey("When the component is a bare string", func() {
			var c Chat
			So(json.Unmarshal([]byte(`"§6A Minecraft Server"`), &c), ShouldBeNil)
			So(c.Text, ShouldEqual, "§6A Minecraft Server")
			So(c.Extra, ShouldBeEmpty)
		})

		Convey("When the component is an object", func() {
			var c Chat
			raw := `{"text": "Hello", "bold": true, "color": "gold", "extra": ["world", {"text": "!", "italic": true}]}`
			So(json.Unmarshal([]byte(raw), &c), ShouldBeNil)
			So(c.Text, ShouldEqual, "Hello")
			So(c.Bold, ShouldBeTrue)
			So(c.Color, ShouldEqual, "gold")
			So(len(c.Extra), ShouldEqual, 2)
			So(c.Extra[0].Text, ShouldEqual, "world")
			So(c.Extra[1].Italic, ShouldBeTrue)
		})
	})
}

func TestChatLegacy(t *testing.T) {
	Convey("When chat components are flattened", t, func() {
		cases := []struct {
			chat   Chat
			legacy string
		}{
			{Chat{Text: "plain"}, "plain"},
			{Chat{Text: "gilded", Color: "gold"}, "§6gilded"},
			{Chat{Text: "loud", Bold: true, Underlined: true}, "§l§nloud"},
			// The color code comes first so it can't clear the styles.
			{Chat{Text: "styled", Color: "dark_red", Italic: true}, "§4§ostyled"},
			{Chat{Text: "fresh", Color: "reset"}, "§rfresh"},
			{Chat{Text: "odd", Color: "not_a_color"}, "odd"},
			{
				Chat{Text: "a", Color: "blue", Extra: []Chat{
					{Text: "b", Strikethrough: true},
					{Text: "c", Color: "white", Obfuscated: true},
				}},
				"§9a§mb§f§kc",
			},
		}

		for _, c := range cases {
			Convey(fmt.Sprintf("When %+v is used", c.chat), func() {
				So(c.chat.Legacy(), ShouldEqual, c.legacy)
			})
		}

		Convey("The flattened text parses back into spans", func() {
			c := Chat{Text: "MOTD ", Color: "dark_purple", Extra: []Chat{
				{Text: "here", Bold: true, Color: "gold"},
			}}
			So(format.Spans(c.Legacy()), ShouldResemble, format.FormattedString{
				{Text: "MOTD ", Color: format.DarkPurple},
				{Text: "here", Color: format.Gold, Styles: format.Bold},
			})
		})
	})
}
