package bot

import (
	"crypto/tls"
	"strings"

	log "github.com/sirupsen/logrus"
	irc "github.com/thoj/go-ircevent"

	"github.com/Cldfire/mc-legacy-formatting/format"
)

// IRCConfig represents the required configuration to connect to IRC
type IRCConfig struct {
	Nick string `json:"nick"`
	User string `json:"user"`
	Pass string `json:"pass"`

	SSL       bool   `json:"ssl"`
	SSLVerify bool   `json:"ssl_verify"`
	Server    string `json:"server"`

	CommandChars string `json:"command_chars"`
}

var (
	iSession *irc.Connection
)

func iInit() {
	c := conf.IRC
	iSession = irc.IRC(c.Nick, c.User)

	iSession.UseTLS = c.SSL
	// InsecureSkipVerify may be required to communicate with IRC servers.
	if !c.SSLVerify {
		iSession.TLSConfig = &tls.Config{InsecureSkipVerify: true} // nolint: gas
	}
	iSession.Password = c.Pass
	iSession.AddCallback("PRIVMSG", iPrivmsg)

	err := iSession.Connect(c.Server)
	if err != nil {
		log.Fatalf("Failed to initialise IRC session: %s", err)
	}

	iSession.AddCallback("001", iSetupSession)

	log.Infof("Connected to IRC")
}

func iSetupSession(e *irc.Event) {
	for _, c := range ircChannels() {
		iSession.Join(c)
	}
}

func iPrivmsg(e *irc.Event) {
	incomingIRC(e.Nick, strings.ToLower(e.Arguments[0]), e.Message())
}

func iAnnounce(channel string, message format.FormattedString) {
	iSession.Privmsg(channel, message.RenderIRC())
}
