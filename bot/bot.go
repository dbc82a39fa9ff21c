// Package bot watches Minecraft servers over Server List Ping and announces
// status changes to IRC and Discord channels.
package bot

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/Cldfire/mc-legacy-formatting/format"
	"github.com/Cldfire/mc-legacy-formatting/slp"
)

// Config holds the connection details for IRC and Discord plus the servers
// to watch and the channels to announce them in.
type Config struct {
	IRC     IRCConfig             `json:"irc"`
	Discord DiscordConfig         `json:"discord"`
	Servers map[string]ChannelSet `json:"servers"`

	PollIntervalSeconds int `json:"poll_interval_seconds"`
}

// ChannelSet lists the channels a server's status is announced to.
// Discord channels are named "Guild#channel".
type ChannelSet struct {
	IRC     []string `json:"irc"`
	Discord []string `json:"discord"`
}

type serverState struct {
	motd    string
	online  int
	max     int
	failing bool
}

var (
	conf Config

	// Channel -> server addresses announced there, per network.
	ircServers     map[string][]string
	discordServers map[string][]string

	stateMu   sync.Mutex
	lastState map[string]*serverState
)

// Init connects both sessions and starts the poll loop.
func Init(c Config) {
	conf = c
	if conf.PollIntervalSeconds <= 0 {
		conf.PollIntervalSeconds = 60
	}
	buildIndexes()
	lastState = map[string]*serverState{}

	dInit()
	iInit()

	go pollLoop()
}

func buildIndexes() {
	ircServers = map[string][]string{}
	discordServers = map[string][]string{}
	for addr, set := range conf.Servers {
		for _, c := range set.IRC {
			ircServers[c] = append(ircServers[c], addr)
		}
		for _, c := range set.Discord {
			discordServers[c] = append(discordServers[c], addr)
		}
	}
	// Deterministic command output order.
	for _, addrs := range ircServers {
		sort.Strings(addrs)
	}
	for _, addrs := range discordServers {
		sort.Strings(addrs)
	}
}

func ircChannels() []string {
	chans := make([]string, 0, len(ircServers))
	for c := range ircServers {
		chans = append(chans, c)
	}
	sort.Strings(chans)
	return chans
}

func pollLoop() {
	poll()
	ticker := time.NewTicker(time.Duration(conf.PollIntervalSeconds) * time.Second)
	for range ticker.C {
		poll()
	}
}

func poll() {
	for addr := range conf.Servers {
		pollServer(addr)
	}
}

func pollServer(addr string) {
	status, latency, err := slp.Ping(addr)
	if err == nil {
		log.Debugf("%s: %d/%d online, latency %s", addr, status.Players.Online, status.Players.Max, latency)
	}

	stateMu.Lock()
	fs := observe(addr, status, err)
	stateMu.Unlock()

	if fs != nil {
		announce(addr, fs)
	}
}

// observe folds one poll result into lastState and returns the
// announcement it warrants, if any. Callers hold stateMu.
func observe(addr string, status *slp.Status, err error) format.FormattedString {
	prev := lastState[addr]
	if err != nil {
		log.Errorf("Failed to ping %s: %s", addr, err)
		if prev != nil && !prev.failing {
			prev.failing = true
			return format.FormattedString{{Text: fmt.Sprintf("%s went offline", addr)}}
		}
		return nil
	}

	motd := status.Description.Legacy()
	cur := &serverState{motd: motd, online: status.Players.Online, max: status.Players.Max}
	lastState[addr] = cur

	switch {
	case prev == nil:
		// First observation, nothing to compare against.
	case prev.failing:
		fs := format.FormattedString{{Text: fmt.Sprintf("%s is back online: ", addr)}}
		return append(fs, format.Spans(motd)...)
	case prev.motd != motd:
		fs := format.FormattedString{{Text: fmt.Sprintf("%s changed its MOTD: ", addr)}}
		return append(fs, format.Spans(motd)...)
	case prev.online != cur.online || prev.max != cur.max:
		return format.FormattedString{{Text: fmt.Sprintf("%s player count: %d/%d", addr, cur.online, cur.max)}}
	}
	return nil
}

// announce posts `fs` to every channel mapped to `addr`.
func announce(addr string, fs format.FormattedString) {
	log.Infof("Announcing for %s: %s", addr, fs.RenderPlain())
	set := conf.Servers[addr]
	for _, c := range set.IRC {
		iAnnounce(c, fs)
	}
	for _, c := range set.Discord {
		dAnnounce(c, fs)
	}
}

// statusLine renders the last known state of `addr` for command replies.
func statusLine(addr string) format.FormattedString {
	st := lastState[addr]
	if st == nil || st.failing {
		return format.FormattedString{{Text: fmt.Sprintf("%s is unreachable", addr)}}
	}
	fs := format.FormattedString{{Text: fmt.Sprintf("%s [%d/%d] ", addr, st.online, st.max)}}
	return append(fs, format.Spans(st.motd)...)
}

// hasCommand checks for one of the configured command characters at the start of a message
func hasCommand(message, commandChars string) bool {
	firstRune, _ := utf8.DecodeRuneInString(message)
	return firstRune != 0 && strings.ContainsRune(commandChars, firstRune)
}

// incomingIRC is called on every message from a joined IRC channel and
// answers status commands.
func incomingIRC(nick, channel, message string) {
	if !hasCommand(message, conf.IRC.CommandChars) {
		return
	}
	log.Infof("IRC %s <%s> %s", channel, nick, message)

	stateMu.Lock()
	defer stateMu.Unlock()
	for _, addr := range ircServers[channel] {
		iAnnounce(channel, statusLine(addr))
	}
}

// incomingDiscord is called on every message from a mapped Discord channel
// and answers status commands.
func incomingDiscord(nick, channel, message string) {
	if !hasCommand(message, conf.Discord.CommandChars) {
		return
	}
	log.Infof("DIS %s <%s> %s", channel, nick, message)

	stateMu.Lock()
	defer stateMu.Unlock()
	for _, addr := range discordServers[channel] {
		dAnnounce(channel, statusLine(addr))
	}
}
