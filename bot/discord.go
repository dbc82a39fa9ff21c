package bot

import (
	"fmt"
	"strings"
	"time"

	discord "github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/Cldfire/mc-legacy-formatting/format"
)

const maxTries = 5

func retryErrors(desc string, f func() error) {
	attempt := 1
	for {
		err := f()
		if err == nil {
			return
		}
		if attempt >= maxTries {
			log.Fatalf("Failed to %s [final attempt]: %s", desc, err)
		}
		log.Errorf("Failed to %s [attempt %d/%d]: %s", desc, attempt, maxTries, err)
		time.Sleep(time.Second)
		attempt++
	}
}

// DiscordConfig represents the required config to connect to Discord
type DiscordConfig struct {
	Token        string `json:"token"`
	CommandChars string `json:"command_chars"`
}

var (
	dBotID      string
	dSession    *discord.Session
	dGuilds     = map[string]string{}
	dGuildChans = map[string]map[string]string{}

	dMsgQueue = make(chan func())
)

func dInit() {
	retryErrors("initialise Discord session", func() (err error) {
		dSession, err = discord.New(fmt.Sprintf("Bot %s", conf.Discord.Token))
		return
	})

	retryErrors("get own Discord user", func() (err error) {
		u, err := dSession.User("@me")
		if err == nil {
			dBotID = u.ID
		}
		return
	})

	var guilds []*discord.UserGuild
	retryErrors("get guilds", func() (err error) {
		guilds, err = dSession.UserGuilds(99, "", "")
		return
	})

	for _, g := range guilds {
		var chans []*discord.Channel
		retryErrors(fmt.Sprintf("get channels for %s", g.Name), func() (err error) {
			chans, err = dSession.GuildChannels(g.ID)
			return
		})

		dGuilds[g.Name] = g.ID
		dGuildChans[g.Name] = map[string]string{}
		for _, c := range chans {
			if c.Type == discord.ChannelTypeGuildText {
				dGuildChans[g.Name][c.Name] = c.ID
			}
		}
	}

	dSession.AddHandler(dMessageCreate)

	retryErrors("connect to Discord", dSession.Open)

	go func() {
		for f := range dMsgQueue {
			f()
		}
	}()

	log.Infof("Connected to Discord")
}

func dMessageCreate(s *discord.Session, m *discord.MessageCreate) {
	if m.Author.ID == dBotID {
		return
	}

	c, err := s.Channel(m.ChannelID)
	if err != nil {
		log.Errorf("Failed to get channel for incoming message with CID %s: %s", m.ChannelID, err)
		return
	}

	g, err := s.Guild(c.GuildID)
	if err != nil {
		log.Errorf("Failed to get guild with ID %s: %s", c.GuildID, err)
		return
	}

	channel := fmt.Sprintf("%s#%s", g.Name, c.Name)
	incomingDiscord(m.Author.Username, channel, m.Content)
}

func dAnnounce(channel string, message format.FormattedString) {
	chanParts := strings.SplitN(channel, "#", 2)
	if len(chanParts) != 2 {
		log.Errorf("Bad Discord channel name %q, want \"Guild#channel\"", channel)
		return
	}
	chanID := dGuildChans[chanParts[0]][chanParts[1]]
	if chanID == "" {
		log.Errorf("No Discord channel found for %q", channel)
		return
	}

	rendered := message.RenderDiscord()

	dMsgQueue <- func() {
		_, err := dSession.ChannelMessageSend(chanID, rendered)
		if err != nil {
			log.Errorf("Failed to send message to %s: %s", chanID, err)
		}
	}
}
