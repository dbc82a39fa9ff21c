package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/Cldfire/mc-legacy-formatting/bot"
	"github.com/Cldfire/mc-legacy-formatting/format"
	"github.com/Cldfire/mc-legacy-formatting/slp"
)

func main() {
	debug := flag.Bool("debug", false, "Debug mode")
	confLocation := flag.String("config", "", "Config file location; runs the announce bot")
	server := flag.String("server", "", "Minecraft server address to ping")
	text := flag.String("text", "", "Text to parse; arguments or stdin are used otherwise")
	startChar := flag.String("start-char", "§", "Character that introduces formatting codes")
	spans := flag.Bool("spans", false, "Dump parsed spans instead of rendering")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	switch {
	case *confLocation != "":
		runBot(*confLocation)
	case *server != "":
		runPing(*server)
	default:
		runText(*text, *startChar, *spans)
	}
}

func runBot(confLocation string) {
	var conf bot.Config
	confJSON, err := os.ReadFile(confLocation)
	if err != nil {
		log.Fatalf("Failed to read config file %s: %s", confLocation, err)
	}

	err = json.Unmarshal(confJSON, &conf)
	if err != nil {
		log.Fatalf("Failed to parse config file: %s", err)
	}

	bot.Init(conf)

	log.Infof("Bot running.")
	<-make(chan struct{})
}

func runPing(addr string) {
	status, latency, err := slp.Ping(addr)
	if err != nil {
		log.Fatalf("Failed to ping %s: %s", addr, err)
	}

	fmt.Printf("version: %s\n", format.Spans(status.Version.Name).RenderANSI())
	fmt.Printf("players: %d/%d\n", status.Players.Online, status.Players.Max)
	fmt.Printf("latency: %s\n", latency)
	fmt.Println("description:")
	fmt.Println(format.Spans(status.Description.Legacy()).RenderANSI())

	if len(status.Players.Sample) > 0 {
		fmt.Println("sample:")
		for _, p := range status.Players.Sample {
			fmt.Println(format.Spans(p.Name).RenderANSI())
		}
	}
}

func runText(text, startChar string, dumpSpans bool) {
	if text == "" {
		text = strings.Join(flag.Args(), " ")
	}
	if text == "" {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %s", err)
		}
		text = string(in)
	}

	sc, _ := utf8.DecodeRuneInString(startChar)
	if sc == utf8.RuneError {
		log.Fatalf("Bad start character %q", startChar)
	}

	fs := format.SpansStartChar(sc, text)
	if dumpSpans {
		for _, s := range fs {
			line := fmt.Sprintf("%q color=%s styles=%s", s.Text, s.Color, s.Styles)
			if s.StrikethroughWhitespace {
				line += " strikethrough-whitespace"
			}
			fmt.Println(line)
		}
		return
	}

	fmt.Println(fs.RenderANSI())
}
