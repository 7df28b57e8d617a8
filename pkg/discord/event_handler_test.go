package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// discordgo.AddHandler type-switches on the exact unnamed func type and logs
// "Invalid handler type" for anything else instead of returning an error. This
// captures that log to verify every On* registration path is actually accepted.
func TestEventHandlerSignaturesAccepted(t *testing.T) {
	var captured []string
	original := discordgo.Logger
	discordgo.Logger = func(msgL int, caller int, format string, a ...interface{}) {
		captured = append(captured, fmt.Sprintf(format, a...))
	}
	defer func() { discordgo.Logger = original }()

	client, err := NewClient("test-token")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	eh := client.EventHandler
	eh.OnReady(func(s *discordgo.Session, r *discordgo.Ready) {})
	eh.OnGuildCreate(func(s *discordgo.Session, g *discordgo.GuildCreate) {})
	eh.OnGuildDelete(func(s *discordgo.Session, g *discordgo.GuildDelete) {})
	eh.OnMessageCreate(func(s *discordgo.Session, m *discordgo.MessageCreate) {})
	eh.OnGuildMemberAdd(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {})
	eh.OnGuildMemberRemove(func(s *discordgo.Session, m *discordgo.GuildMemberRemove) {})

	for _, msg := range captured {
		if strings.Contains(msg, "Invalid handler type") {
			t.Fatalf("session rejected an event handler: %s", msg)
		}
	}

	if got := eh.Count(); got != 6 {
		t.Errorf("expected 6 registered events, got %d", got)
	}
}

func TestEventHandlerCount(t *testing.T) {
	client, err := NewClient("test-token")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	eh := client.EventHandler
	if eh.Count() != 0 {
		t.Fatalf("expected no events on a fresh handler, got %d", eh.Count())
	}

	eh.OnReady(func(s *discordgo.Session, r *discordgo.Ready) {})
	if eh.Count() != 1 {
		t.Errorf("expected 1 registered event, got %d", eh.Count())
	}
}
