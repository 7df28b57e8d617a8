// Package events - message moderation filter
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/AegisWorks/AegisBotGo/pkg/errors"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers the message moderation filter
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnMessageCreate(onMessageCreate)
}

// onMessageCreate inspects every non-bot message against the denylist. On a
// violation the message is deleted, the channel is admonished, and the
// author receives an automatic warning (which may escalate to a mute).
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		// DMs are not moderated
		return
	}

	svc := moderation.Get()
	if svc == nil {
		return
	}

	violation, ok := svc.Policy.Inspect(m.Content)
	if !ok {
		return
	}

	go func() {
		defer errors.RecoverMiddleware()()

		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			logger.Error(fmt.Sprintf("Could not delete message %s: %v", m.ID, err), "Filter")
		}

		if _, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("🚫 <@%s>, that language is not allowed here.", m.Author.ID)); err != nil {
			logger.Error(fmt.Sprintf("Could not admonish in channel %s: %v", m.ChannelID, err), "Filter")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		subject := moderation.Subject{GuildID: m.GuildID, UserID: m.Author.ID}
		if _, _, err := svc.Escalator.OnViolation(ctx, subject, violation.Reason()); err != nil {
			logger.Error(fmt.Sprintf("Auto-warning for %s failed: %v", m.Author.ID, err), "Filter")
		}
	}()
}
