// Package events provides event handlers for member events
package events

import (
	"fmt"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.EventHandler.OnGuildMemberAdd(onGuildMemberAdd)
	client.EventHandler.OnGuildMemberRemove(onGuildMemberRemove)
}

// onGuildMemberAdd is called when a member joins. Members who rejoin with
// warnings on record are flagged to the moderators.
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 New member: %s in server %s", m.User.Username, m.GuildID), "Member")

	svc := moderation.Get()
	if svc == nil {
		return
	}

	if count := svc.Store.Get(m.User.ID); count > 0 {
		channelID := discord.Get().GetConfig().WarningChannelID
		if channelID == "" {
			return
		}
		msg := fmt.Sprintf("👀 <@%s> rejoined with **%d** warning(s) on record.", m.User.ID, count)
		if _, err := s.ChannelMessageSend(channelID, msg); err != nil {
			logger.Error(fmt.Sprintf("Could not flag rejoining member: %v", err), "Member")
		}
	}
}

// onGuildMemberRemove is called when a member leaves. Warnings are kept;
// they apply again if the member returns.
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Member left: %s from server %s", m.User.Username, m.GuildID), "Member")
}
