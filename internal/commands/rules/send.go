// Package rules - /rules send subcommand
package rules

import (
	"context"
	"fmt"
	"time"

	"github.com/AegisWorks/AegisBotGo/pkg/database"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createSendCommand creates the /rules send subcommand
func createSendCommand() *discord.Command {
	return discord.NewCommand(
		"send",
		"Post the server rules to the rules channel",
		"rules",
		sendHandler,
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// sendHandler handles the /rules send command
func sendHandler(ctx *discord.CommandContext) error {
	opCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := database.NewRulesRepository(database.Get())
	doc, err := repo.Get(opCtx, ctx.Interaction.GuildID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Could not load the rules: %v", err))
	}
	if doc == nil {
		return ctx.ReplyEphemeral("❌ No rules have been set yet. Use `/rules update` first.")
	}

	// Post to the configured rules channel, falling back to the channel
	// the command came from
	channelID := ctx.Client.GetConfig().RulesChannelID
	if channelID == "" {
		channelID = ctx.Interaction.ChannelID
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📋 Server Rules",
		Description: doc.Content,
		Color:       0x3498DB,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Last updated",
		},
		Timestamp: doc.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Could not post the rules: %v", err))
	}
	return ctx.ReplyEphemeral("✅ Rules posted.")
}
