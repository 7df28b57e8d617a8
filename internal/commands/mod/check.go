// Package mod - /warn check subcommand
package mod

import (
	"fmt"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createCheckCommand creates the /warn check subcommand
func createCheckCommand() *discord.Command {
	return discord.NewCommand(
		"check",
		"Check a member's warning count",
		"mod",
		checkHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to check",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// checkHandler handles the /warn check command
func checkHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	svc := moderation.Get()
	if svc == nil {
		return ctx.ReplyEphemeral("❌ Moderation service is not available.")
	}

	count := svc.Store.Get(user.ID)

	embed := &discordgo.MessageEmbed{
		Title: "⚠️ Warning check",
		Color: 0xFFA500,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Member", Value: user.Username, Inline: true},
			{Name: "Warnings", Value: fmt.Sprintf("%d", count), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Threshold for auto-mute: %d", svc.Escalator.Threshold()),
		},
	}
	if count == 0 {
		embed.Title = "✅ Warning check"
		embed.Color = 0x00FF00
	}

	// Moderator-only information; keep the reply out of the channel
	return ctx.ReplyEphemeralEmbed(embed)
}
