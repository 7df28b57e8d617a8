// Package mod - /warn list subcommand
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createListCommand creates the /warn list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"List every member with at least one warning",
		"mod",
		listHandler,
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// listHandler handles the /warn list command
func listHandler(ctx *discord.CommandContext) error {
	svc := moderation.Get()
	if svc == nil {
		return ctx.ReplyEphemeral("❌ Moderation service is not available.")
	}

	records := svc.Store.List()
	if len(records) == 0 {
		return ctx.Reply("✅ Nobody has any warnings. A quiet day.")
	}

	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(fmt.Sprintf("<@%s> — **%d** warning(s)\n", rec.UserID, rec.Count))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚠️ Warned members",
		Description: sb.String(),
		Color:       0xFFA500,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Threshold for auto-mute: %d", svc.Escalator.Threshold()),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return ctx.ReplyEmbed(embed)
}
