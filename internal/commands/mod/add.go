// Package mod - /warn add subcommand
package mod

import (
	"context"
	"fmt"
	"time"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createAddCommand creates the /warn add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Warn a member",
		"mod",
		addHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to warn",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// addHandler handles the /warn add command
func addHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	reason := ctx.GetStringOption("reason")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ You must specify a reason.")
	}

	svc := moderation.Get()
	if svc == nil {
		return ctx.ReplyEphemeral("❌ Moderation service is not available.")
	}

	opCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subject := moderation.Subject{GuildID: ctx.Interaction.GuildID, UserID: user.ID}
	count, muted, err := svc.Escalator.OnViolation(opCtx, subject, reason)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Could not complete the warning: %v", err))
	}

	msg := fmt.Sprintf("⚠️ **%s** has been warned.\n**Reason:** %s\n**Warnings:** %d\n**Moderator:** %s",
		user.Username,
		reason,
		count,
		ctx.User().Username,
	)
	if muted {
		msg += "\n🔇 The warning threshold was reached; the member has been muted."
	}
	return ctx.Reply(msg)
}
