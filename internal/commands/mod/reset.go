// Package mod - /warn reset subcommand
package mod

import (
	"context"
	"fmt"
	"time"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createResetCommand creates the /warn reset subcommand
func createResetCommand() *discord.Command {
	return discord.NewCommand(
		"reset",
		"Reset a member's warning count to zero",
		"mod",
		resetHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member whose warnings to reset",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// resetHandler handles the /warn reset command
func resetHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	svc := moderation.Get()
	if svc == nil {
		return ctx.ReplyEphemeral("❌ Moderation service is not available.")
	}

	opCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The in-memory count is zeroed even when the write is deferred; the
	// offline queue reconciles storage later.
	if err := svc.Store.Reset(opCtx, user.ID); err != nil {
		logger.Warn(fmt.Sprintf("Warning reset for %s not yet durable: %v", user.ID, err), "Commands")
	}

	return ctx.Reply(fmt.Sprintf("✅ Warnings for **%s** have been reset.\n**Moderator:** %s",
		user.Username, ctx.User().Username))
}
