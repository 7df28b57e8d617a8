// Package mod - /unmute command
package mod

import (
	"fmt"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUnmuteCommand creates the /unmute command
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Unmute a member before their mute expires",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to unmute",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionManageRoles)
}

// unmuteHandler handles the /unmute command
func unmuteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	svc := moderation.Get()
	if svc == nil {
		return ctx.ReplyEphemeral("❌ Moderation service is not available.")
	}

	subject := moderation.Subject{GuildID: ctx.Interaction.GuildID, UserID: user.ID}

	if task, ok := svc.Scheduler.Pending(subject); ok && svc.Scheduler.Cancel(task) {
		return ctx.Reply(fmt.Sprintf("🔊 **%s** has been unmuted.\n**Moderator:** %s",
			user.Username, ctx.User().Username))
	}

	// No reversal pending: the member was muted externally or the timer
	// already fired. Revoking an absent role counts as success.
	if err := svc.Roles.RevokeMute(subject); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Could not unmute the member: %v", err))
	}
	return ctx.Reply(fmt.Sprintf("🔊 **%s** has been unmuted (no scheduled unmute was pending).\n**Moderator:** %s",
		user.Username, ctx.User().Username))
}
