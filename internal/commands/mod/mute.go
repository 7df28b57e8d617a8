// Package mod - /mute command
package mod

import (
	"fmt"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the /mute command
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Temporarily mute a member",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Member to mute",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "time",
			Description: "Mute duration (e.g. 10m, 2h, 1d)",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionManageRoles)
}

// muteHandler handles the /mute command
func muteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyEphemeral("❌ You must specify a user.")
	}

	token := ctx.GetStringOption("time")
	duration, err := moderation.ParseDuration(token)
	if err != nil {
		// No side effects on a malformed token
		return ctx.ReplyEphemeral("❌ Invalid duration format. Use a number followed by `m`, `h` or `d`, e.g. `10m`, `2h`, `1d`.")
	}

	svc := moderation.Get()
	if svc == nil {
		return ctx.ReplyEphemeral("❌ Moderation service is not available.")
	}

	subject := moderation.Subject{GuildID: ctx.Interaction.GuildID, UserID: user.ID}
	if _, err := svc.Scheduler.Apply(subject, duration); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Could not mute the member: %v", err))
	}

	return ctx.Reply(fmt.Sprintf("🔇 **%s** has been muted for **%s**.\n**Moderator:** %s",
		user.Username, token, ctx.User().Username))
}
