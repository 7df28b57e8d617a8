// Package rules - /rules update subcommand
package rules

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AegisWorks/AegisBotGo/pkg/database"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/AegisWorks/AegisBotGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createUpdateCommand creates the /rules update subcommand
func createUpdateCommand() *discord.Command {
	return discord.NewCommand(
		"update",
		"Replace the server rules text",
		"rules",
		updateHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "text",
			Description: "New rules text. Use \\n or | for line breaks.",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionAdministrator)
}

// unescapeRules turns the single-line option value into the stored
// multi-line rules text. Slash command options cannot carry newlines, so
// both "\n" and "|" act as line breaks.
func unescapeRules(text string) string {
	text = strings.ReplaceAll(text, "\\n", "\n")
	text = strings.ReplaceAll(text, "|", "\n")
	return strings.TrimSpace(text)
}

// updateHandler handles the /rules update command
func updateHandler(ctx *discord.CommandContext) error {
	text := unescapeRules(ctx.GetStringOption("text"))
	if text == "" {
		return ctx.ReplyEphemeral("❌ The rules text cannot be empty.")
	}

	doc := models.RulesDocument{
		GuildID:   ctx.Interaction.GuildID,
		Content:   text,
		UpdatedBy: ctx.User().ID,
		UpdatedAt: time.Now(),
	}

	opCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := database.NewRulesRepository(database.Get())
	if err := repo.Save(opCtx, doc); err != nil {
		if err == database.ErrDeferredWrite {
			return ctx.ReplyEphemeral("⚠️ Rules updated, but the database is offline; the write is queued.")
		}
		logger.Error(fmt.Sprintf("Rules update failed for guild %s: %v", doc.GuildID, err), "Commands")
		return ctx.ReplyEphemeral("⚠️ Rules updated locally, but the write failed; it will be retried.")
	}

	return ctx.ReplyEphemeral("✅ Server rules updated. Use `/rules send` to post them.")
}
