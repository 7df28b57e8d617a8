// Package utils - /status command
package utils

import (
	"github.com/AegisWorks/AegisBotGo/internal/status"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
)

// createStatusCommand creates the /status command
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Show the bot's liveness status",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /status command. Gathering CPU numbers can take
// a moment, so the response is deferred first.
func statusHandler(ctx *discord.CommandContext) error {
	reporter := status.Get()
	if reporter == nil {
		return ctx.ReplyEphemeral("❌ Status reporter is not available.")
	}

	if err := ctx.Defer(); err != nil {
		return err
	}
	return ctx.EditReplyEmbed(reporter.Embed())
}
