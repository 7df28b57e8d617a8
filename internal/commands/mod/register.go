// Package mod provides the moderation command surface: the /warn group and
// the /mute and /unmute commands.
package mod

import (
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
)

// RegisterModCommands registers the warning group and the mute commands
func RegisterModCommands(client *discord.ExtendedClient) {
	warnGroup := client.CommandHandler.BuildCommandGroup(
		"warn",
		"Warning management",
		createAddCommand(),
		createCheckCommand(),
		createResetCommand(),
		createListCommand(),
	)
	client.CommandHandler.AddGlobalCommand(warnGroup)

	client.CommandHandler.RegisterCommand(createMuteCommand())
	client.CommandHandler.RegisterCommand(createUnmuteCommand())
}
