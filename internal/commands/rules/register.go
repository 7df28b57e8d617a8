// Package rules provides the /rules command group for managing the server
// rules document.
package rules

import (
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
)

// RegisterRulesCommands registers the /rules group
func RegisterRulesCommands(client *discord.ExtendedClient) {
	rulesGroup := client.CommandHandler.BuildCommandGroup(
		"rules",
		"Server rules management",
		createUpdateCommand(),
		createSendCommand(),
	)
	client.CommandHandler.AddGlobalCommand(rulesGroup)
}
