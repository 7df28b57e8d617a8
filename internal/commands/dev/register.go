package dev

import (
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
)

// RegisterDevCommands registers the dev-guild-only commands
func RegisterDevCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createDebugCommand())
}
