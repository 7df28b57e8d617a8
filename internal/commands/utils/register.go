// Package utils provides utility commands (/ping, /status)
package utils

import (
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
)

// RegisterUtilCommands registers the utility commands
func RegisterUtilCommands(client *discord.ExtendedClient) {
	client.CommandHandler.RegisterCommand(createPingCommand())
	client.CommandHandler.RegisterCommand(createStatusCommand())
}
