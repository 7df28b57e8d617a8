// Package commands provides the registry wiring every slash command to the
// Discord client. Commands live in subdirectories by category.
package commands

import (
	"github.com/AegisWorks/AegisBotGo/internal/commands/dev"
	"github.com/AegisWorks/AegisBotGo/internal/commands/mod"
	"github.com/AegisWorks/AegisBotGo/internal/commands/rules"
	"github.com/AegisWorks/AegisBotGo/internal/commands/utils"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/ping, /status)
	utils.RegisterUtilCommands(client)

	// Moderation commands (/warn add|check|reset|list, /mute, /unmute)
	mod.RegisterModCommands(client)

	// Rules commands (/rules update|send)
	rules.RegisterRulesCommands(client)

	// Dev-guild-only commands (/debug)
	dev.RegisterDevCommands(client)
}
