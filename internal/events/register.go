// Package events provides a registry for organizing bot events.
package events

import (
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registering bot events...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (join/leave)
	RegisterMemberEvents(client)

	// Message events (moderation filter)
	RegisterMessageEvents(client)

	logger.Success("✅ All events registered", "Events")
}
