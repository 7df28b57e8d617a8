// Package discord provides the event handler for managing Discord events.
package discord

import (
	"sync"

	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// EventHandler manages event registration on the underlying session
type EventHandler struct {
	client *ExtendedClient
	events []interface{}
	mu     sync.RWMutex
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(client *ExtendedClient) *EventHandler {
	return &EventHandler{
		client: client,
		events: make([]interface{}, 0),
	}
}

// RegisterEvent adds an event handler to the Discord session
func (eh *EventHandler) RegisterEvent(handler interface{}) {
	eh.client.Session.AddHandler(handler)
	eh.mu.Lock()
	eh.events = append(eh.events, handler)
	eh.mu.Unlock()
}

// Count returns how many event handlers have been registered
func (eh *EventHandler) Count() int {
	eh.mu.RLock()
	defer eh.mu.RUnlock()
	return len(eh.events)
}

// The On* methods take plain func signatures on purpose: discordgo's
// AddHandler type-switches on the unnamed func type and silently drops
// anything else, so named handler types would never be called.

// OnReady registers a ready event handler
func (eh *EventHandler) OnReady(handler func(s *discordgo.Session, r *discordgo.Ready)) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'Ready' registered", "EventHandler")
}

// OnGuildCreate registers a guild create event handler
func (eh *EventHandler) OnGuildCreate(handler func(s *discordgo.Session, g *discordgo.GuildCreate)) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'GuildCreate' registered", "EventHandler")
}

// OnGuildDelete registers a guild delete event handler
func (eh *EventHandler) OnGuildDelete(handler func(s *discordgo.Session, g *discordgo.GuildDelete)) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'GuildDelete' registered", "EventHandler")
}

// OnMessageCreate registers a message create event handler
func (eh *EventHandler) OnMessageCreate(handler func(s *discordgo.Session, m *discordgo.MessageCreate)) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'MessageCreate' registered", "EventHandler")
}

// OnGuildMemberAdd registers a guild member add event handler
func (eh *EventHandler) OnGuildMemberAdd(handler func(s *discordgo.Session, m *discordgo.GuildMemberAdd)) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'GuildMemberAdd' registered", "EventHandler")
}

// OnGuildMemberRemove registers a guild member remove event handler
func (eh *EventHandler) OnGuildMemberRemove(handler func(s *discordgo.Session, m *discordgo.GuildMemberRemove)) {
	eh.RegisterEvent(handler)
	logger.Debug("Event 'GuildMemberRemove' registered", "EventHandler")
}
