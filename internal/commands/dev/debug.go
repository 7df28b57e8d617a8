// Package dev contains commands registered only in the development guild.
package dev

import (
	"fmt"
	"runtime"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/database"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createDebugCommand creates the /debug command
func createDebugCommand() *discord.Command {
	return discord.NewCommand(
		"debug",
		"Show bot internals",
		"dev",
		debugHandler,
	).WithUserPermissions(discordgo.PermissionAdministrator).AsDev()
}

// debugHandler handles the /debug command
func debugHandler(ctx *discord.CommandContext) error {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	dbStatus := "Not initialized"
	queued := 0
	if db := database.Get(); db != nil {
		dbStatus, _ = db.GetStatus()
		queued = db.QueuedWrites()
	}

	warned := 0
	pending := 0
	if svc := moderation.Get(); svc != nil {
		warned = len(svc.Store.List())
		pending = svc.Scheduler.PendingCount()
	}

	embed := &discordgo.MessageEmbed{
		Title: "🔧 Debug",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guilds", Value: fmt.Sprintf("%d", ctx.Client.GuildCount()), Inline: true},
			{Name: "Commands", Value: fmt.Sprintf("%d", ctx.Client.Commands.Size()), Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "Heap", Value: fmt.Sprintf("%.1f MB", float64(memStats.HeapAlloc)/1024/1024), Inline: true},
			{Name: "Database", Value: dbStatus, Inline: true},
			{Name: "Queued writes", Value: fmt.Sprintf("%d", queued), Inline: true},
			{Name: "Warned members", Value: fmt.Sprintf("%d", warned), Inline: true},
			{Name: "Pending unmutes", Value: fmt.Sprintf("%d", pending), Inline: true},
			{Name: "Go", Value: runtime.Version(), Inline: true},
		},
	}
	return ctx.ReplyEphemeralEmbed(embed)
}
