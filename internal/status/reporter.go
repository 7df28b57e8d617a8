// Package status reports the bot's liveness: a ready announcement and a
// periodic status embed in the status channel, an MQTT heartbeat on the same
// interval, and a snapshot for the ops HTTP API.
package status

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/pkg/database"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/AegisWorks/AegisBotGo/pkg/mqtt"
)

const heartbeatTopic = "aegis/bot/heartbeat"

// Reporter drives the periodic liveness reporting
type Reporter struct {
	client    *discord.ExtendedClient
	channelID string
	interval  time.Duration
	stop      chan struct{}
	stopOnce  sync.Once
}

var (
	reporter *Reporter
	once     sync.Once
)

// Init initializes the global reporter. A zero or negative interval falls
// back to 10 minutes.
func Init(client *discord.ExtendedClient, channelID string, interval time.Duration) *Reporter {
	once.Do(func() {
		if interval <= 0 {
			interval = 10 * time.Minute
		}
		reporter = &Reporter{
			client:    client,
			channelID: channelID,
			interval:  interval,
			stop:      make(chan struct{}),
		}
	})
	return reporter
}

// Get returns the global reporter
func Get() *Reporter {
	return reporter
}

// Start announces readiness and begins the periodic reporting loop
func (r *Reporter) Start() {
	r.announceReady()

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.report()
			case <-r.stop:
				return
			}
		}
	}()

	logger.System(fmt.Sprintf("Status reporter started (every %s)", r.interval), "Status")
}

// Stop halts the periodic reporting loop
func (r *Reporter) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// announceReady posts the startup embed to the status channel
func (r *Reporter) announceReady() {
	if r.channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🟢 AegisBot is online",
		Description: "Connected and watching the server.",
		Color:       0x2ECC71,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if _, err := r.client.Session.ChannelMessageSendEmbed(r.channelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Could not post ready announcement: %v", err), "Status")
	}
}

// report posts the status embed and publishes the MQTT heartbeat
func (r *Reporter) report() {
	if r.channelID != "" {
		if _, err := r.client.Session.ChannelMessageSendEmbed(r.channelID, r.Embed()); err != nil {
			logger.Error(fmt.Sprintf("Could not post status embed: %v", err), "Status")
		}
	}

	if mq := mqtt.Get(); mq != nil && mq.IsConnected() {
		if err := mq.Publish(heartbeatTopic, r.Snapshot()); err != nil {
			logger.Warn(fmt.Sprintf("Heartbeat publish failed: %v", err), "Status")
		}
	}
}

// NotifyShutdown posts the shutdown alert to the status channel. Called from
// main during graceful shutdown, before the session closes.
func (r *Reporter) NotifyShutdown() {
	if r.channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🔴 AegisBot is shutting down",
		Description: fmt.Sprintf("Uptime was **%s**. Scheduled unmutes will not survive the restart.", formatUptime(r.client.Uptime())),
		Color:       0xE74C3C,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if _, err := r.client.Session.ChannelMessageSendEmbed(r.channelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Could not post shutdown alert: %v", err), "Status")
	}
}

// Embed builds the liveness status embed
func (r *Reporter) Embed() *discordgo.MessageEmbed {
	dbStatus, _ := database.Get().GetStatus()

	cpuField := "n/a"
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuField = fmt.Sprintf("%.1f%%", percents[0])
	}

	memField := "n/a"
	if vm, err := mem.VirtualMemory(); err == nil {
		memField = fmt.Sprintf("%.1f%% (%.0f MB used)", vm.UsedPercent, float64(vm.Used)/1024/1024)
	}

	warned, pending := moderationCounters()

	return &discordgo.MessageEmbed{
		Title: "📊 Bot status",
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🏓 Ping", Value: fmt.Sprintf("%dms", r.client.Session.HeartbeatLatency().Milliseconds()), Inline: true},
			{Name: "⏱️ Uptime", Value: formatUptime(r.client.Uptime()), Inline: true},
			{Name: "🌐 Servers", Value: fmt.Sprintf("%d", r.client.GuildCount()), Inline: true},
			{Name: "🧠 Memory", Value: memField, Inline: true},
			{Name: "⚙️ CPU", Value: cpuField, Inline: true},
			{Name: "🗄️ Database", Value: dbStatus, Inline: true},
			{Name: "⚠️ Warned members", Value: fmt.Sprintf("%d", warned), Inline: true},
			{Name: "🔇 Pending unmutes", Value: fmt.Sprintf("%d", pending), Inline: true},
			{Name: "🧵 Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Snapshot returns the liveness data as a map for the MQTT heartbeat and
// the ops HTTP API
func (r *Reporter) Snapshot() map[string]interface{} {
	_, dbOnline := database.Get().GetStatus()
	warned, pending := moderationCounters()

	return map[string]interface{}{
		"ready":          r.client.IsReady(),
		"uptimeSeconds":  int64(r.client.Uptime().Seconds()),
		"guilds":         r.client.GuildCount(),
		"pingMs":         r.client.Session.HeartbeatLatency().Milliseconds(),
		"databaseOnline": dbOnline,
		"warnedUsers":    warned,
		"pendingUnmutes": pending,
		"timestamp":      time.Now().Format(time.RFC3339),
	}
}

// moderationCounters reads the live moderation state, zero when the service
// has not been initialized
func moderationCounters() (warned, pending int) {
	svc := moderation.Get()
	if svc == nil {
		return 0, 0
	}
	return svc.Store.WarnedUsers(), svc.Scheduler.PendingCount()
}

// formatUptime renders a duration as "2d 3h 4m"
func formatUptime(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
