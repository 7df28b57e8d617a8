// Package main is the entry point for the AegisBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AegisWorks/AegisBotGo/internal/commands"
	"github.com/AegisWorks/AegisBotGo/internal/events"
	"github.com/AegisWorks/AegisBotGo/internal/moderation"
	"github.com/AegisWorks/AegisBotGo/internal/status"
	"github.com/AegisWorks/AegisBotGo/pkg/config"
	"github.com/AegisWorks/AegisBotGo/pkg/database"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/AegisWorks/AegisBotGo/pkg/errors"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
	"github.com/AegisWorks/AegisBotGo/pkg/mqtt"
	"github.com/AegisWorks/AegisBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Starting AegisBot Go...", "Main")

	// Initialize error handler; the owner gets a DM on every report
	var discordClient *discord.ExtendedClient
	errHandler := errors.Init(cfg.ErrorWebhook)
	errHandler.SetOwnerNotifier(func(message string) {
		if discordClient == nil || cfg.OwnerID == "" {
			return
		}
		channel, err := discordClient.Session.UserChannelCreate(cfg.OwnerID)
		if err != nil {
			return
		}
		discordClient.Session.ChannelMessageSend(channel.ID, message)
	})
	defer errHandler.Stop()

	// Initialize database; startup continues offline and the reconnect
	// loop catches up later
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
	}
	defer func() {
		if db != nil {
			if err := db.Disconnect(); err != nil {
				logger.Warn(fmt.Sprintf("Error disconnecting database: %v", err), "Main")
			}
		}
	}()

	// Initialize MQTT
	mqttClientID := "aegisbot"
	if !cfg.IsProd() {
		mqttClientID = "aegisbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Initialize the moderation service on top of the session and the
	// warnings repository
	if _, err := moderation.Init(discordClient.Session, cfg, database.NewWarningsRepository(db)); err != nil {
		logger.Critical(fmt.Sprintf("Error initializing moderation service: %v", err), "Main")
		os.Exit(1)
	}

	// Initialize web server
	webServer := web.Init(cfg.LogsWebhook)
	web.SetupAPIRoutes(webServer, func() map[string]interface{} {
		if r := status.Get(); r != nil {
			return r.Snapshot()
		}
		return nil
	})
	webServer.StartAsync(cfg.Port)

	// Register commands and events
	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Start the liveness reporter
	interval, err := moderation.ParseDuration(cfg.StatusInterval)
	if err != nil {
		logger.Warn(fmt.Sprintf("Invalid STATUS_INTERVAL %q, using 10m", cfg.StatusInterval), "Main")
		interval = 10 * time.Minute
	}
	reporter := status.Init(discordClient, cfg.StatusChannelID, interval)
	reporter.Start()

	logger.Success("AegisBot Go started!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Shutting down AegisBot Go...", "Main")

	// Alert the status channel while the session is still open
	reporter.Stop()
	reporter.NotifyShutdown()

	if err := discordClient.Stop(); err != nil {
		logger.Warn(fmt.Sprintf("Error closing Discord session: %v", err), "Main")
	}
}
