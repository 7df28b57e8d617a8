// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/AegisWorks/AegisBotGo/pkg/database"
	"github.com/AegisWorks/AegisBotGo/pkg/discord"
	"github.com/gin-gonic/gin"
)

// ModerationSnapshot reports the live moderation counters for the ops API.
// Injected from main to keep this package free of the moderation wiring.
type ModerationSnapshot func() map[string]interface{}

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, snapshot ModerationSnapshot) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/moderation", moderationHandler(snapshot))
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "AegisBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// moderationHandler returns the warning and mute counters
func moderationHandler(snapshot ModerationSnapshot) gin.HandlerFunc {
	return func(c *gin.Context) {
		if snapshot == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Moderation service not initialized",
			})
			return
		}
		c.JSON(http.StatusOK, snapshot())
	}
}
