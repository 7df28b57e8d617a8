package moderation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/AegisWorks/AegisBotGo/pkg/config"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
)

// Service bundles the moderation engine for the command and event layers
type Service struct {
	Store     *Store
	Policy    *Policy
	Scheduler *Scheduler
	Escalator *Escalator
	Roles     *GuildRoles
	Notifier  *ChannelNotifier
}

var (
	service *Service
	once    sync.Once
)

// Init builds the global moderation service from configuration and hydrates
// the warning store from storage.
func Init(session *discordgo.Session, cfg *config.Config, repo WarningRepository) (*Service, error) {
	var err error
	once.Do(func() {
		service, err = newService(session, cfg, repo)
	})
	return service, err
}

// Get returns the global moderation service
func Get() *Service {
	return service
}

func newService(session *discordgo.Session, cfg *config.Config, repo WarningRepository) (*Service, error) {
	muteDuration, err := ParseDuration(cfg.MuteDuration)
	if err != nil {
		return nil, fmt.Errorf("muteDuration config: %w", err)
	}

	roles := NewGuildRoles(session, cfg.MuteRoleName)
	notifier := NewChannelNotifier(session, cfg.WarningChannelID)
	store := NewStore(repo)
	scheduler := NewScheduler(roles, notifier)
	escalator := NewEscalator(store, scheduler, notifier, cfg.WarnThreshold, muteDuration)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := store.Load(ctx); err != nil {
		// The bot stays usable; counts start from zero and reconcile on write
		logger.Warn(fmt.Sprintf("Could not hydrate warning store: %v", err), "Moderation")
	}

	return &Service{
		Store:     store,
		Policy:    NewPolicy(cfg.BannedWords),
		Scheduler: scheduler,
		Escalator: escalator,
		Roles:     roles,
		Notifier:  notifier,
	}, nil
}
