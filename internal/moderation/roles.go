package moderation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// ErrMuteRoleMissing is returned when the configured mute role does not
// exist in the target guild.
var ErrMuteRoleMissing = errors.New("mute role not found in guild")

// GuildRoles implements RoleManager on top of the Discord session. The mute
// role is resolved by name per guild and cached.
type GuildRoles struct {
	session  *discordgo.Session
	roleName string

	mu    sync.Mutex
	cache map[string]string // guildID -> roleID
}

// NewGuildRoles creates a GuildRoles manager for the named role
func NewGuildRoles(session *discordgo.Session, roleName string) *GuildRoles {
	return &GuildRoles{
		session:  session,
		roleName: roleName,
		cache:    make(map[string]string),
	}
}

// roleID resolves the mute role ID for a guild, consulting the cache first
func (g *GuildRoles) roleID(guildID string) (string, error) {
	g.mu.Lock()
	if id, ok := g.cache[guildID]; ok {
		g.mu.Unlock()
		return id, nil
	}
	g.mu.Unlock()

	roles, err := g.session.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("list roles for guild %s: %w", guildID, err)
	}

	for _, role := range roles {
		if role.Name == g.roleName {
			g.mu.Lock()
			g.cache[guildID] = role.ID
			g.mu.Unlock()
			return role.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q in guild %s", ErrMuteRoleMissing, g.roleName, guildID)
}

// GrantMute adds the mute role to the subject
func (g *GuildRoles) GrantMute(subject Subject) error {
	roleID, err := g.roleID(subject.GuildID)
	if err != nil {
		return err
	}
	return g.session.GuildMemberRoleAdd(subject.GuildID, subject.UserID, roleID)
}

// RevokeMute removes the mute role from the subject. A missing role, a
// member who already left, or a member without the role all count as
// success: the restricted state is absent either way.
func (g *GuildRoles) RevokeMute(subject Subject) error {
	roleID, err := g.roleID(subject.GuildID)
	if err != nil {
		if errors.Is(err, ErrMuteRoleMissing) {
			return nil
		}
		return err
	}

	err = g.session.GuildMemberRoleRemove(subject.GuildID, subject.UserID, roleID)
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMember, discordgo.ErrCodeUnknownRole, discordgo.ErrCodeUnknownUser:
			return nil
		}
	}
	return err
}
