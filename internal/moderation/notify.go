package moderation

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/AegisWorks/AegisBotGo/pkg/logger"
)

// ChannelNotifier posts moderation notifications to the warning channel
type ChannelNotifier struct {
	session   *discordgo.Session
	channelID string
}

// NewChannelNotifier creates a notifier posting to the given channel
func NewChannelNotifier(session *discordgo.Session, channelID string) *ChannelNotifier {
	return &ChannelNotifier{session: session, channelID: channelID}
}

func (n *ChannelNotifier) send(message string) {
	if n.channelID == "" {
		return
	}
	if _, err := n.session.ChannelMessageSend(n.channelID, message); err != nil {
		logger.Error(fmt.Sprintf("Failed to post to warning channel: %v", err), "Notifier")
	}
}

// WarningRecorded announces a new warning with its reason and total
func (n *ChannelNotifier) WarningRecorded(subject Subject, reason string, count int) {
	n.send(fmt.Sprintf("⚠️ **New warning!**\n**User:** <@%s>\n**Total warnings:** %d\n**Reason:** %s",
		subject.UserID, count, reason))
}

// AutoMuteApplied announces an automatic threshold mute
func (n *ChannelNotifier) AutoMuteApplied(subject Subject) {
	n.send(fmt.Sprintf("🔇 <@%s> was automatically muted!", subject.UserID))
}

// AutoUnmuteApplied announces that a mute expired
func (n *ChannelNotifier) AutoUnmuteApplied(subject Subject) {
	n.send(fmt.Sprintf("🔊 <@%s> was automatically unmuted!", subject.UserID))
}

// ManualUnmuteApplied announces a moderator-issued unmute
func (n *ChannelNotifier) ManualUnmuteApplied(subject Subject) {
	n.send(fmt.Sprintf("🔊 <@%s> has been unmuted.", subject.UserID))
}
