package dev

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestDebugCommandIsDevOnly(t *testing.T) {
	cmd := createDebugCommand()

	if !cmd.IsDev {
		t.Error("debug must only be registered in the dev guild")
	}
	if cmd.UserPermissions != discordgo.PermissionAdministrator {
		t.Errorf("expected Administrator permission, got %d", cmd.UserPermissions)
	}
	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}
