package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("mute", "Temporarily mute a member", "mod", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "mute" {
		t.Errorf("Name = %v, want %v", cmd.Name, "mute")
	}

	if cmd.Description != "Temporarily mute a member" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Temporarily mute a member")
	}

	if cmd.Category != "mod" {
		t.Errorf("Category = %v, want %v", cmd.Category, "mod")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandWithOptions verifies the WithOptions builder method
func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "The member to mute",
		Required:    true,
	}

	cmd := NewCommand("mute", "Temporarily mute a member", "mod", handler).
		WithOptions(option)

	if cmd.Options == nil {
		t.Fatal("Options is nil")
	}

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "user" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "user")
	}
}

// TestCommandWithPermissions verifies the permission builder methods
func TestCommandWithPermissions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("mute", "Temporarily mute a member", "mod", handler).
		WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionManageRoles)

	if cmd.UserPermissions != discordgo.PermissionModerateMembers {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionModerateMembers)
	}

	if cmd.BotPermissions != discordgo.PermissionManageRoles {
		t.Errorf("BotPermissions = %v, want %v", cmd.BotPermissions, discordgo.PermissionManageRoles)
	}
}

// TestToApplicationCommand verifies conversion to a Discord application command
func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "time",
		Description: "Mute duration (e.g. 10m, 2h, 1d)",
		Required:    true,
	}

	cmd := NewCommand("mute", "Temporarily mute a member", "mod", handler).
		WithOptions(option)

	appCmd := cmd.ToApplicationCommand()

	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}

	if appCmd.Name != "mute" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "mute")
	}

	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}
}

// TestFullCommandName verifies the routing key for plain, subcommand and
// subcommand group interactions
func TestFullCommandName(t *testing.T) {
	tests := []struct {
		name string
		data discordgo.ApplicationCommandInteractionData
		want string
	}{
		{
			name: "plain command",
			data: discordgo.ApplicationCommandInteractionData{Name: "ping"},
			want: "ping",
		},
		{
			name: "subcommand",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "warn",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Type: discordgo.ApplicationCommandOptionSubCommand,
						Name: "add",
					},
				},
			},
			want: "warn.add",
		},
		{
			name: "subcommand group",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "config",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Type: discordgo.ApplicationCommandOptionSubCommandGroup,
						Name: "filter",
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{
								Type: discordgo.ApplicationCommandOptionSubCommand,
								Name: "show",
							},
						},
					},
				},
			},
			want: "config.filter.show",
		},
		{
			name: "non-subcommand option",
			data: discordgo.ApplicationCommandInteractionData{
				Name: "mute",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Type: discordgo.ApplicationCommandOptionUser,
						Name: "user",
					},
				},
			},
			want: "mute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fullCommandName(tt.data); got != tt.want {
				t.Errorf("fullCommandName() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestBuildCommandGroup verifies that a group registers its subcommands under
// their dotted routing keys
func TestBuildCommandGroup(t *testing.T) {
	c := &ExtendedClient{Commands: NewCommandCollection()}
	ch := NewCommandHandler(c)

	run := func(ctx *CommandContext) error { return nil }
	add := NewCommand("add", "Warn a member", "mod", run)
	check := NewCommand("check", "Check a member's warnings", "mod", run)

	group := ch.BuildCommandGroup("warn", "Warning management", add, check)

	if group.Name != "warn" {
		t.Errorf("group Name = %v, want warn", group.Name)
	}
	if len(group.Options) != 2 {
		t.Fatalf("group Options length = %v, want 2", len(group.Options))
	}
	for _, opt := range group.Options {
		if opt.Type != discordgo.ApplicationCommandOptionSubCommand {
			t.Errorf("option %s Type = %v, want subcommand", opt.Name, opt.Type)
		}
	}

	if _, ok := c.Commands.Get("warn.add"); !ok {
		t.Error("warn.add not routed")
	}
	if _, ok := c.Commands.Get("warn.check"); !ok {
		t.Error("warn.check not routed")
	}
	if _, ok := c.Commands.Get("warn"); ok {
		t.Error("group name itself must not be routed as a command")
	}
}

// TestCommandAsDev verifies dev commands are routed to the dev-guild list
func TestCommandAsDev(t *testing.T) {
	c, err := NewClient("test-token")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	ch := c.CommandHandler

	run := func(ctx *CommandContext) error { return nil }
	ch.RegisterCommand(NewCommand("debug", "Show bot internals", "dev", run).AsDev())
	ch.RegisterCommand(NewCommand("ping", "Check latency", "utils", run))

	if len(ch.slashCommandsDev) != 1 {
		t.Fatalf("dev command list length = %v, want 1", len(ch.slashCommandsDev))
	}
	if ch.slashCommandsDev[0].Name != "debug" {
		t.Errorf("dev command = %v, want debug", ch.slashCommandsDev[0].Name)
	}
	if len(ch.slashCommands) != 1 {
		t.Fatalf("global command list length = %v, want 1", len(ch.slashCommands))
	}
	if ch.slashCommands[0].Name != "ping" {
		t.Errorf("global command = %v, want ping", ch.slashCommands[0].Name)
	}

	cmd, ok := c.Commands.Get("debug")
	if !ok {
		t.Fatal("debug not routed")
	}
	if !cmd.IsDev {
		t.Error("AsDev did not mark the command as dev-only")
	}
}
