package home

import (
	"errors"
	"fmt"
	"sort"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/guhdeats/speedwagon/sys"
)

func registerCustomCommands(st *sys.Store) {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "createcommand",
		Description: "Create a new custom command (Provider role only)",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "command_name",
				Description: "Name of the command (without /)",
				Required:    true,
			},
			discord.ApplicationCommandOptionString{
				Name:        "response",
				Description: "What the command should respond with",
				Required:    true,
			},
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleCreateCommand(st, event)
	})

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "editcommand",
		Description: "Edit an existing custom command (Provider role only)",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "command_name",
				Description: "Name of the command to edit",
				Required:    true,
			},
			discord.ApplicationCommandOptionString{
				Name:        "response",
				Description: "The new response",
				Required:    true,
			},
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleEditCommand(st, event)
	})

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "deletecommand",
		Description: "Delete a custom command (Provider role only)",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "command_name",
				Description: "Name of the command to delete",
				Required:    true,
			},
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleDeleteCommand(st, event)
	})

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "listcommands",
		Description: "List all custom commands",
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleListCommands(st, event)
	})
}

func handleCreateCommand(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	data := event.SlashCommandInteractionData()
	name := sys.NormalizeCommandName(data.String("command_name"))
	response := data.String("response")

	if err := st.CreateCustomCommand(name, response); err != nil {
		if errors.Is(err, sys.ErrCommandExists) {
			respond(event, fmt.Sprintf(sys.ErrCommandTaken, name), true)
			return
		}
		sys.LogError("Failed to create custom command %q: %v", name, err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	respond(event, fmt.Sprintf(sys.MsgCommandCreated, name), true)

	// Make it invocable from the command picker right away.
	if guildID := event.GuildID(); guildID != nil {
		client := event.Client()
		gid := *guildID
		go sys.SyncCustomCommand(client, gid, name, response)
	}
}

func handleEditCommand(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	data := event.SlashCommandInteractionData()
	name := sys.NormalizeCommandName(data.String("command_name"))
	response := data.String("response")

	if err := st.UpdateCustomCommand(name, response); err != nil {
		if errors.Is(err, sys.ErrUnknownCommand) {
			respond(event, fmt.Sprintf(sys.ErrCommandMissing, name), true)
			return
		}
		sys.LogError("Failed to edit custom command %q: %v", name, err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	respond(event, fmt.Sprintf(sys.MsgCommandEdited, name), true)
}

func handleDeleteCommand(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	data := event.SlashCommandInteractionData()
	name := sys.NormalizeCommandName(data.String("command_name"))

	if err := st.DeleteCustomCommand(name); err != nil {
		if errors.Is(err, sys.ErrUnknownCommand) {
			respond(event, fmt.Sprintf(sys.ErrCommandMissing, name), true)
			return
		}
		sys.LogError("Failed to delete custom command %q: %v", name, err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	respond(event, fmt.Sprintf(sys.MsgCommandDeleted, name), true)

	if guildID := event.GuildID(); guildID != nil {
		client := event.Client()
		gid := *guildID
		go sys.UnsyncCustomCommand(client, gid, name)
	}
}

func handleListCommands(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	cmds, err := st.CustomCommands()
	if err != nil {
		sys.LogError("Failed to list custom commands: %v", err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}
	if len(cmds) == 0 {
		respond(event, sys.MsgNoCustomCommands, true)
		return
	}

	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	builder := discord.NewEmbedBuilder().
		SetTitle("📝 Custom Commands").
		SetDescription("Here are all your custom commands:").
		SetColor(0x00ff00)
	for _, name := range names {
		response := cmds[name]
		if r := []rune(response); len(r) > 50 {
			response = string(r[:50]) + "..."
		}
		builder.AddField("/"+name, response, false)
	}

	respondEmbed(event, builder.Build(), true)
}
