package home

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/omit"

	"github.com/guhdeats/speedwagon/sys"
)

func registerPauseBusiness(st *sys.Store) {
	manageChannels := discord.PermissionManageChannels

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "pause",
		Description:              "Pause the business with a custom message (Provider role only)",
		DefaultMemberPermissions: omit.New(&manageChannels),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "message",
				Description: "Custom message to display (e.g., 'will be open in 10')",
				Required:    true,
			},
		},
	}, handlePauseBusiness)
}

func handlePauseBusiness(event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	guildID, ok := requireGuild(event)
	if !ok {
		return
	}
	data := event.SlashCommandInteractionData()
	message := data.String("message")

	respond(event, "🔄 Pausing business...", true)

	client := event.Client()
	// Channel names can't contain spaces.
	name := "🟡-" + strings.ReplaceAll(message, " ", "-")
	renamed := renameStatusChannels(context.Background(), client, guildID, name)
	if renamed == 0 {
		editResponse(event, sys.ErrNoStatusChannels)
		return
	}

	order, found := findOrderChannel(client, guildID)
	if !found {
		editResponse(event, sys.ErrNoOrderChannel)
		return
	}

	// Paused locks ordering the same way /close does.
	deny := discord.PermissionViewChannel | discord.PermissionSendMessages | discord.PermissionReadMessageHistory
	if err := setEveryoneOverwrite(client, order, 0, deny); err != nil {
		editResponse(event, fmt.Sprintf(sys.ErrChannelPermFail, err))
		return
	}

	sys.LogBusiness("Business paused (%s), %d status channel(s) renamed", message, renamed)
	editResponse(event, fmt.Sprintf(sys.MsgBusinessPaused, message))
}
