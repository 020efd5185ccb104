package home

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/omit"

	"github.com/guhdeats/speedwagon/sys"
)

func registerCloseBusiness(st *sys.Store) {
	manageChannels := discord.PermissionManageChannels

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "close",
		Description:              "Close the business: rename status channels and lock ordering (Provider role only)",
		DefaultMemberPermissions: omit.New(&manageChannels),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
	}, handleCloseBusiness)
}

func handleCloseBusiness(event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	guildID, ok := requireGuild(event)
	if !ok {
		return
	}

	respond(event, "🔄 Closing business...", true)

	client := event.Client()
	renamed := renameStatusChannels(context.Background(), client, guildID, "🔴-closed")
	if renamed == 0 {
		editResponse(event, sys.ErrNoStatusChannels)
		return
	}

	order, found := findOrderChannel(client, guildID)
	if !found {
		editResponse(event, sys.ErrNoOrderChannel)
		return
	}

	// Closed: the order channel disappears for customers entirely.
	deny := discord.PermissionViewChannel | discord.PermissionSendMessages | discord.PermissionReadMessageHistory
	if err := setEveryoneOverwrite(client, order, 0, deny); err != nil {
		editResponse(event, fmt.Sprintf(sys.ErrChannelPermFail, err))
		return
	}

	sys.LogBusiness("Business closed, %d status channel(s) renamed", renamed)
	editResponse(event, sys.MsgBusinessClosed)
}
