package home

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/omit"

	"github.com/guhdeats/speedwagon/sys"
)

func registerOpenBusiness(st *sys.Store) {
	manageChannels := discord.PermissionManageChannels

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "open",
		Description:              "Open the business: rename status channels and unlock ordering (Provider role only)",
		DefaultMemberPermissions: omit.New(&manageChannels),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
	}, handleOpenBusiness)
}

func handleOpenBusiness(event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	guildID, ok := requireGuild(event)
	if !ok {
		return
	}

	// Renames can take a while under rate limits; acknowledge first.
	respond(event, "🔄 Opening business...", true)

	client := event.Client()
	renamed := renameStatusChannels(context.Background(), client, guildID, "🟢-open")
	if renamed == 0 {
		editResponse(event, sys.ErrNoStatusChannels)
		return
	}

	order, found := findOrderChannel(client, guildID)
	if !found {
		editResponse(event, sys.ErrNoOrderChannel)
		return
	}

	// Open: customers see the channel and can react, only staff post.
	allow := discord.PermissionViewChannel | discord.PermissionAddReactions
	deny := discord.PermissionSendMessages
	if err := setEveryoneOverwrite(client, order, allow, deny); err != nil {
		editResponse(event, fmt.Sprintf(sys.ErrChannelPermFail, err))
		return
	}

	sys.LogBusiness("Business opened, %d status channel(s) renamed", renamed)
	editResponse(event, sys.MsgBusinessOpened)
}
