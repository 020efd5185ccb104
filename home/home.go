package home

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/guhdeats/speedwagon/sys"
)

// Register wires every slash command against the injected store and adds
// them to the loader registry. Called once from main, before the gateway
// opens.
func Register(st *sys.Store) {
	registerCustomCommands(st)
	registerLinkAdmin(st)
	registerProviderLinks(st)
	registerAccounts(st)
	registerEnjoy(st)
	registerBusiness(st)
}

// respond sends the initial interaction response as plain text.
func respond(event *events.ApplicationCommandInteractionCreate, content string, ephemeral bool) {
	var flags discord.MessageFlags
	if ephemeral {
		flags = discord.MessageFlagEphemeral
	}
	err := event.CreateMessage(discord.MessageCreate{
		Content: content,
		Flags:   flags,
	})
	if err != nil {
		sys.LogDebug("Failed to respond to interaction: %v", err)
	}
}

// respondEmbed sends the initial interaction response as a single embed.
func respondEmbed(event *events.ApplicationCommandInteractionCreate, embed discord.Embed, ephemeral bool) {
	var flags discord.MessageFlags
	if ephemeral {
		flags = discord.MessageFlagEphemeral
	}
	err := event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{embed},
		Flags:  flags,
	})
	if err != nil {
		sys.LogDebug("Failed to respond to interaction: %v", err)
	}
}

// editResponse rewrites the original response after a deferred or
// placeholder reply.
func editResponse(event *events.ApplicationCommandInteractionCreate, content string) {
	_, err := event.Client().Rest.UpdateInteractionResponse(event.ApplicationID(), event.Token(),
		discord.MessageUpdate{Content: &content})
	if err != nil {
		sys.LogDebug("Failed to edit interaction response: %v", err)
	}
}

// requireProvider gates administrative commands behind the Provider role.
// Returns false after replying when the caller lacks it.
func requireProvider(event *events.ApplicationCommandInteractionCreate) bool {
	if !sys.HasProviderRole(event) {
		respond(event, sys.ErrProviderOnly, true)
		return false
	}
	return true
}

// requireGuild rejects DM invocations of guild-only commands.
func requireGuild(event *events.ApplicationCommandInteractionCreate) (snowflake.ID, bool) {
	guildID := event.GuildID()
	if guildID == nil {
		respond(event, sys.ErrGuildOnly, true)
		return 0, false
	}
	return *guildID, true
}
