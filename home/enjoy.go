package home

import (
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/guhdeats/speedwagon/sys"
)

func registerEnjoy(st *sys.Store) {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "enjoy",
		Description: "Send a personalized thank-you message to a customer",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "customer",
				Description: "The customer to thank (type their name or mention them with @)",
				Required:    true,
			},
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleEnjoy(st, event)
	})
}

func handleEnjoy(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	guildID, ok := requireGuild(event)
	if !ok {
		return
	}
	data := event.SlashCommandInteractionData()
	customer := data.String("customer")

	target, found := findMember(event.Client(), guildID, customer)
	if !found {
		respond(event, fmt.Sprintf(sys.ErrEnjoyUserNotFound, customer), true)
		return
	}

	template, err := st.PeekEnjoyMessage()
	if err != nil {
		if errors.Is(err, sys.ErrEmptyMessageSet) {
			respond(event, sys.ErrEnjoyNoMessages, false)
			return
		}
		sys.LogError("Failed to load enjoy messages: %v", err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	mention := fmt.Sprintf("<@%s>", target.User.ID)
	message := sys.RenderUserToken(template, mention)
	message = sys.RenderChannelTokens(message, sys.GuildChannels{Client: event.Client(), GuildID: guildID})

	if err := event.CreateMessage(discord.MessageCreate{Content: message}); err != nil {
		// Cursor stays put so the same template is retried next time.
		sys.LogWarn("Failed to send enjoy message: %v", err)
		return
	}

	if err := st.AdvanceEnjoyCursor(); err != nil {
		sys.LogWarn("Failed to advance enjoy rotation: %v", err)
	}
}

// findMember resolves a mention, username, global name or nickname to a
// guild member. Name lookups page through the member list via REST since
// the cache only fills as members become active.
func findMember(client *bot.Client, guildID snowflake.ID, query string) (discord.Member, bool) {
	if strings.HasPrefix(query, "<@") && strings.HasSuffix(query, ">") {
		raw := strings.Trim(query, "<@!&>")
		id, err := snowflake.Parse(raw)
		if err != nil {
			return discord.Member{}, false
		}
		if member, ok := client.Caches.Member(guildID, id); ok {
			return member, true
		}
		if member, err := client.Rest.GetMember(guildID, id); err == nil {
			return *member, true
		}
		return discord.Member{}, false
	}

	want := strings.ToLower(query)
	matches := func(m discord.Member) bool {
		if m.Nick != nil && strings.ToLower(*m.Nick) == want {
			return true
		}
		if m.User.GlobalName != nil && strings.ToLower(*m.User.GlobalName) == want {
			return true
		}
		return strings.ToLower(m.User.Username) == want
	}

	var after snowflake.ID
	for {
		chunk, err := client.Rest.GetMembers(guildID, 1000, after)
		if err != nil || len(chunk) == 0 {
			return discord.Member{}, false
		}
		for _, m := range chunk {
			if matches(m) {
				return m, true
			}
		}
		if len(chunk) < 1000 {
			return discord.Member{}, false
		}
		after = chunk[len(chunk)-1].User.ID
	}
}
