package proc

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/guhdeats/speedwagon/sys"
)

// preferredWelcomeChannels are tried by exact name after the guild's system
// channel, before falling back to any text channel.
var preferredWelcomeChannels = []string{"welcome", "introductions", "general"}

// RegisterGreeter wires the welcome flow onto member join events.
func RegisterGreeter(st *sys.Store) {
	sys.RegisterMemberJoinHandler(func(event *events.GuildMemberJoin) {
		greet(st, event)
	})
}

func greet(st *sys.Store, event *events.GuildMemberJoin) {
	if event.Member.User.Bot {
		return
	}

	template, err := st.PeekWelcomeMessage()
	if err != nil {
		sys.LogGreeter(sys.MsgGreeterNoMessages, err)
		return
	}

	client := event.Client()
	memberCount := guildMemberCount(client, event.GuildID)
	mention := fmt.Sprintf("<@%s>", event.Member.User.ID)
	welcome := sys.ComposeWelcome(template, mention, memberCount, time.Now())

	// First channel that takes the message wins; the rotation only advances
	// on a confirmed delivery.
	for _, channelID := range candidateChannels(client, event.GuildID) {
		_, err := client.Rest.CreateMessage(channelID, discord.MessageCreate{Content: welcome})
		if err != nil {
			sys.LogGreeter(sys.MsgGreeterSendFail, event.Member.User.ID, channelID, err)
			continue
		}
		if err := st.AdvanceWelcomeCursor(); err != nil {
			sys.LogGreeter(sys.MsgGreeterAdvanceFail, err)
		}
		sys.LogGreeter(sys.MsgGreeterWelcomed, event.Member.User.ID, channelID)
		return
	}

	sys.LogGreeter(sys.MsgGreeterNoChannel, event.Member.User.ID)
}

// candidateChannels orders the guild's channels by welcome preference:
// system channel, the well-known names, then any text channel.
func candidateChannels(client *bot.Client, guildID snowflake.ID) []snowflake.ID {
	var ordered []snowflake.ID
	seen := map[snowflake.ID]struct{}{}
	add := func(id snowflake.ID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	if guild, ok := client.Caches.Guild(guildID); ok && guild.SystemChannelID != nil {
		add(*guild.SystemChannelID)
	}

	resolver := sys.GuildChannels{Client: client, GuildID: guildID}
	for _, name := range preferredWelcomeChannels {
		want := name
		if id, ok := resolver.FindChannel(func(n string) bool { return n == want }); ok {
			add(id)
		}
	}

	for ch := range client.Caches.Channels() {
		if ch.GuildID() != guildID || ch.Type() != discord.ChannelTypeGuildText {
			continue
		}
		add(ch.ID())
	}

	return ordered
}

// guildMemberCount counts guild members over REST, paging like the gateway
// never filled the cache. Zero means unknown and suppresses the milestone
// line.
func guildMemberCount(client *bot.Client, guildID snowflake.ID) int {
	total := 0
	var after snowflake.ID
	for {
		chunk, err := client.Rest.GetMembers(guildID, 1000, after)
		if err != nil {
			if total == 0 {
				sys.LogGreeter(sys.MsgGreeterCountFail, err)
			}
			return total
		}
		total += len(chunk)
		if len(chunk) < 1000 {
			return total
		}
		after = chunk[len(chunk)-1].User.ID
	}
}
