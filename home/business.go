package home

import (
	"context"
	"strings"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/time/rate"

	"github.com/guhdeats/speedwagon/sys"
)

func registerBusiness(st *sys.Store) {
	registerOpenBusiness(st)
	registerCloseBusiness(st)
	registerPauseBusiness(st)
}

// isStatusChannel matches channels whose name announces the shop state,
// by keyword or by traffic-light emoji.
func isStatusChannel(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "open") ||
		strings.Contains(lower, "closed") ||
		strings.Contains(lower, "pause") ||
		strings.Contains(name, "🟢") ||
		strings.Contains(name, "🔴") ||
		strings.Contains(name, "🟡")
}

func statusChannels(client *bot.Client, guildID snowflake.ID) []discord.GuildChannel {
	var channels []discord.GuildChannel
	for ch := range client.Caches.Channels() {
		if ch.GuildID() != guildID {
			continue
		}
		if isStatusChannel(ch.Name()) {
			channels = append(channels, ch)
		}
	}
	return channels
}

// renameStatusChannels renames every status channel, pacing the REST calls
// since channel renames are heavily rate limited. Returns how many renames
// succeeded.
func renameStatusChannels(ctx context.Context, client *bot.Client, guildID snowflake.ID, newName string) int {
	limiter := rate.NewLimiter(rate.Limit(2), 4)
	renamed := 0
	for _, ch := range statusChannels(client, guildID) {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		name := newName
		if _, err := client.Rest.UpdateChannel(ch.ID(), discord.GuildTextChannelUpdate{Name: &name}); err != nil {
			sys.LogWarn(sys.MsgBusinessRenameFail, ch.Name(), err)
			continue
		}
		renamed++
	}
	return renamed
}

// findOrderChannel locates the customer ordering channel by name.
func findOrderChannel(client *bot.Client, guildID snowflake.ID) (discord.GuildChannel, bool) {
	for ch := range client.Caches.Channels() {
		if ch.GuildID() != guildID {
			continue
		}
		if strings.Contains(strings.ToLower(ch.Name()), "order-here") {
			return ch, true
		}
	}
	return nil, false
}

// setEveryoneOverwrite replaces the @everyone permission overwrite on a
// channel. The @everyone role shares the guild's ID.
func setEveryoneOverwrite(client *bot.Client, channel discord.GuildChannel, allow, deny discord.Permissions) error {
	everyoneID := channel.GuildID()
	updated := make([]discord.PermissionOverwrite, 0, len(channel.PermissionOverwrites())+1)
	replaced := false
	for _, overwrite := range channel.PermissionOverwrites() {
		if overwrite.ID() == everyoneID {
			if _, ok := overwrite.(discord.RolePermissionOverwrite); ok {
				updated = append(updated, discord.RolePermissionOverwrite{
					RoleID: everyoneID,
					Allow:  allow,
					Deny:   deny,
				})
				replaced = true
				continue
			}
		}
		updated = append(updated, overwrite)
	}
	if !replaced {
		updated = append(updated, discord.RolePermissionOverwrite{
			RoleID: everyoneID,
			Allow:  allow,
			Deny:   deny,
		})
	}

	_, err := client.Rest.UpdateChannel(channel.ID(), discord.GuildTextChannelUpdate{
		PermissionOverwrites: &updated,
	})
	return err
}
