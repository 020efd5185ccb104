package sys

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"regexp"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// ProviderRoleName gates the administrative commands.
const ProviderRoleName = "Provider"

// safeGo runs a function in a new goroutine with panic recovery
func safeGo(f func(), onPanic func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				LogError(MsgLoaderPanicRecovered, r)
				fmt.Printf("%s\n", debug.Stack())
				if onPanic != nil {
					onPanic()
				}
			}
		}()
		f()
	}()
}

// --- Global State & Setup ---

var AppContext context.Context
var StartupTime = time.Now()

var commands = []discord.ApplicationCommandCreate{}
var commandHandlers = map[string]func(event *events.ApplicationCommandInteractionCreate){}
var memberJoinHandlers []func(event *events.GuildMemberJoin)
var onClientReadyCallbacks []func(ctx context.Context, client *bot.Client)

func SetAppContext(ctx context.Context) {
	AppContext = ctx
}

// --- Bot Initialization ---

// CreateClient creates and configures a disgo client. The dispatcher owns
// the barred-user gate, so every interaction flows through it exactly once.
func CreateClient(cfg *Config, store *Store) (*bot.Client, error) {
	d := NewDispatcher(store)

	client, err := disgo.New(cfg.Token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentGuildMembers,
			),
			gateway.WithPresenceOpts(
				gateway.WithWatchingActivity("your orders"),
				gateway.WithOnlineStatus(discord.OnlineStatusOnline),
			),
		),
		bot.WithCacheConfigOpts(
			cache.WithCaches(cache.FlagGuilds, cache.FlagMembers, cache.FlagRoles, cache.FlagChannels),
		),
		bot.WithEventListenerFunc(d.OnApplicationCommand),
		bot.WithEventListenerFunc(d.OnGuildMemberJoin),
		bot.WithEventListenerFunc(onReady),
		bot.WithLogger(slog.Default()),
		bot.WithRestClientConfigOpts(
			rest.WithHTTPClient(&http.Client{
				Timeout: 60 * time.Second,
			}),
		),
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// --- Command & Handler Registration ---

func RegisterCommand(cmd discord.ApplicationCommandCreate, handler func(event *events.ApplicationCommandInteractionCreate)) {
	commands = append(commands, cmd)
	switch c := cmd.(type) {
	case discord.SlashCommandCreate:
		commandHandlers[c.CommandName()] = handler
	case discord.UserCommandCreate:
		commandHandlers[c.CommandName()] = handler
	case discord.MessageCommandCreate:
		commandHandlers[c.CommandName()] = handler
	}
}

func RegisterMemberJoinHandler(handler func(event *events.GuildMemberJoin)) {
	memberJoinHandlers = append(memberJoinHandlers, handler)
}

func OnClientReady(cb func(ctx context.Context, client *bot.Client)) {
	onClientReadyCallbacks = append(onClientReadyCallbacks, cb)
}

// --- Command Syncing Logic ---

// commandNamePattern is Discord's slash command name charset. Custom
// commands outside it stay reachable through the dispatcher fallback only.
var commandNamePattern = regexp.MustCompile(`^[-_a-z0-9]{1,32}$`)

// RegisterCommands overwrites the application command set, appending one
// entry per stored custom command so Discord offers them in the picker.
func RegisterCommands(client *bot.Client, guildIDStr string, store *Store) error {
	all := append([]discord.ApplicationCommandCreate{}, commands...)

	if custom, err := store.CustomCommands(); err != nil {
		LogWarn(MsgLoaderCustomLoadFail, err)
	} else {
		names := make([]string, 0, len(custom))
		for name := range custom {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if !commandNamePattern.MatchString(name) {
				LogWarn(MsgLoaderCustomSkipped, name)
				continue
			}
			if _, ok := commandHandlers[name]; ok {
				continue // never shadow a built-in
			}
			all = append(all, discord.SlashCommandCreate{
				Name:        name,
				Description: commandDescription(custom[name]),
			})
		}
	}

	if guildIDStr == "" {
		LogLoader(MsgLoaderGlobalRegister)
		created, err := client.Rest.SetGlobalCommands(client.ApplicationID, all)
		if err != nil {
			return fmt.Errorf(MsgLoaderRegisterFail, err)
		}
		for _, cmd := range created {
			LogLoader(MsgLoaderGlobalRegistered, cmd.Name())
		}
		return nil
	}

	guildID, err := snowflake.Parse(guildIDStr)
	if err != nil {
		return fmt.Errorf("invalid GUILD_ID: %w", err)
	}
	LogLoader(MsgLoaderGuildRegister, guildIDStr)
	created, err := client.Rest.SetGuildCommands(client.ApplicationID, guildID, all)
	if err != nil {
		return fmt.Errorf(MsgLoaderRegisterFail, err)
	}
	for _, cmd := range created {
		LogLoader(MsgLoaderCommandRegistered, cmd.Name())
	}
	return nil
}

// SyncCustomCommand pushes a newly created custom command to the guild.
// Best-effort: the dispatcher fallback serves the command either way.
func SyncCustomCommand(client *bot.Client, guildID snowflake.ID, name, response string) {
	name = NormalizeCommandName(name)
	if !commandNamePattern.MatchString(name) {
		LogWarn(MsgLoaderCustomSkipped, name)
		return
	}
	if _, ok := commandHandlers[name]; ok {
		return
	}
	_, err := client.Rest.CreateGuildCommand(client.ApplicationID, guildID, discord.SlashCommandCreate{
		Name:        name,
		Description: commandDescription(response),
	})
	if err != nil {
		LogWarn(MsgLoaderCustomSyncFail, name, err)
		return
	}
	LogLoader(MsgLoaderCustomSynced, name)
}

// UnsyncCustomCommand removes the guild command entry of a deleted custom
// command, best-effort.
func UnsyncCustomCommand(client *bot.Client, guildID snowflake.ID, name string) {
	name = NormalizeCommandName(name)
	if _, ok := commandHandlers[name]; ok {
		return
	}
	cmds, err := client.Rest.GetGuildCommands(client.ApplicationID, guildID, false)
	if err != nil {
		LogWarn(MsgLoaderCustomRemoveFail, name, err)
		return
	}
	for _, cmd := range cmds {
		if cmd.Name() == name {
			if err := client.Rest.DeleteGuildCommand(client.ApplicationID, guildID, cmd.ID()); err != nil {
				LogWarn(MsgLoaderCustomRemoveFail, name, err)
			}
			return
		}
	}
}

// commandDescription trims a response down to a valid command description.
func commandDescription(response string) string {
	const max = 96
	r := []rune(strings.TrimSpace(response))
	if len(r) == 0 {
		return "Custom command"
	}
	if len(r) > max {
		return string(r[:max]) + "..."
	}
	return string(r)
}

// --- Event Handlers ---

func onReady(event *events.Ready) {
	botUser := event.User
	LogInfo(MsgBotReady, botUser.Username, botUser.ID.String(), os.Getpid())
	LogDebug("Gateway ready after %dms", time.Since(StartupTime).Milliseconds())

	TriggerClientReady(AppContext, event.Client())
}

func TriggerClientReady(ctx context.Context, client *bot.Client) {
	for _, cb := range onClientReadyCallbacks {
		cb(ctx, client)
	}
}

// --- Dispatcher ---

// Dispatcher routes gateway events to registered handlers. Barred callers
// are dropped here, once, before any handler or fallback can run.
type Dispatcher struct {
	store *Store
}

func NewDispatcher(store *Store) *Dispatcher {
	return &Dispatcher{store: store}
}

func (d *Dispatcher) OnApplicationCommand(event *events.ApplicationCommandInteractionCreate) {
	user := event.User()
	if barred, err := d.store.IsBarred(user.ID); err != nil {
		LogWarn(MsgLoaderBarredCheckFail, err)
	} else if barred {
		LogInfo(MsgLoaderBarredIgnored, event.Data.CommandName(), user.ID)
		return
	}

	name := event.Data.CommandName()
	if h, ok := commandHandlers[name]; ok {
		safeGo(func() { h(event) }, func() {
			_ = event.CreateMessage(discord.MessageCreate{
				Content: ErrGenericCommand,
				Flags:   discord.MessageFlagEphemeral,
			})
		})
		return
	}

	// Fallback: stored custom commands, including names Discord rejected.
	response, ok, err := d.store.CustomCommand(name)
	if err != nil {
		LogWarn(MsgLoaderCustomLoadFail, err)
		return
	}
	if ok {
		safeGo(func() {
			_ = event.CreateMessage(discord.MessageCreate{Content: response})
		}, nil)
	}
}

func (d *Dispatcher) OnGuildMemberJoin(event *events.GuildMemberJoin) {
	for _, h := range memberJoinHandlers {
		safeGo(func() { h(event) }, nil)
	}
}

// --- Guild Helpers ---

// HasProviderRole reports whether the invoking member carries the Provider
// role, checking the role cache first and falling back to REST.
func HasProviderRole(event *events.ApplicationCommandInteractionCreate) bool {
	member := event.Member()
	guildID := event.GuildID()
	if member == nil || guildID == nil {
		return false
	}

	var missing []snowflake.ID
	for _, roleID := range member.RoleIDs {
		role, ok := event.Client().Caches.Role(*guildID, roleID)
		if !ok {
			missing = append(missing, roleID)
			continue
		}
		if role.Name == ProviderRoleName {
			return true
		}
	}
	if len(missing) == 0 {
		return false
	}

	roles, err := event.Client().Rest.GetRoles(*guildID)
	if err != nil {
		LogWarn(MsgLoaderRoleLookupFail, err)
		return false
	}
	for _, role := range roles {
		if role.Name != ProviderRoleName {
			continue
		}
		for _, roleID := range missing {
			if roleID == role.ID {
				return true
			}
		}
	}
	return false
}

// GuildChannels resolves channel names against the gateway cache.
type GuildChannels struct {
	Client  *bot.Client
	GuildID snowflake.ID
}

func (g GuildChannels) FindChannel(match func(name string) bool) (snowflake.ID, bool) {
	for ch := range g.Client.Caches.Channels() {
		if ch.GuildID() != g.GuildID || ch.Type() != discord.ChannelTypeGuildText {
			continue
		}
		if match(ch.Name()) {
			return ch.ID(), true
		}
	}
	return 0, false
}
