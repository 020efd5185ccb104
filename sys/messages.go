package sys

// All log and user-facing strings live here, grouped per component.

// @config
const (
	MsgConfigFailedToLoad = "Failed to load config: %v"
	MsgConfigMissingToken = "DISCORD_TOKEN is not set in .env file"
	MsgConfigInvalidPort  = "Invalid PORT %q, falling back to %d"
)

// @store
const (
	MsgStoreOpened         = "Document store opened at %s"
	MsgStoreDirFail        = "failed to create data directory %s: %w"
	MsgStoreMigrated       = "Migrated legacy %s into %s"
	MsgStoreMigrateFail    = "Legacy migration of %s failed: %v"
	MsgStoreResetMalformed = "Document %s is malformed, rebuilding from defaults"
	MsgStoreHealed         = "Restored %s to the %d canonical templates"
	MsgStoreBarredAdded    = "User %s added to the barred list"
)

// @loader
const (
	MsgLoaderGuildRegister     = "Registering commands to guild: %s"
	MsgLoaderGlobalRegister    = "Registering commands globally..."
	MsgLoaderRegisterFail      = "failed to register commands: %w"
	MsgLoaderCommandRegistered = "Registered guild command: %s"
	MsgLoaderGlobalRegistered  = "Registered global command: %s"
	MsgLoaderCustomSkipped     = "Custom command %q cannot be a slash command, text-only fallback"
	MsgLoaderCustomSynced      = "Synced custom command /%s"
	MsgLoaderCustomSyncFail    = "Failed to sync custom command /%s: %v"
	MsgLoaderCustomRemoveFail  = "Failed to remove custom command /%s: %v"
	MsgLoaderCustomLoadFail    = "Failed to load custom commands: %v"
	MsgLoaderBarredIgnored     = "Ignored /%s from barred user %s"
	MsgLoaderBarredCheckFail   = "Barred list check failed, allowing interaction: %v"
	MsgLoaderRoleLookupFail    = "Role lookup failed: %v"
	MsgLoaderPanicRecovered    = "Recovered from panic in handler: %v"
)

// @bot
const (
	MsgBotReady        = "%s is online! (ID: %s) (PID: %d)"
	MsgBotShutdown     = "Shutting down..."
	MsgBotRegisterFail = "Command registration failed: %v"
	MsgGenericError    = "%v"
)

// @greeter
const (
	MsgGreeterNoMessages  = "No welcome template available: %v"
	MsgGreeterSendFail    = "Welcome for %s failed in channel %s: %v"
	MsgGreeterAdvanceFail = "Failed to advance welcome rotation: %v"
	MsgGreeterNoChannel   = "No channel accepted the welcome for %s"
	MsgGreeterWelcomed    = "Welcomed %s in channel %s"
	MsgGreeterCountFail   = "Member count unavailable: %v"
)

// @health
const (
	MsgHealthListening = "Health endpoint listening on port %d"
	MsgHealthBindFail  = "Health endpoint disabled, port %d unavailable: %v"
	MsgHealthServeFail = "Health endpoint stopped: %v"
)

// @business
const (
	MsgBusinessRenameFail = "Failed to rename channel %s: %v"
	MsgBusinessOpened     = "✅ Business is now **OPEN**! Status channels renamed and ordering unlocked."
	MsgBusinessClosed     = "✅ Business is now **CLOSED**. Status channels renamed and ordering locked."
	MsgBusinessPaused     = "✅ Business is **PAUSED**: %s"
	ErrNoStatusChannels   = "⚠️ No status channels found. Create a channel with 🟢, 🔴 or 🟡 in its name (or open/closed/paused) first."
	ErrNoOrderChannel     = "⚠️ Couldn't find an order channel to update permissions on."
	ErrChannelPermFail    = "⚠️ Renamed status channels but failed to update order permissions: %v"
)

// @commands (user-facing replies)
const (
	ErrGenericCommand   = "Something went wrong running that command."
	ErrGuildOnly        = "This command only works inside the server."
	ErrProviderOnly     = "You need the Provider role to use this command."
	MsgCommandCreated   = "✅ Created `/%s`. It shows up in the command picker shortly."
	MsgCommandEdited    = "✅ Updated `/%s`."
	MsgCommandDeleted   = "🗑️ Deleted `/%s`."
	ErrCommandTaken     = "⚠️ `/%s` already exists. Use /editcommand to change it."
	ErrCommandMissing   = "⚠️ `/%s` doesn't exist. Use /createcommand to add it."
	MsgNoCustomCommands = "No custom commands yet. Create one with /createcommand."

	MsgLinkSet       = "✅ Set **%s** → **%s**:\n%s"
	ErrBadMethod     = "⚠️ Unknown method. Use one of: apple_pay, zelle, cashapp, credit."
	MsgNoLinks       = "No payment links configured yet. Use /setlink to add one."
	ErrProviderEmpty = "⚠️ No payment links configured for **%s** yet."

	MsgAccountsAdded    = "✅ Added **%d** account(s) to **%s** (%d queued). Skipped %d duplicate line(s)."
	ErrNoAccountLines   = "⚠️ No account lines found. Paste one account per line, each containing an email."
	ErrCategoryEmpty    = "⚠️ No accounts stored for **%s**."
	ErrCategoryUnknown  = "⚠️ Unknown category **%s**."
	MsgAccountCleared   = "🗑️ Cleared **%d** account(s) from **%s**."
	MsgNoAccountsStored = "No accounts stored. Add some with /bulkadd."

	ErrEnjoyUserNotFound = "⚠️ Couldn't find a member matching **%s**."
	ErrEnjoyNoMessages   = "⚠️ No enjoy messages configured."
)
