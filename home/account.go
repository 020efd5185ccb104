package home

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/guhdeats/speedwagon/sys"
)

func registerAccounts(st *sys.Store) {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "bulkadd",
		Description: "Bulk add accounts to a category (Provider role only)",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "category",
				Description: "Name of the account category",
				Required:    true,
			},
			discord.ApplicationCommandOptionString{
				Name:        "entries",
				Description: "Text containing accounts (one per line)",
				Required:    true,
			},
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleBulkAdd(st, event)
	})

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "getaccount",
		Description: "Retrieve and remove the next account from a category",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "category",
				Description: "Name of the account category to pull from",
				Required:    true,
			},
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleGetAccount(st, event)
	})

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "listaccounts",
		Description: "List stored account categories and counts (Provider role only)",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleListAccounts(st, event)
	})

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "clearaccount",
		Description: "Remove all accounts from a category (Provider role only)",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "category",
				Description: "Name of the account category to clear",
				Required:    true,
			},
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleClearAccount(st, event)
	})
}

func handleBulkAdd(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	data := event.SlashCommandInteractionData()
	category := data.String("category")
	entries := data.String("entries")

	lines := sys.ParseAccountLines(entries)
	if len(lines) == 0 {
		respond(event, sys.ErrNoAccountLines, true)
		return
	}

	added, total, err := st.AddAccounts(category, lines)
	if err != nil {
		sys.LogError("Failed to add accounts to %q: %v", category, err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	skipped := len(lines) - added
	respond(event, fmt.Sprintf(sys.MsgAccountsAdded, added, category, total, skipped), true)
}

func handleGetAccount(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	data := event.SlashCommandInteractionData()
	category := data.String("category")

	line, remaining, err := st.DequeueAccount(category)
	if err != nil {
		if errors.Is(err, sys.ErrEmptyCategory) {
			respond(event, fmt.Sprintf(sys.ErrCategoryEmpty, category), true)
			return
		}
		sys.LogError("Failed to dequeue from %q: %v", category, err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	// Credentials could contain anything; suppress every mention.
	err = event.CreateMessage(discord.MessageCreate{
		Content:         line,
		Flags:           discord.MessageFlagEphemeral,
		AllowedMentions: &discord.AllowedMentions{},
	})
	if err != nil {
		sys.LogDebug("Failed to deliver account line: %v", err)
		return
	}

	followup := fmt.Sprintf("✅ Removed the retrieved `%s` entry from the queue. %d account(s) remain.", category, remaining)
	_, err = event.Client().Rest.CreateFollowupMessage(event.ApplicationID(), event.Token(),
		discord.MessageCreate{
			Content: followup,
			Flags:   discord.MessageFlagEphemeral,
		})
	if err != nil {
		sys.LogDebug("Failed to send dequeue followup: %v", err)
	}
}

func handleListAccounts(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	counts, err := st.ListAccounts()
	if err != nil {
		sys.LogError("Failed to list accounts: %v", err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}
	if len(counts) == 0 {
		respond(event, sys.MsgNoAccountsStored, true)
		return
	}

	categories, err := st.AccountCategories()
	if err != nil {
		sys.LogError("Failed to list accounts: %v", err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	builder := discord.NewEmbedBuilder().
		SetTitle("🗂️ Stored Account Categories").
		SetDescription("Current categories and the number of accounts remaining in each queue:").
		SetColor(0x3498db)
	for _, category := range categories {
		builder.AddField(category, fmt.Sprintf("%d account(s)", counts[category]), false)
	}

	respondEmbed(event, builder.Build(), true)
}

func handleClearAccount(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	data := event.SlashCommandInteractionData()
	category := data.String("category")

	removed, err := st.ClearAccounts(category)
	if err != nil {
		if errors.Is(err, sys.ErrUnknownCategory) {
			respond(event, fmt.Sprintf(sys.ErrCategoryUnknown, category), true)
			return
		}
		sys.LogError("Failed to clear %q: %v", category, err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	respond(event, fmt.Sprintf(sys.MsgAccountCleared, removed, category), true)
}
