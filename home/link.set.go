package home

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/guhdeats/speedwagon/sys"
)

func registerLinkAdmin(st *sys.Store) {
	providerChoices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(sys.PaymentProviders))
	for _, provider := range sys.PaymentProviders {
		providerChoices = append(providerChoices, discord.ApplicationCommandOptionChoiceString{
			Name:  sys.ProviderDisplayNames[provider],
			Value: provider,
		})
	}
	methodChoices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(sys.PaymentMethodKeys))
	for _, method := range sys.PaymentMethodKeys {
		methodChoices = append(methodChoices, discord.ApplicationCommandOptionChoiceString{
			Name:  sys.MethodDisplayNames[method],
			Value: method,
		})
	}

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "setlink",
		Description: "Set a payment method link (Provider role only)",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "provider",
				Description: "Which provider the link belongs to",
				Required:    true,
				Choices:     providerChoices,
			},
			discord.ApplicationCommandOptionString{
				Name:        "payment_method",
				Description: "Which payment method to set",
				Required:    true,
				Choices:     methodChoices,
			},
			discord.ApplicationCommandOptionString{
				Name:        "url",
				Description: "The link, or a phone number for Apple Pay",
				Required:    true,
			},
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleSetLink(st, event)
	})

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "viewlinks",
		Description: "View all current payment links (Provider role only)",
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
	}, func(event *events.ApplicationCommandInteractionCreate) {
		handleViewLinks(st, event)
	})
}

func handleSetLink(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	data := event.SlashCommandInteractionData()
	provider := data.String("provider")
	method := data.String("payment_method")
	url := data.String("url")

	stored, err := st.SetPaymentLink(provider, method, url)
	if err != nil {
		if errors.Is(err, sys.ErrUnknownMethod) {
			respond(event, sys.ErrBadMethod, true)
			return
		}
		sys.LogError("Failed to set %s/%s link: %v", provider, method, err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	respond(event, fmt.Sprintf(sys.MsgLinkSet,
		sys.ProviderDisplayNames[provider], sys.MethodDisplayNames[method], "`"+stored+"`"), true)
}

func handleViewLinks(st *sys.Store, event *events.ApplicationCommandInteractionCreate) {
	if !requireProvider(event) {
		return
	}
	links, err := st.PaymentLinks()
	if err != nil {
		sys.LogError("Failed to load payment links: %v", err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	builder := discord.NewEmbedBuilder().
		SetTitle("🔗 Current Payment Links").
		SetDescription("Here are the currently set payment links for all providers:").
		SetColor(0x00ff00)

	for _, provider := range sys.PaymentProviders {
		methods := links[provider]
		if methods.Empty() {
			builder.AddField(fmt.Sprintf("**%s**", sys.ProviderDisplayNames[provider]), "*No links set*", false)
			continue
		}
		builder.AddField(fmt.Sprintf("**%s**", sys.ProviderDisplayNames[provider]), "​", false)
		for _, method := range sys.PaymentMethodKeys {
			link := methods.Method(method)
			if link == "" {
				builder.AddField(methodEmbedName(method), "*Not set*", false)
				continue
			}
			builder.AddField(methodEmbedName(method), "`"+link+"`", false)
		}
	}

	respondEmbed(event, builder.Build(), true)
}

func methodEmbedName(method string) string {
	switch method {
	case "apple_pay":
		return "🍎 Apple Pay"
	case "zelle":
		return "💸 Zelle"
	case "cashapp":
		return "📱 Cash App"
	case "credit":
		return "💳 Credit/Debit"
	}
	return method
}
