package home

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"

	"github.com/guhdeats/speedwagon/sys"
)

// registerProviderLinks wires the customer-facing /neck, /sb and /angie
// commands, one per provider, each rendering that provider's payment embed.
func registerProviderLinks(st *sys.Store) {
	for _, provider := range sys.PaymentProviders {
		p := provider
		sys.RegisterCommand(discord.SlashCommandCreate{
			Name:        p,
			Description: "Get payment method links",
		}, func(event *events.ApplicationCommandInteractionCreate) {
			handleProviderLinks(st, p, event)
		})
	}
}

func handleProviderLinks(st *sys.Store, provider string, event *events.ApplicationCommandInteractionCreate) {
	methods, err := st.ProviderLinks(provider)
	if err != nil {
		sys.LogError("Failed to load %s links: %v", provider, err)
		respond(event, sys.ErrGenericCommand, true)
		return
	}

	builder := discord.NewEmbedBuilder().
		SetTitle(fmt.Sprintf("💳 Payment Methods - %s", sys.ProviderDisplayNames[provider])).
		SetDescription("Here are our accepted payment methods:").
		SetColor(0x0099ff).
		SetFooterText("Contact support if you need help with payment!")

	if methods.ApplePay != "" {
		builder.AddField("🍎 Apple Pay", methods.ApplePay, false)
	}
	if methods.Zelle != "" {
		builder.AddField("💸 Zelle", fmt.Sprintf("[Send to Zelle](%s)", methods.Zelle), false)
	}
	if methods.CashApp != "" {
		builder.AddField("📱 Cash App (Add 25¢ for fees)", fmt.Sprintf("[Send via Cash App](%s)", methods.CashApp), false)
	}
	if methods.Credit != "" {
		builder.AddField("💳 Credit/Debit", fmt.Sprintf("[Pay Online](%s)", methods.Credit), false)
	}
	if methods.Empty() {
		builder.AddField("⚠️ No Payment Links Set",
			"Contact an admin to set up payment methods using `/setlink`", false)
	}

	if err := event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{builder.Build()},
	}); err != nil {
		sys.LogDebug("Failed to send %s links: %v", provider, err)
	}
}
