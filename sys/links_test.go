package sys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLinksHaveAllProviders(t *testing.T) {
	st := newTestStore(t)

	links, err := st.PaymentLinks()
	require.NoError(t, err)
	require.Len(t, links, 3)
	for _, provider := range PaymentProviders {
		methods, ok := links[provider]
		assert.True(t, ok)
		assert.True(t, methods.Empty())
	}
}

func TestSetPaymentLink(t *testing.T) {
	st := newTestStore(t)

	stored, err := st.SetPaymentLink("neck", "cashapp", "https://cash.app/$neck")
	require.NoError(t, err)
	assert.Equal(t, "https://cash.app/$neck", stored)

	methods, err := st.ProviderLinks("Neck")
	require.NoError(t, err)
	assert.Equal(t, "https://cash.app/$neck", methods.CashApp)
	assert.Empty(t, methods.Zelle)
}

func TestSetApplePayPhoneBecomesSMSLink(t *testing.T) {
	st := newTestStore(t)

	stored, err := st.SetPaymentLink("sb", "apple_pay", "+1 (555) 123-4567")
	require.NoError(t, err)
	assert.Equal(t, "[Message +1 (555) 123-4567](sms:15551234567)", stored)

	methods, err := st.ProviderLinks("sb")
	require.NoError(t, err)
	assert.Equal(t, stored, methods.ApplePay)
}

func TestSetApplePayURLStoredVerbatim(t *testing.T) {
	st := newTestStore(t)

	stored, err := st.SetPaymentLink("angie", "apple_pay", "https://pay.example.com/angie")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/angie", stored)
}

func TestSetPaymentLinkUnknownMethod(t *testing.T) {
	st := newTestStore(t)

	_, err := st.SetPaymentLink("neck", "venmo", "https://venmo.com/neck")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestUnknownProviderResolvesEmpty(t *testing.T) {
	st := newTestStore(t)

	methods, err := st.ProviderLinks("nobody")
	require.NoError(t, err)
	assert.True(t, methods.Empty())
}

func TestPhoneDigits(t *testing.T) {
	digits, ok := phoneDigits("+1 (555) 123-4567")
	assert.True(t, ok)
	assert.Equal(t, "15551234567", digits)

	_, ok = phoneDigits("https://example.com")
	assert.False(t, ok)

	_, ok = phoneDigits("")
	assert.False(t, ok)

	_, ok = phoneDigits("+-()")
	assert.False(t, ok)
}
