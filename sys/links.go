package sys

import (
	"fmt"
	"strings"
)

// PaymentMethods holds the four links a provider takes payment through.
// Empty string means not set.
type PaymentMethods struct {
	ApplePay string `json:"apple_pay"`
	Zelle    string `json:"zelle"`
	CashApp  string `json:"cashapp"`
	Credit   string `json:"credit"`
}

// PaymentProviders and PaymentMethodKeys fix the display order everywhere
// links are rendered.
var (
	PaymentProviders  = []string{"neck", "sb", "angie"}
	PaymentMethodKeys = []string{"apple_pay", "zelle", "cashapp", "credit"}

	ProviderDisplayNames = map[string]string{
		"neck":  "Neck",
		"sb":    "SB",
		"angie": "Angie",
	}
	MethodDisplayNames = map[string]string{
		"apple_pay": "Apple Pay",
		"zelle":     "Zelle",
		"cashapp":   "Cash App",
		"credit":    "Credit/Debit",
	}
)

// Method returns the link stored under a method key.
func (m PaymentMethods) Method(key string) string {
	switch key {
	case "apple_pay":
		return m.ApplePay
	case "zelle":
		return m.Zelle
	case "cashapp":
		return m.CashApp
	case "credit":
		return m.Credit
	}
	return ""
}

// Empty reports whether no method has a link set.
func (m PaymentMethods) Empty() bool {
	return m.ApplePay == "" && m.Zelle == "" && m.CashApp == "" && m.Credit == ""
}

func defaultPaymentLinks() map[string]PaymentMethods {
	links := make(map[string]PaymentMethods, len(PaymentProviders))
	for _, provider := range PaymentProviders {
		links[provider] = PaymentMethods{}
	}
	return links
}

// PaymentLinks returns the link table for all providers.
func (s *Store) PaymentLinks() (map[string]PaymentMethods, error) {
	l := s.lockFor(linksFile)
	l.Lock()
	defer l.Unlock()
	return s.loadPaymentLinks()
}

func (s *Store) loadPaymentLinks() (map[string]PaymentMethods, error) {
	links, err := loadDocument(s, linksFile, defaultPaymentLinks)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = defaultPaymentLinks()
	}
	return links, nil
}

// ProviderLinks returns the methods of a single provider. Unknown providers
// resolve to an empty set rather than an error, matching the read path of
// the customer-facing commands.
func (s *Store) ProviderLinks(provider string) (PaymentMethods, error) {
	links, err := s.PaymentLinks()
	if err != nil {
		return PaymentMethods{}, err
	}
	return links[strings.ToLower(provider)], nil
}

// SetPaymentLink stores a link, creating the provider row if missing. A bare
// phone number set as the Apple Pay link becomes a clickable sms: markdown
// link so customers can message it straight from the embed.
func (s *Store) SetPaymentLink(provider, method, url string) (string, error) {
	l := s.lockFor(linksFile)
	l.Lock()
	defer l.Unlock()

	links, err := s.loadPaymentLinks()
	if err != nil {
		return "", err
	}

	value := url
	if method == "apple_pay" {
		if digits, ok := phoneDigits(url); ok {
			value = fmt.Sprintf("[Message %s](sms:%s)", url, digits)
		}
	}

	key := strings.ToLower(provider)
	m := links[key]
	switch method {
	case "apple_pay":
		m.ApplePay = value
	case "zelle":
		m.Zelle = value
	case "cashapp":
		m.CashApp = value
	case "credit":
		m.Credit = value
	default:
		return "", ErrUnknownMethod
	}
	links[key] = m

	return value, saveDocument(s, linksFile, links)
}

// phoneDigits strips common phone punctuation and reports whether only
// digits remain.
func phoneDigits(raw string) (string, bool) {
	clean := strings.NewReplacer("+", "", "-", "", " ", "", "(", "", ")", "").Replace(raw)
	if clean == "" {
		return "", false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return clean, true
}
