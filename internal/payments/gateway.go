package payments

import "context"

// Intent is the provider's answer to an intent creation.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Gateway abstracts the card-payment provider so handlers and tests never
// touch the provider SDK directly.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

// Package tier pricing in minor currency units. Unknown or missing tiers get
// the basic price.
const (
	AmountBasic    int64 = 1000
	AmountStandard int64 = 5000
	AmountPremium  int64 = 10000
)

// AmountForPackage maps a package tier to its price.
func AmountForPackage(packageType string) int64 {
	switch packageType {
	case "standard":
		return AmountStandard
	case "premium":
		return AmountPremium
	default:
		return AmountBasic
	}
}
