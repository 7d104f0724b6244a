// Package quote fetches live market quotes for exchange-qualified tickers.
package quote

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Record is a live quote snapshot. It is fetched fresh per request and
// never cached.
type Record struct {
	Code           string
	FormattedValue string
	ChangePct      string
	AsOfDate       string
}

// Source resolves a ticker symbol to a live quote. A nil Record with a nil
// error means the symbol is unknown or unsupported; callers must tolerate
// that silently.
type Source interface {
	Fetch(ctx context.Context, symbol string) (*Record, error)
}

// FallbackCurrency is assumed when the metadata lookup yields no match.
const FallbackCurrency = "BRL"

// FormatValue renders a numeric price with two decimal digits, prefixed by
// the currency symbol for the two home currencies and by the currency code
// for everything else.
func FormatValue(price decimal.Decimal, currency string) string {
	amount := price.StringFixed(2)
	switch currency {
	case "USD":
		return "US$ " + amount
	case "BRL":
		return "R$ " + amount
	default:
		return fmt.Sprintf("%s %s", currency, amount)
	}
}
