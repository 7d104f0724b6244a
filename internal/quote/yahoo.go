package quote

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	yquote "github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// Yahoo serves quotes from Yahoo Finance. It is the alternate source for
// deployments without an Alpha Vantage key; Yahoo needs none.
type Yahoo struct{}

// NewYahoo creates a Yahoo Finance quote source.
func NewYahoo() *Yahoo {
	return &Yahoo{}
}

// Fetch returns the current quote for symbol, or nil when Yahoo does not
// know the ticker.
func (y *Yahoo) Fetch(ctx context.Context, symbol string) (*Record, error) {
	q, err := yquote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, nil
	}

	currency := q.CurrencyID
	if currency == "" {
		currency = FallbackCurrency
	}

	return &Record{
		Code:           q.Symbol,
		FormattedValue: FormatValue(decimal.NewFromFloat(q.RegularMarketPrice), currency),
		ChangePct:      fmt.Sprintf("%+.2f%%", q.RegularMarketChangePercent),
		AsOfDate:       marketDate(q),
	}, nil
}

func marketDate(q *finance.Quote) string {
	if q.RegularMarketTime == 0 {
		return time.Now().Format("2006-01-02")
	}
	return time.Unix(int64(q.RegularMarketTime), 0).Format("2006-01-02")
}
