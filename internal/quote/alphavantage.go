package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// AlphaVantage serves quotes from the Alpha Vantage HTTP API. Each fetch
// performs two calls: a price snapshot (GLOBAL_QUOTE) and a symbol search
// (SYMBOL_SEARCH) to resolve the trading currency.
type AlphaVantage struct {
	client *resty.Client
	apiKey string
}

// AlphaVantageOption configures an AlphaVantage source.
type AlphaVantageOption func(*AlphaVantage)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) AlphaVantageOption {
	return func(av *AlphaVantage) {
		av.client.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every outbound request.
func WithTimeout(timeout time.Duration) AlphaVantageOption {
	return func(av *AlphaVantage) {
		av.client.SetTimeout(timeout)
	}
}

// NewAlphaVantage creates an Alpha Vantage quote source.
func NewAlphaVantage(apiKey string, opts ...AlphaVantageOption) *AlphaVantage {
	client := resty.New()
	client.SetBaseURL("https://www.alphavantage.co")
	client.SetTimeout(15 * time.Second)

	av := &AlphaVantage{client: client, apiKey: apiKey}
	for _, opt := range opts {
		opt(av)
	}
	return av
}

type globalQuoteResponse struct {
	GlobalQuote *globalQuote `json:"Global Quote"`
}

type globalQuote struct {
	Symbol           string `json:"01. symbol"`
	Price            string `json:"05. price"`
	LatestTradingDay string `json:"07. latest trading day"`
	ChangePercent    string `json:"10. change percent"`
}

type symbolSearchResponse struct {
	BestMatches []symbolMatch `json:"bestMatches"`
}

type symbolMatch struct {
	Symbol   string `json:"1. symbol"`
	Currency string `json:"8. currency"`
}

// Fetch returns the current quote for symbol, or nil when the API has no
// usable quote for it. The currency lookup is best effort and falls back
// to the home currency.
func (av *AlphaVantage) Fetch(ctx context.Context, symbol string) (*Record, error) {
	var quoteResp globalQuoteResponse
	resp, err := av.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "GLOBAL_QUOTE",
			"symbol":   symbol,
			"apikey":   av.apiKey,
		}).
		SetResult(&quoteResp).
		Get("/query")
	if err != nil {
		return nil, fmt.Errorf("alpha vantage quote for %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("alpha vantage quote for %s: status %d", symbol, resp.StatusCode())
	}

	gq := quoteResp.GlobalQuote
	if gq == nil || gq.Price == "" {
		// Unknown or unsupported ticker.
		return nil, nil
	}

	price, err := decimal.NewFromString(gq.Price)
	if err != nil {
		return nil, fmt.Errorf("alpha vantage price %q for %s: %w", gq.Price, symbol, err)
	}

	return &Record{
		Code:           gq.Symbol,
		FormattedValue: FormatValue(price, av.currency(ctx, symbol)),
		ChangePct:      gq.ChangePercent,
		AsOfDate:       gq.LatestTradingDay,
	}, nil
}

// currency resolves the trading currency for symbol via SYMBOL_SEARCH.
// Any failure degrades to the fallback currency.
func (av *AlphaVantage) currency(ctx context.Context, symbol string) string {
	var searchResp symbolSearchResponse
	resp, err := av.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "SYMBOL_SEARCH",
			"keywords": symbol,
			"apikey":   av.apiKey,
		}).
		SetResult(&searchResp).
		Get("/query")
	if err != nil || resp.IsError() {
		return FallbackCurrency
	}
	if len(searchResp.BestMatches) == 0 || searchResp.BestMatches[0].Currency == "" {
		return FallbackCurrency
	}
	return searchResp.BestMatches[0].Currency
}
