package quote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"finassist/internal/quote"
)

func newAlphaVantageServer(t *testing.T, quoteBody, searchBody string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/query", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("function") {
		case "GLOBAL_QUOTE":
			_, _ = w.Write([]byte(quoteBody))
		case "SYMBOL_SEARCH":
			_, _ = w.Write([]byte(searchBody))
		default:
			t.Errorf("unexpected function %q", r.URL.Query().Get("function"))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAlphaVantageFetch(t *testing.T) {
	server := newAlphaVantageServer(t,
		`{"Global Quote": {
			"01. symbol": "PETR4.SA",
			"05. price": "36.4500",
			"07. latest trading day": "2025-06-11",
			"10. change percent": "+1.12%"
		}}`,
		`{"bestMatches": [{"1. symbol": "PETR4.SA", "8. currency": "BRL"}]}`,
	)

	source := quote.NewAlphaVantage("test-key", quote.WithBaseURL(server.URL))
	record, err := source.Fetch(context.Background(), "PETR4.SA")
	require.NoError(t, err)
	require.NotNil(t, record)

	require.Equal(t, "PETR4.SA", record.Code)
	require.Equal(t, "R$ 36.45", record.FormattedValue)
	require.Equal(t, "+1.12%", record.ChangePct)
	require.Equal(t, "2025-06-11", record.AsOfDate)
}

func TestAlphaVantageFetchUSDCurrency(t *testing.T) {
	server := newAlphaVantageServer(t,
		`{"Global Quote": {
			"01. symbol": "AMZN",
			"05. price": "187.1",
			"07. latest trading day": "2025-06-11",
			"10. change percent": "-0.34%"
		}}`,
		`{"bestMatches": [{"1. symbol": "AMZN", "8. currency": "USD"}]}`,
	)

	source := quote.NewAlphaVantage("test-key", quote.WithBaseURL(server.URL))
	record, err := source.Fetch(context.Background(), "AMZN")
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, "US$ 187.10", record.FormattedValue)
}

func TestAlphaVantageFetchUnknownSymbol(t *testing.T) {
	// The API answers an empty object for tickers it does not know.
	server := newAlphaVantageServer(t, `{}`, `{"bestMatches": []}`)

	source := quote.NewAlphaVantage("test-key", quote.WithBaseURL(server.URL))
	record, err := source.Fetch(context.Background(), "NOPE")
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestAlphaVantageCurrencyFallback(t *testing.T) {
	server := newAlphaVantageServer(t,
		`{"Global Quote": {
			"01. symbol": "XXXX3.SA",
			"05. price": "10",
			"07. latest trading day": "2025-06-11",
			"10. change percent": "+0.00%"
		}}`,
		`{"bestMatches": []}`,
	)

	source := quote.NewAlphaVantage("test-key", quote.WithBaseURL(server.URL))
	record, err := source.Fetch(context.Background(), "XXXX3.SA")
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, "R$ 10.00", record.FormattedValue)
}

func TestAlphaVantageFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	source := quote.NewAlphaVantage("test-key", quote.WithBaseURL(server.URL))
	record, err := source.Fetch(context.Background(), "PETR4.SA")
	require.Error(t, err)
	require.Nil(t, record)
}
