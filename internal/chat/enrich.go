package chat

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"finassist/internal/quote"
)

// Enrich overlays live quote data on every financial-datum response that
// carries a ticker code. Entries are fetched concurrently; output order
// matches input order. Fetch failures and unknown tickers leave the
// model-provided placeholder values untouched.
func Enrich(ctx context.Context, source quote.Source, responses []Response) []Response {
	if source == nil || len(responses) == 0 {
		return responses
	}

	enriched := make([]Response, len(responses))
	copy(enriched, responses)

	g, ctx := errgroup.WithContext(ctx)
	for i := range enriched {
		if enriched[i].Kind != KindFinancialDatum || enriched[i].Datum.Code == "" {
			continue
		}
		i := i
		g.Go(func() error {
			record, err := source.Fetch(ctx, enriched[i].Datum.Code)
			if err != nil {
				log.Printf("quote fetch for %s failed: %v", enriched[i].Datum.Code, err)
				return nil
			}
			if record == nil {
				return nil
			}
			enriched[i].Datum.Value = record.FormattedValue
			enriched[i].Datum.ChangePct = record.ChangePct
			enriched[i].Datum.Date = record.AsOfDate
			return nil
		})
	}
	_ = g.Wait()

	return enriched
}
