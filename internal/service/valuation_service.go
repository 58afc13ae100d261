package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mhazelzet/stock-tracker-backend/internal/model"
	"github.com/mhazelzet/stock-tracker-backend/internal/yahoo"
)

// ValuationService runs the refresh cycle: fetch a market snapshot per
// holding, valuate every row, and fold the rows into portfolio totals.
type ValuationService struct {
	quotes  yahoo.Client
	workers int
	log     zerolog.Logger

	mu   sync.Mutex
	last *model.RefreshResult
}

// NewValuationService creates a new ValuationService. workers bounds the
// concurrent quote fan-out; values below 1 are clamped to 1 (sequential).
func NewValuationService(quotes yahoo.Client, workers int, log zerolog.Logger) *ValuationService {
	if workers < 1 {
		workers = 1
	}
	return &ValuationService{
		quotes:  quotes,
		workers: workers,
		log:     log.With().Str("service", "valuation").Logger(),
	}
}

// Refresh fetches market data for every holding and returns the augmented
// table in input order, the portfolio summary, and the per-ticker fetch
// errors. A failed fetch only affects its own row: that row keeps its
// holding fields with absent derived values, and the refresh continues
// over the remaining rows. Rows with an empty ticker skip the fetch
// entirely.
//
// The fan-out is bounded by the configured worker count. Refresh itself
// never returns an error; the result is kept for chart rendering until the
// next refresh replaces it.
func (s *ValuationService) Refresh(ctx context.Context, holdings []model.Holding) model.RefreshResult {
	rows := make([]model.Valuation, len(holdings))
	fetchErrs := make([]*model.FetchError, len(holdings))

	g := &errgroup.Group{}
	g.SetLimit(s.workers)

	for i, h := range holdings {
		i, h := i, h
		g.Go(func() error {
			ticker := NormalizeTicker(h.Ticker)

			var snap *model.Snapshot
			if ticker != "" {
				quote, err := s.quotes.GetQuote(ctx, ticker)
				if err != nil {
					s.log.Error().Err(err).Str("ticker", ticker).Msg("quote fetch failed")
					fetchErrs[i] = &model.FetchError{Ticker: ticker, Error: err.Error()}
				} else {
					snap = &model.Snapshot{
						CurrentPrice:  quote.Price(),
						AnalystTarget: quote.TargetMeanPrice,
					}
				}
			}

			rows[i] = Valuate(h, snap)
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	result := model.RefreshResult{
		Rows:    rows,
		Summary: Summarize(rows),
		Errors:  []model.FetchError{},
	}
	for _, fe := range fetchErrs {
		if fe != nil {
			result.Errors = append(result.Errors, *fe)
		}
	}

	s.log.Info().
		Int("rows", len(rows)).
		Int("errors", len(result.Errors)).
		Float64("total_value", result.Summary.TotalValue).
		Msg("refresh complete")

	s.mu.Lock()
	s.last = &result
	s.mu.Unlock()

	return result
}

// LastRefresh returns the most recent refresh result, if any. The result is
// ephemeral: it lives in memory only and is replaced wholesale by the next
// refresh.
func (s *ValuationService) LastRefresh() (model.RefreshResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return model.RefreshResult{}, false
	}
	return *s.last, true
}
