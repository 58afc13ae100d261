package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhazelzet/stock-tracker-backend/internal/model"
	"github.com/mhazelzet/stock-tracker-backend/internal/service"
	"github.com/mhazelzet/stock-tracker-backend/internal/testutil"
)

func newValuationService(quotes *testutil.MockQuoteClient) *service.ValuationService {
	return service.NewValuationService(quotes, 4, zerolog.Nop())
}

func TestValuationServiceRefresh(t *testing.T) {
	t.Run("augments every row and totals them", func(t *testing.T) {
		quotes := testutil.NewMockQuoteClient().
			WithQuote("AAPL", 200, 250).
			WithQuote("MSFT", 400, 0)

		svc := newValuationService(quotes)
		result := svc.Refresh(context.Background(), []model.Holding{
			testutil.NewHolding("AAPL").WithShares(10).WithBuyPrice(150).Build(),
			testutil.NewHolding("MSFT").WithShares(2).WithBuyPrice(300).Build(),
		})

		require.Len(t, result.Rows, 2)
		assert.Empty(t, result.Errors)
		assert.Equal(t, 2800.0, result.Summary.TotalValue)
		assert.Equal(t, 2100.0, result.Summary.TotalCost)
		assert.Equal(t, 700.0, result.Summary.TotalProfit)
		assert.Equal(t, 33.33, result.Summary.TotalProfitPct)
	})

	t.Run("a failing ticker does not sink the refresh", func(t *testing.T) {
		quotes := testutil.NewMockQuoteClient().
			WithQuote("AAPL", 200, 0).
			WithError("BADTICKER", errors.New("no quote for symbol"))

		svc := newValuationService(quotes)
		result := svc.Refresh(context.Background(), []model.Holding{
			testutil.NewHolding("AAPL").WithShares(10).WithBuyPrice(150).Build(),
			testutil.NewHolding("BADTICKER").WithShares(5).WithBuyPrice(10).Build(),
		})

		require.Len(t, result.Rows, 2)

		// The failed row keeps its holding fields and its cost, but no
		// market-derived values.
		bad := result.Rows[1]
		assert.Equal(t, "BADTICKER", bad.Ticker)
		assert.Nil(t, bad.CurrentPrice)
		assert.Nil(t, bad.CurrentValue)
		require.NotNil(t, bad.TotalCost)
		assert.Equal(t, 50.0, *bad.TotalCost)

		require.Len(t, result.Errors, 1)
		assert.Equal(t, "BADTICKER", result.Errors[0].Ticker)
		assert.Contains(t, result.Errors[0].Error, "no quote")

		// Totals only include what is known.
		assert.Equal(t, 2000.0, result.Summary.TotalValue)
		assert.Equal(t, 1550.0, result.Summary.TotalCost)
	})

	t.Run("empty tickers skip the fetch", func(t *testing.T) {
		quotes := testutil.NewMockQuoteClient()

		svc := newValuationService(quotes)
		result := svc.Refresh(context.Background(), []model.Holding{
			testutil.NewHolding("   ").WithShares(1).WithBuyPrice(1).Build(),
		})

		assert.Empty(t, quotes.Calls())
		require.Len(t, result.Rows, 1)
		assert.Empty(t, result.Errors)
	})

	t.Run("rows come back in input order", func(t *testing.T) {
		quotes := testutil.NewMockQuoteClient().
			WithQuote("A", 1, 0).
			WithQuote("B", 2, 0).
			WithQuote("C", 3, 0).
			WithQuote("D", 4, 0)

		svc := newValuationService(quotes)
		result := svc.Refresh(context.Background(), []model.Holding{
			testutil.NewHolding("A").Build(),
			testutil.NewHolding("B").Build(),
			testutil.NewHolding("C").Build(),
			testutil.NewHolding("D").Build(),
		})

		var got []string
		for _, row := range result.Rows {
			got = append(got, row.Ticker)
		}
		assert.Equal(t, []string{"A", "B", "C", "D"}, got)
	})

	t.Run("empty table refreshes to empty result", func(t *testing.T) {
		svc := newValuationService(testutil.NewMockQuoteClient())

		result := svc.Refresh(context.Background(), nil)

		assert.Empty(t, result.Rows)
		assert.Empty(t, result.Errors)
		assert.Equal(t, 0.0, result.Summary.TotalValue)
	})
}

func TestValuationServiceLastRefresh(t *testing.T) {
	svc := newValuationService(testutil.NewMockQuoteClient().WithQuote("AAPL", 200, 0))

	_, ok := svc.LastRefresh()
	assert.False(t, ok, "no refresh has run yet")

	first := svc.Refresh(context.Background(), []model.Holding{
		testutil.NewHolding("AAPL").WithShares(10).WithBuyPrice(150).Build(),
	})

	last, ok := svc.LastRefresh()
	require.True(t, ok)
	assert.Equal(t, first.Summary, last.Summary)
	assert.Equal(t, first.Rows, last.Rows)

	// The next refresh replaces the result wholesale.
	svc.Refresh(context.Background(), nil)
	last, ok = svc.LastRefresh()
	require.True(t, ok)
	assert.Empty(t, last.Rows)
}
