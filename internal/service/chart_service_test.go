package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
	"github.com/mhazelzet/stock-tracker-backend/internal/model"
	"github.com/mhazelzet/stock-tracker-backend/internal/service"
	"github.com/mhazelzet/stock-tracker-backend/internal/testutil"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func refreshedValuationService(t *testing.T, holdings []model.Holding, quotes *testutil.MockQuoteClient) *service.ValuationService {
	t.Helper()
	svc := newValuationService(quotes)
	svc.Refresh(context.Background(), holdings)
	return svc
}

func TestChartServicePriceComparison(t *testing.T) {
	t.Run("renders a PNG after a refresh", func(t *testing.T) {
		quotes := testutil.NewMockQuoteClient().
			WithQuote("AAPL", 200, 250).
			WithQuote("MSFT", 400, 0)
		valuations := refreshedValuationService(t, []model.Holding{
			testutil.NewHolding("AAPL").WithShares(10).WithBuyPrice(150).WithTargetPrice(220).Build(),
			testutil.NewHolding("MSFT").WithShares(2).WithBuyPrice(300).Build(),
		}, quotes)

		png, err := service.NewChartService(valuations).PriceComparisonPNG()
		require.NoError(t, err)
		require.Greater(t, len(png), len(pngMagic))
		assert.Equal(t, pngMagic, png[:len(pngMagic)])
	})

	t.Run("requires a refresh first", func(t *testing.T) {
		valuations := newValuationService(testutil.NewMockQuoteClient())

		_, err := service.NewChartService(valuations).PriceComparisonPNG()
		assert.ErrorIs(t, err, apperrors.ErrNoRefreshData)
	})

	t.Run("needs at least one price to draw", func(t *testing.T) {
		// The ticker is unknown, so the row has no prices at all.
		quotes := testutil.NewMockQuoteClient().
			WithError("UNKNOWN", apperrors.ErrSymbolNotFound)
		valuations := refreshedValuationService(t, []model.Holding{
			testutil.NewHolding("UNKNOWN").WithShares(1).WithBuyPrice(1).Build(),
		}, quotes)

		_, err := service.NewChartService(valuations).PriceComparisonPNG()
		assert.ErrorIs(t, err, apperrors.ErrNoChartData)
	})

	t.Run("a user target alone is enough for a bar", func(t *testing.T) {
		quotes := testutil.NewMockQuoteClient().
			WithError("UNKNOWN", apperrors.ErrSymbolNotFound)
		valuations := refreshedValuationService(t, []model.Holding{
			testutil.NewHolding("UNKNOWN").WithShares(1).WithBuyPrice(1).WithTargetPrice(50).Build(),
		}, quotes)

		png, err := service.NewChartService(valuations).PriceComparisonPNG()
		require.NoError(t, err)
		assert.Equal(t, pngMagic, png[:len(pngMagic)])
	})
}

func TestChartServiceAllocation(t *testing.T) {
	t.Run("renders a PNG after a refresh", func(t *testing.T) {
		quotes := testutil.NewMockQuoteClient().
			WithQuote("AAPL", 200, 0).
			WithQuote("MSFT", 400, 0)
		valuations := refreshedValuationService(t, []model.Holding{
			testutil.NewHolding("AAPL").WithShares(10).WithBuyPrice(150).Build(),
			testutil.NewHolding("MSFT").WithShares(2).WithBuyPrice(300).Build(),
		}, quotes)

		png, err := service.NewChartService(valuations).AllocationPNG()
		require.NoError(t, err)
		assert.Equal(t, pngMagic, png[:len(pngMagic)])
	})

	t.Run("requires a refresh first", func(t *testing.T) {
		valuations := newValuationService(testutil.NewMockQuoteClient())

		_, err := service.NewChartService(valuations).AllocationPNG()
		assert.ErrorIs(t, err, apperrors.ErrNoRefreshData)
	})

	t.Run("no current values means nothing to slice", func(t *testing.T) {
		// A price alone does not produce a value when shares are zero.
		quotes := testutil.NewMockQuoteClient().WithQuote("AAPL", 200, 0)
		valuations := refreshedValuationService(t, []model.Holding{
			testutil.NewHolding("AAPL").WithBuyPrice(150).Build(),
		}, quotes)

		_, err := service.NewChartService(valuations).AllocationPNG()
		assert.ErrorIs(t, err, apperrors.ErrNoChartData)
	})
}
