package sheets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhazelzet/stock-tracker-backend/internal/model"
	"github.com/mhazelzet/stock-tracker-backend/internal/sheets"
	"github.com/mhazelzet/stock-tracker-backend/internal/testutil"
)

func newTestStore(t *testing.T) (*sheets.Store, *testutil.FakeSheetsServer) {
	t.Helper()

	fake := testutil.NewFakeSheetsServer(t)
	store := sheets.NewStore(fake.Client(), "sheet-abc", "Sheet1")
	return store, fake
}

func header() []any {
	return []any{sheets.ColumnTicker, sheets.ColumnShares, sheets.ColumnBuyPrice, sheets.ColumnTargetPrice}
}

func TestSheetStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("parses typed and formatted cells", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.SetValues([][]any{
			header(),
			[]any{"aapl", 10.0, "150", "220"},
			[]any{"MSFT", "2.5", "$1,300.10", ""},
		})

		holdings, warnings, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		require.Len(t, holdings, 2)

		assert.Equal(t, "AAPL", holdings[0].Ticker, "tickers are upper-cased")
		assert.Equal(t, 10.0, holdings[0].Shares)
		assert.Equal(t, 150.0, holdings[0].BuyPrice)
		require.NotNil(t, holdings[0].TargetPrice)
		assert.Equal(t, 220.0, *holdings[0].TargetPrice)

		assert.Equal(t, 2.5, holdings[1].Shares)
		assert.Equal(t, 1300.10, holdings[1].BuyPrice, "currency formatting is stripped")
		assert.Nil(t, holdings[1].TargetPrice, "empty target cell means no target")
	})

	t.Run("columns are located by header, not position", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.SetValues([][]any{
			{sheets.ColumnBuyPrice, sheets.ColumnTicker, sheets.ColumnShares},
			{"150", "AAPL", "10"},
		})

		holdings, _, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, holdings, 1)
		assert.Equal(t, "AAPL", holdings[0].Ticker)
		assert.Equal(t, 10.0, holdings[0].Shares)
		assert.Equal(t, 150.0, holdings[0].BuyPrice)
	})

	t.Run("bad numeric cells coerce to zero with a warning", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.SetValues([][]any{
			header(),
			[]any{"AAPL", "ten", "150", "maybe"},
		})

		holdings, warnings, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, holdings, 1)
		assert.Equal(t, 0.0, holdings[0].Shares)
		assert.Nil(t, holdings[0].TargetPrice)

		require.Len(t, warnings, 2)
		assert.Equal(t, sheets.ColumnShares, warnings[0].Field)
		assert.Equal(t, "ten", warnings[0].Value)
		assert.Equal(t, sheets.ColumnTargetPrice, warnings[1].Field)
	})

	t.Run("short rows fill with zeros", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.SetValues([][]any{
			header(),
			[]any{"AAPL"},
		})

		holdings, warnings, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		require.Len(t, holdings, 1)
		assert.Equal(t, 0.0, holdings[0].Shares)
		assert.Equal(t, 0.0, holdings[0].BuyPrice)
	})

	t.Run("empty sheet loads as empty table", func(t *testing.T) {
		store, _ := newTestStore(t)

		holdings, warnings, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, holdings)
		assert.NotNil(t, holdings)
		assert.Empty(t, warnings)
	})

	t.Run("header-only sheet loads as empty table", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.SetValues([][]any{header()})

		holdings, _, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, holdings)
	})

	t.Run("missing ticker column fails the load", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.SetValues([][]any{
			{"Symbol", "Qty"},
			{"AAPL", "10"},
		})

		_, _, err := store.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Ticker")
	})

	t.Run("read failure surfaces the API error", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.FailReads = true

		_, _, err := store.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read sheet")
	})
}

func TestSheetStoreSave(t *testing.T) {
	ctx := context.Background()

	t.Run("writes header plus rows", func(t *testing.T) {
		store, fake := newTestStore(t)

		err := store.Save(ctx, []model.Holding{
			testutil.NewHolding("AAPL").WithShares(10).WithBuyPrice(150).WithTargetPrice(220).Build(),
			testutil.NewHolding("MSFT").WithShares(2).WithBuyPrice(300).Build(),
		})
		require.NoError(t, err)

		values := fake.Values()
		require.Len(t, values, 3)
		assert.Equal(t, header(), values[0])
		assert.Equal(t, []any{"AAPL", 10.0, 150.0, 220.0}, values[1])
		assert.Equal(t, []any{"MSFT", 2.0, 300.0, ""}, values[2], "no target writes an empty cell")
	})

	t.Run("saving an empty table leaves only the header", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.SetValues([][]any{
			header(),
			[]any{"AAPL", 10.0, 150.0, ""},
		})

		require.NoError(t, store.Save(ctx, nil))

		values := fake.Values()
		require.Len(t, values, 1)
		assert.Equal(t, header(), values[0])
	})

	t.Run("round trip", func(t *testing.T) {
		store, _ := newTestStore(t)

		saved := []model.Holding{
			testutil.NewHolding("AAPL").WithShares(10).WithBuyPrice(150.55).WithTargetPrice(220).Build(),
			testutil.NewHolding("GOOG").Build(),
		}
		require.NoError(t, store.Save(ctx, saved))

		loaded, warnings, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, saved, loaded)
	})

	t.Run("write failure surfaces the API error", func(t *testing.T) {
		store, fake := newTestStore(t)
		fake.FailWrites = true

		err := store.Save(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to clear sheet")
	})
}
