package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatery/internal/adapters/out/memory"
	"eatery/internal/core/application/usecases/queries"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/errs"
)

func TestNewGetDailySalesQuery(t *testing.T) {
	t.Run("valid day", func(t *testing.T) {
		day := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

		query, err := queries.NewGetDailySalesQuery(day)

		require.NoError(t, err)
		assert.True(t, day.Equal(query.Day()))
	})

	t.Run("zero day is rejected", func(t *testing.T) {
		_, err := queries.NewGetDailySalesQuery(time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetDailySalesQueryHandler_Handle(t *testing.T) {
	day := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

	mustItem := func(name string, price float64, quantity int) order.Item {
		item, err := order.NewItem(name, price, quantity)
		require.NoError(t, err)
		return item
	}

	payInFull := func(t *testing.T, store *memory.OrderStore, id order.ID) {
		t.Helper()
		_, err := store.Mutate(t.Context(), id, func(o *order.Order) error {
			if err := o.AdvanceTo(order.AwaitingPayment); err != nil {
				return err
			}
			return o.AdvanceTo(order.Served)
		})
		require.NoError(t, err)
	}

	t.Run("only fully paid orders contribute", func(t *testing.T) {
		store := memory.NewOrderStore(func() time.Time { return day })

		paid, err := store.Append(t.Context(), []order.Item{mustItem("Ramen", 500, 2)})
		require.NoError(t, err)
		payInFull(t, store, paid.ID)

		_, err = store.Append(t.Context(), []order.Item{mustItem("Gyoza", 300, 1)})
		require.NoError(t, err)

		handler, err := queries.NewGetDailySalesQueryHandler(store)
		require.NoError(t, err)
		query, err := queries.NewGetDailySalesQuery(day)
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-14", response.Date)
		assert.InDelta(t, 1000.0, response.TotalRevenue, 0.0001)
		assert.Equal(t, 2, response.TotalItems)
	})

	t.Run("orders from another day are excluded", func(t *testing.T) {
		clock := day.AddDate(0, 0, -1)
		store := memory.NewOrderStore(func() time.Time { return clock })

		stale, err := store.Append(t.Context(), []order.Item{mustItem("Ramen", 500, 1)})
		require.NoError(t, err)
		payInFull(t, store, stale.ID)

		handler, err := queries.NewGetDailySalesQueryHandler(store)
		require.NoError(t, err)
		query, err := queries.NewGetDailySalesQuery(day)
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Zero(t, response.TotalRevenue)
		assert.Zero(t, response.TotalItems)
	})

	t.Run("empty store yields an empty aggregate", func(t *testing.T) {
		handler, err := queries.NewGetDailySalesQueryHandler(memory.NewOrderStore(nil))
		require.NoError(t, err)
		query, err := queries.NewGetDailySalesQuery(day)
		require.NoError(t, err)

		response, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-14", response.Date)
		assert.Zero(t, response.TotalRevenue)
		assert.Zero(t, response.TotalItems)
	})

	t.Run("nil store is rejected", func(t *testing.T) {
		_, err := queries.NewGetDailySalesQueryHandler(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
