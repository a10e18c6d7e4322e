package queries

import (
	"context"

	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/errs"
)

// DailySalesResponse is the sales aggregate for one calendar day.
type DailySalesResponse struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalItems   int     `json:"totalItems"`
}

// GetDailySalesQueryHandler computes the aggregate by scanning the
// order store. An order contributes only when payment was taken and it
// was created on the requested day.
type GetDailySalesQueryHandler struct {
	store ports.OrderStore
}

// NewGetDailySalesQueryHandler creates the handler.
func NewGetDailySalesQueryHandler(store ports.OrderStore) (GetDailySalesQueryHandler, error) {
	if store == nil {
		return GetDailySalesQueryHandler{}, errs.NewValueIsRequiredError("store")
	}

	return GetDailySalesQueryHandler{store: store}, nil
}

// Handle returns the sales aggregate for the query's day.
func (h GetDailySalesQueryHandler) Handle(
	ctx context.Context, query GetDailySalesQuery,
) (DailySalesResponse, error) {
	views, err := h.store.All(ctx)
	if err != nil {
		return DailySalesResponse{}, err
	}

	day := query.Day()
	paid := order.PaidStage().String()

	response := DailySalesResponse{Date: day.Format("2006-01-02")}
	for _, view := range views {
		if view.Status != paid {
			continue
		}

		created := view.CreatedAt.In(day.Location())
		if created.Year() != day.Year() || created.YearDay() != day.YearDay() {
			continue
		}

		for _, item := range view.Items {
			response.TotalRevenue += item.Price * float64(item.Quantity)
			response.TotalItems += item.Quantity
		}
	}

	return response, nil
}
