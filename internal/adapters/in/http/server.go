// Package http is the inbound REST adapter: order submission, push
// subscription registration, and the daily sales report.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"eatery/internal/core/application/usecases/commands"
	"eatery/internal/core/application/usecases/queries"
	"eatery/internal/core/domain/model/notification"
	"eatery/internal/core/domain/model/order"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the order submission body.
type NewOrderRequest struct {
	Items []NewOrderItem `json:"items"`
}

// NewOrderItem is one line of a submitted order.
type NewOrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	submitOrderHandler   commands.SubmitOrderCommandHandler
	subscribePushHandler commands.SubscribePushCommandHandler
	dailySalesHandler    queries.GetDailySalesQueryHandler
}

// NewServer creates the REST server with the required command and query
// handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	subscribePushHandler commands.SubscribePushCommandHandler,
	dailySalesHandler queries.GetDailySalesQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:   submitOrderHandler,
		subscribePushHandler: subscribePushHandler,
		dailySalesHandler:    dailySalesHandler,
	}
}

// RegisterRoutes mounts the REST endpoints on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.POST("/api/v1/orders/:id/subscription", s.SubscribePush)
	e.GET("/api/v1/sales/today", s.GetTodaySales)
	e.GET("/health", s.Health)
}

// CreateOrder handles POST /api/v1/orders - submits a new order into
// the pipeline.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, line := range request.Items {
		item, err := order.NewItem(line.Name, line.Price, line.Quantity)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order item: " + err.Error(),
			})
		}
		items = append(items, item)
	}

	cmd, err := commands.NewSubmitOrderCommand(items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	view, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to submit order",
		})
	}

	return ctx.JSON(http.StatusCreated, view)
}

// SubscribePush handles POST /api/v1/orders/:id/subscription - stores a
// web-push subscription for the order's customer.
func (s *Server) SubscribePush(ctx echo.Context) error {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var subscription notification.Subscription
	if err := ctx.Bind(&subscription); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSubscribePushCommand(order.ID(orderID), subscription)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid subscription: " + err.Error(),
		})
	}

	if err := s.subscribePushHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to store subscription",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTodaySales handles GET /api/v1/sales/today - reports the current
// day's revenue over fully paid orders.
func (s *Server) GetTodaySales(ctx echo.Context) error {
	query, err := queries.NewGetDailySalesQuery(time.Now())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build sales query",
		})
	}

	response, err := s.dailySalesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute sales report",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
