// Package http exposes the order completion workflow over a REST API.
package http

import (
	"net/http"

	"ordercompletion/internal/core/application/usecases/commands"
	"ordercompletion/internal/core/application/usecases/queries"
	"ordercompletion/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	completeOrdersHandler commands.CompleteOrdersCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler

	// Query handlers
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	completeOrdersHandler commands.CompleteOrdersCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
) *Server {
	return &Server{
		completeOrdersHandler:       completeOrdersHandler,
		createOrderHandler:          createOrderHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/complete", s.CompleteOrders)
	api.GET("/orders/active", s.GetOrders)
}

// CompleteOrders handles POST /api/v1/orders/complete - runs the completion
// workflow for the requested order ids.
//
// Business outcomes never surface as 5xx: a run where no order was notified
// or nothing was updated answers 400 with the full per-order accounting,
// everything else answers 200.
func (s *Server) CompleteOrders(ctx echo.Context) error {
	var request CompleteOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCompleteOrdersCommand(request.OrderIDs)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ids: " + err.Error(),
		})
	}

	result, err := s.completeOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to complete orders",
		})
	}

	if !result.AllUpdatesSucceeded || len(result.SuccessfullyNotified) == 0 {
		return ctx.JSON(http.StatusBadRequest, CompleteOrdersFailure{
			Message:                "None of the requested orders were updated successfully.",
			SuccessfullyNotified:   result.SuccessfullyNotified,
			UnsuccessfullyNotified: result.UnsuccessfullyNotified,
			FailedRequirements:     result.FailedRequirements,
			FailedToUpdate:         result.FailedToUpdate,
		})
	}

	return ctx.JSON(http.StatusOK, CompleteOrdersResponse{
		SuccessfullyNotified:   result.SuccessfullyNotified,
		UnsuccessfullyNotified: result.UnsuccessfullyNotified,
		FailedRequirements:     result.FailedRequirements,
		FailedToUpdate:         result.FailedToUpdate,
		AllUpdatesSucceeded:    result.AllUpdatesSucceeded,
	})
}

// CreateOrder handles POST /api/v1/orders - registers a new submitted order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]order.Line, 0, len(newOrder.Lines))
	for _, l := range newOrder.Lines {
		line, err := order.NewLine(l.ProductID, l.OrderedQuantity, l.DeliveredQuantity)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order line: " + err.Error(),
			})
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.ID, newOrder.OrderDate, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrders handles GET /api/v1/orders/active - retrieves all uncompleted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:        o.ID,
			OrderDate: o.OrderDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
