package http

import "time"

// Error is the standard error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CompleteOrdersRequest is the body for POST /api/v1/orders/complete.
type CompleteOrdersRequest struct {
	OrderIDs []int64 `json:"orderIds"`
}

// CompleteOrdersResponse reports the per-order outcome of a completion run.
// Every requested order lands in exactly one of the id lists.
type CompleteOrdersResponse struct {
	SuccessfullyNotified   []int64 `json:"successfullyNotified"`
	UnsuccessfullyNotified []int64 `json:"unsuccessfullyNotified"`
	FailedRequirements     []int64 `json:"failedRequirements"`
	FailedToUpdate         []int64 `json:"failedToUpdate"`
	AllUpdatesSucceeded    bool    `json:"allUpdatesSucceeded"`
}

// CompleteOrdersFailure is the 400 body for a run where no order made it
// through. It carries the same accounting so callers can see what happened.
type CompleteOrdersFailure struct {
	Message                string  `json:"message"`
	SuccessfullyNotified   []int64 `json:"successfullyNotified"`
	UnsuccessfullyNotified []int64 `json:"unsuccessfullyNotified"`
	FailedRequirements     []int64 `json:"failedRequirements"`
	FailedToUpdate         []int64 `json:"failedToUpdate"`
}

// NewOrderLine is a single product line in an order creation request.
type NewOrderLine struct {
	ProductID         int64 `json:"productId"`
	OrderedQuantity   int   `json:"orderedQuantity"`
	DeliveredQuantity *int  `json:"deliveredQuantity,omitempty"`
}

// NewOrder is the body for POST /api/v1/orders.
type NewOrder struct {
	ID        int64          `json:"id"`
	OrderDate time.Time      `json:"orderDate"`
	Lines     []NewOrderLine `json:"lines"`
}

// Order is a single entry in the active orders listing.
type Order struct {
	ID        int64     `json:"id"`
	OrderDate time.Time `json:"orderDate"`
}
