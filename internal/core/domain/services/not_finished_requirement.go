package services

import (
	"ordercompletion/internal/core/domain/model/order"
)

// NotFinishedRequirement qualifies an order for completion only while it is
// still in Submitted status. Orders already finished fail this rule instead of
// producing a double completion.
type NotFinishedRequirement struct{}

// NewNotFinishedRequirement creates the not-yet-finished rule.
func NewNotFinishedRequirement() *NotFinishedRequirement {
	return &NotFinishedRequirement{}
}

// Fulfils reports whether the order is still submitted.
func (r *NotFinishedRequirement) Fulfils(o *order.Order) bool {
	return o.Status() == order.Submitted
}

// FailureReason explains why the last Fulfils call returned false.
func (r *NotFinishedRequirement) FailureReason() string {
	return "order has already been marked as finished"
}
