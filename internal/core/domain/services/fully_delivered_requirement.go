package services

import (
	"ordercompletion/internal/core/domain/model/order"
)

// FullyDeliveredRequirement qualifies an order for completion only when it has
// at least one line and every line has been delivered in full.
//
// An order with zero lines is never eligible. That is an explicit special
// case, not an error: there is nothing to have delivered, so there is nothing
// to complete.
type FullyDeliveredRequirement struct {
	failureReason string
}

// NewFullyDeliveredRequirement creates the full-delivery rule.
func NewFullyDeliveredRequirement() *FullyDeliveredRequirement {
	return &FullyDeliveredRequirement{}
}

// Fulfils reports whether every line of the order has a delivered quantity
// covering its ordered quantity.
func (r *FullyDeliveredRequirement) Fulfils(o *order.Order) bool {
	lines := o.Lines()
	if len(lines) == 0 {
		r.failureReason = "no order lines were found in that order"
		return false
	}

	for _, line := range lines {
		if !line.IsFullyDelivered() {
			r.failureReason = "all order lines must be fully delivered"
			return false
		}
	}

	return true
}

// FailureReason explains why the last Fulfils call returned false.
func (r *FullyDeliveredRequirement) FailureReason() string {
	return r.failureReason
}
