package services

import (
	"ordercompletion/internal/core/domain/model/order"
	"ordercompletion/internal/pkg/clock"
)

// orderAgeMonths is the minimum age, in calendar months, an order must reach
// before it qualifies for completion.
const orderAgeMonths = 6

// OrderAgeRequirement qualifies an order for completion only when it is at
// least six calendar months old.
//
// "Six calendar months" means calendar-month subtraction from the injected
// clock's current instant, not a fixed number of days. The boundary is
// inclusive: an order dated exactly six months before now is eligible, one
// second younger is not.
type OrderAgeRequirement struct {
	clock clock.Clock
}

// NewOrderAgeRequirement creates the age rule with an injected clock so that
// evaluation stays deterministic in tests.
func NewOrderAgeRequirement(clk clock.Clock) *OrderAgeRequirement {
	return &OrderAgeRequirement{clock: clk}
}

// Fulfils reports whether the order date lies on or before the instant six
// calendar months ago.
func (r *OrderAgeRequirement) Fulfils(o *order.Order) bool {
	cutoff := r.clock.Now().AddDate(0, -orderAgeMonths, 0)
	return !o.OrderDate().After(cutoff)
}

// FailureReason explains why the last Fulfils call returned false.
func (r *OrderAgeRequirement) FailureReason() string {
	return "order must be at least 6 months old"
}
