package order

import (
	"fmt"

	"ordercompletion/internal/pkg/errs"
)

// Line is a value object describing one ordered product within an order and
// how much of it has been delivered so far.
//
// Line follows these invariants:
//   - productID must be positive
//   - orderedQuantity must be positive
//   - deliveredQuantity, when present, must not be negative
//
// A nil deliveredQuantity means the line has not been delivered yet. The
// delivered quantity is deliberately not capped at the ordered quantity;
// over-delivery is a data-quality concern of the upstream system, not a
// domain invariant here.
type Line struct {
	productID         int64
	orderedQuantity   int
	deliveredQuantity *int
}

// NewLine creates a validated order line.
//
// Parameters:
//   - productID: identifier of the ordered product (must be positive)
//   - orderedQuantity: quantity ordered (must be positive)
//   - deliveredQuantity: quantity delivered so far, nil when not yet delivered
//     (must not be negative when present)
func NewLine(productID int64, orderedQuantity int, deliveredQuantity *int) (Line, error) {
	if productID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"productID is invalid",
			fmt.Errorf("%d is not greater than 0", productID),
		)
	}

	if orderedQuantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"orderedQuantity is invalid",
			fmt.Errorf("%d is not greater than 0", orderedQuantity),
		)
	}

	if deliveredQuantity != nil && *deliveredQuantity < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"deliveredQuantity is invalid",
			fmt.Errorf("%d is negative", *deliveredQuantity),
		)
	}

	line := Line{
		productID:       productID,
		orderedQuantity: orderedQuantity,
	}

	if deliveredQuantity != nil {
		delivered := *deliveredQuantity
		line.deliveredQuantity = &delivered
	}

	return line, nil
}

// ProductID returns the identifier of the ordered product.
func (l Line) ProductID() int64 {
	return l.productID
}

// OrderedQuantity returns the quantity that was ordered.
func (l Line) OrderedQuantity() int {
	return l.orderedQuantity
}

// DeliveredQuantity returns the quantity delivered so far.
// Returns nil when the line has not been delivered yet.
func (l Line) DeliveredQuantity() *int {
	if l.deliveredQuantity == nil {
		return nil
	}
	delivered := *l.deliveredQuantity
	return &delivered
}

// IsFullyDelivered reports whether the delivered quantity is present and
// covers the ordered quantity.
func (l Line) IsFullyDelivered() bool {
	return l.deliveredQuantity != nil && *l.deliveredQuantity >= l.orderedQuantity
}
