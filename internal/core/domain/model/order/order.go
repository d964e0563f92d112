package order

import (
	"errors"
	"fmt"
	"time"

	"ordercompletion/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from submission through completion.
//
// Order follows these invariants:
//   - Must have a positive unique identifier
//   - Must have a non-zero order date
//   - Status transitions follow defined business rules (Submitted -> Finished)
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. The line set may be empty; whether
// an empty order qualifies for completion is a business-rule concern, not a
// construction error.
type Order struct {
	// id is the unique identifier for the order
	id int64

	// orderDate is the instant the order was placed
	orderDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	// lines holds the ordered products and their delivery progress
	lines []Line

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Submitted status.
//
// Parameters:
//   - id: unique identifier for the order (must be positive)
//   - orderDate: the instant the order was placed (must be non-zero)
//   - lines: the ordered products (may be empty)
//
// Returns the created order if all validations pass, or a validation error.
func NewOrder(id int64, orderDate time.Time, lines []Line) (*Order, error) {
	order := &Order{
		status:        Submitted,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	order.setLines(lines)
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
// Unlike NewOrder it accepts any valid status, allowing already-finished
// orders to be rehydrated.
func RestoreOrder(id int64, orderDate time.Time, status Status, lines []Line) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderDate(orderDate),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	order.setLines(lines)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct. Call it when reconstructing orders from persistence to ensure
// data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int64 {
	return o.id
}

// OrderDate returns the instant the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Lines returns a copy of the order's lines. Callers cannot mutate the
// aggregate's state through the returned slice.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Complete marks the order as finished.
//
// This method enforces the following business rules:
//   - The order must be in Submitted status
//   - Finished is a final state with no further transitions
//
// Returns nil on successful completion, or an error when the order is not in
// Submitted status.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setOrderDate validates and sets the order's placement instant.
func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

// setStatus validates and sets the order's status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setLines copies the given lines into the aggregate.
func (o *Order) setLines(lines []Line) {
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
}
