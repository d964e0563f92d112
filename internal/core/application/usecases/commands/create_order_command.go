package commands

import (
	"errors"
	"fmt"
	"time"

	"ordercompletion/internal/core/domain/model/order"
	"ordercompletion/internal/pkg/errs"
	"ordercompletion/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new submitted order
// with its lines.
//
// Example:
//
//	line, _ := order.NewLine(7, 3, nil)
//	cmd, err := commands.NewCreateOrderCommand(42, orderDate, []order.Line{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct {
	orderID   int64
	orderDate time.Time
	lines     []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order id is positive and the order date is non-zero.
// The line set may be empty.
func NewCreateOrderCommand(orderID int64, orderDate time.Time, lines []order.Line) (CreateOrderCommand, error) {
	if orderID <= 0 {
		return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderID is invalid",
			fmt.Errorf("%d is not greater than 0", orderID),
		)
	}

	if orderDate.IsZero() {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("orderDate")
	}

	cmd := CreateOrderCommand{
		orderID:   orderID,
		orderDate: orderDate,
		lines:     make([]order.Line, len(lines)),
		guard:     guard.NewConstructorGuard(),
	}
	copy(cmd.lines, lines)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() int64 {
	return c.orderID
}

// OrderDate returns the instant the order was placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Lines returns a copy of the order lines.
func (c CreateOrderCommand) Lines() []order.Line {
	lines := make([]order.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}
