package commands

import (
	"errors"
	"fmt"

	"ordercompletion/internal/pkg/errs"
	"ordercompletion/internal/pkg/guard"
)

var (
	ErrCompleteOrdersCommandIsNotConstructed = errors.New(
		"CompleteOrdersCommand must be created via NewCompleteOrdersCommand constructor",
	)
)

// CompleteOrdersCommand represents a request to complete a batch of orders.
// The id set is deduplicated while preserving first-seen order, keeping the
// downstream processing deterministic for a given request.
//
// An empty id set is a valid command: the handler answers it with an empty
// result and touches no collaborator.
//
// Example:
//
//	cmd, err := commands.NewCompleteOrdersCommand([]int64{10, 11, 12})
//	if err != nil {
//	    return fmt.Errorf("invalid completion request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CompleteOrdersCommand struct {
	orderIDs []int64

	guard guard.ConstructorGuard
}

// NewCompleteOrdersCommand creates a command to complete the given orders.
// Duplicate ids are collapsed; every id must be positive.
func NewCompleteOrdersCommand(orderIDs []int64) (CompleteOrdersCommand, error) {
	seen := make(map[int64]struct{}, len(orderIDs))
	deduped := make([]int64, 0, len(orderIDs))

	for _, id := range orderIDs {
		if id <= 0 {
			return CompleteOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
				"orderID is invalid",
				fmt.Errorf("%d is not greater than 0", id),
			)
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	return CompleteOrdersCommand{
		orderIDs: deduped,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrdersCommandIsNotConstructed if validation fails.
func (c CompleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrdersCommandIsNotConstructed)
}

// OrderIDs returns the deduplicated order ids in request order.
func (c CompleteOrdersCommand) OrderIDs() []int64 {
	ids := make([]int64, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}
