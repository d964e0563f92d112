package ports

import (
	"context"

	"ordercompletion/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store owns all consistency guarantees about order rows; callers never
// mutate persisted state except through CompleteOrders.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a single order aggregate by its identifier.
	// Returns an errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// FetchByIDs retrieves the orders matching the given ids, with their
	// lines. Ids without a matching order are simply absent from the result;
	// missing ids are not an error. The result order is deterministic
	// (ascending id) for a given store state.
	FetchByIDs(ctx context.Context, ids []int64) ([]*order.Order, error)

	// CompleteOrders transitions each id's state from Submitted to Finished,
	// but only for rows currently Submitted, in a single conditional bulk
	// update. Returns the number of rows actually changed. The conditional
	// predicate makes the operation idempotent: re-invoking with the same ids
	// after a successful run returns 0, not an error.
	CompleteOrders(ctx context.Context, ids []int64) (int64, error)
}
