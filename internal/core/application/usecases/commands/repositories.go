// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, collaborator calls,
// and explicit per-stage results instead of exceptions for expected outcomes.
package commands

import (
	"context"

	"ordercompletion/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers
// that write aggregates. The completion workflow itself deliberately does not
// run inside one: its only write is the store's single conditional bulk
// update, and holding a transaction open across notification round-trips
// would couple external latency to database locks.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
