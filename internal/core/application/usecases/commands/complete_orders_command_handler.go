package commands

import (
	"context"
	"log/slog"

	"ordercompletion/internal/core/domain/model/order"
	"ordercompletion/internal/core/domain/services"
	"ordercompletion/internal/core/ports"

	"github.com/google/uuid"
)

// CompleteOrdersCommandHandler drives the order completion workflow:
// fetch the requested orders, evaluate the business rules per order, notify
// the external fulfillment system for eligible orders, persist the state
// transition for successfully notified orders in one conditional bulk update,
// and aggregate everything into a per-order accounting.
//
// The handler never surfaces business outcomes as errors. Missing orders,
// failed rules, unconfirmed notifications and persistence shortfalls are all
// resolved into the result's buckets; collaborator failures are logged and
// degraded into a best-effort result. Handle returns an error only for a
// command that bypassed its constructor.
//
// Example:
//
//	handler := commands.NewCompleteOrdersCommandHandler(repo, notifier, engine, logger)
//	cmd, _ := commands.NewCompleteOrdersCommand([]int64{10, 11})
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // invalid command, not a business failure
//	}
//	if !result.AllUpdatesSucceeded {
//	    // inspect result buckets for what went wrong per order
//	}
type CompleteOrdersCommandHandler struct {
	orders   ports.OrderRepository
	notifier ports.NotificationClient
	engine   services.RequirementEngine
	logger   *slog.Logger
}

// NewCompleteOrdersCommandHandler creates the completion workflow handler.
// The repository and notification client are the workflow's only
// collaborators; the requirement engine decides per-order eligibility.
func NewCompleteOrdersCommandHandler(
	orders ports.OrderRepository,
	notifier ports.NotificationClient,
	engine services.RequirementEngine,
	logger *slog.Logger,
) CompleteOrdersCommandHandler {
	return CompleteOrdersCommandHandler{
		orders:   orders,
		notifier: notifier,
		engine:   engine,
		logger:   logger.With("component", "complete_orders_handler"),
	}
}

// Handle processes the batch completion command.
//
// Stage order: fetch, verify-and-notify per order (deterministic store order,
// cancellation checked before each notification), bulk persist, aggregate.
// Cancellation stops new notification attempts immediately and preserves the
// partial results already computed; the bulk update is then skipped and the
// notified-but-unpersisted ids are reported in FailedToUpdate.
func (h *CompleteOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteOrdersCommand,
) (CompleteOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrdersResult{}, err
	}

	ids := cmd.OrderIDs()
	if len(ids) == 0 {
		return NewCompleteOrdersResult(), nil
	}

	log := h.logger.With("run_id", uuid.NewString())

	orders, notFound, fetchErr := h.fetchOrders(ctx, log, ids)
	if fetchErr != nil {
		// Unexpected collaborator failure: degrade to a best-effort result
		// with an empty success set instead of propagating.
		return AggregateResult(NewNotificationResults(), ids, PersistenceResults{}), nil
	}

	notification, cancelled := h.verifyAndNotify(ctx, log, orders)

	persistence := h.persist(ctx, log, notification.SuccessfullyNotified, cancelled)

	result := AggregateResult(notification, notFound, persistence)
	log.InfoContext(ctx, "order completion run finished",
		"requested", len(ids),
		"notified", len(result.SuccessfullyNotified),
		"failed_requirements", len(result.FailedRequirements),
		"failed_to_update", len(result.FailedToUpdate),
		"all_updates_succeeded", result.AllUpdatesSucceeded,
	)
	return result, nil
}

// fetchOrders loads the requested orders and names the ids the store does not
// know. An empty result is a normal outcome, not an error.
func (h *CompleteOrdersCommandHandler) fetchOrders(
	ctx context.Context,
	log *slog.Logger,
	ids []int64,
) ([]*order.Order, []int64, error) {
	orders, err := h.orders.FetchByIDs(ctx, ids)
	if err != nil {
		log.ErrorContext(ctx, "fetching orders failed", "order_ids", ids, "error", err)
		return nil, nil, err
	}

	if len(orders) == 0 {
		log.WarnContext(ctx, "no orders found for requested ids", "order_ids", ids)
	}

	found := make(map[int64]struct{}, len(orders))
	for _, o := range orders {
		found[o.ID()] = struct{}{}
	}

	notFound := make([]int64, 0)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			notFound = append(notFound, id)
		}
	}

	return orders, notFound, nil
}

// verifyAndNotify classifies each fetched order: requirement failures are
// recorded with their reason, eligible orders are notified one at a time in
// store order. Returns the classifications and whether the run was cancelled.
func (h *CompleteOrdersCommandHandler) verifyAndNotify(
	ctx context.Context,
	log *slog.Logger,
	orders []*order.Order,
) (NotificationResults, bool) {
	results := NewNotificationResults()

	for _, o := range orders {
		eligible, reason := h.engine.Evaluate(o)
		if !eligible {
			log.DebugContext(ctx, "order does not meet completion requirements",
				"order_id", o.ID(), "reason", reason)
			results.FailedRequirements = append(results.FailedRequirements, o.ID())
			continue
		}

		// Cancellation gate before the expensive network hop.
		if ctx.Err() != nil {
			log.WarnContext(ctx, "order completion cancelled mid-batch", "order_id", o.ID())
			return results, true
		}

		notified, err := h.notifier.Notify(ctx, o.ID())
		if err != nil {
			if ctx.Err() != nil {
				log.WarnContext(ctx, "notification cancelled mid-batch", "order_id", o.ID())
				return results, true
			}
			log.WarnContext(ctx, "notification failed", "order_id", o.ID(), "error", err)
			notified = false
		}

		if notified {
			results.SuccessfullyNotified = append(results.SuccessfullyNotified, o.ID())
		} else {
			results.UnsuccessfullyNotified = append(results.UnsuccessfullyNotified, o.ID())
		}
	}

	return results, false
}

// persist runs the store's conditional bulk transition for the notified ids
// and classifies the outcome against the submitted count.
func (h *CompleteOrdersCommandHandler) persist(
	ctx context.Context,
	log *slog.Logger,
	notified []int64,
	cancelled bool,
) PersistenceResults {
	persistence := PersistenceResults{NotUpdated: make([]int64, 0)}

	if len(notified) == 0 {
		return persistence
	}

	if cancelled {
		// The context is gone; the store is not called. Notified ids stay
		// unpersisted and must be surfaced for reconciliation.
		persistence.NotUpdated = append(persistence.NotUpdated, notified...)
		return persistence
	}

	updated, err := h.orders.CompleteOrders(ctx, notified)
	if err != nil {
		log.ErrorContext(ctx, "persisting order completion failed", "order_ids", notified, "error", err)
		persistence.NotUpdated = append(persistence.NotUpdated, notified...)
		return persistence
	}

	persistence.Attempted = true
	persistence.Requested = int64(len(notified))
	persistence.Updated = updated

	switch {
	case updated == 0:
		// Notified but nothing recorded: the fulfillment system believes
		// these orders are complete while the store does not.
		log.ErrorContext(ctx, "orders notified but none recorded as finished", "order_ids", notified)
		persistence.NotUpdated = append(persistence.NotUpdated, notified...)
	case updated < persistence.Requested:
		log.WarnContext(ctx, "orders notified but not all recorded as finished",
			"requested", persistence.Requested, "updated", updated)
		persistence.NotUpdated = append(persistence.NotUpdated, h.findUnpersisted(ctx, log, notified)...)
	}

	return persistence
}

// findUnpersisted re-reads the notified orders to name the ids whose
// transition did not take effect. The store contract only reports a count, so
// a partial shortfall needs a second read to identify the stragglers.
func (h *CompleteOrdersCommandHandler) findUnpersisted(
	ctx context.Context,
	log *slog.Logger,
	notified []int64,
) []int64 {
	orders, err := h.orders.FetchByIDs(ctx, notified)
	if err != nil {
		log.WarnContext(ctx, "could not identify unpersisted orders after shortfall", "error", err)
		return nil
	}

	unpersisted := make([]int64, 0)
	for _, o := range orders {
		if o.Status() != order.Finished {
			unpersisted = append(unpersisted, o.ID())
		}
	}

	return unpersisted
}
