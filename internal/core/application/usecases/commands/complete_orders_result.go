package commands

// NotificationResults carries the per-order classifications produced by the
// verify-and-notify loop. Any single order id lands in at most one bucket.
type NotificationResults struct {
	// SuccessfullyNotified holds ids that passed every requirement and whose
	// notification was confirmed by the external system.
	SuccessfullyNotified []int64

	// UnsuccessfullyNotified holds ids that passed every requirement but
	// whose notification could not be confirmed.
	UnsuccessfullyNotified []int64

	// FailedRequirements holds ids that failed one or more business rules.
	FailedRequirements []int64
}

// NewNotificationResults creates an empty classification set.
func NewNotificationResults() NotificationResults {
	return NotificationResults{
		SuccessfullyNotified:   make([]int64, 0),
		UnsuccessfullyNotified: make([]int64, 0),
		FailedRequirements:     make([]int64, 0),
	}
}

// PersistenceResults carries the outcome of the bulk state transition.
type PersistenceResults struct {
	// Attempted is true when the store's bulk update was actually invoked
	// and answered. It stays false when nothing was notified, the run was
	// cancelled before persistence, or the store call itself failed.
	Attempted bool

	// Requested is the number of ids submitted to the store.
	Requested int64

	// Updated is the number of rows the store confirmed transitioned.
	Updated int64

	// NotUpdated holds the notified ids whose transition was not confirmed.
	NotUpdated []int64
}

// CompleteOrdersResult is the aggregated per-order accounting returned for one
// batch invocation. It is created fresh per run and has no life beyond the
// request/response cycle.
type CompleteOrdersResult struct {
	// SuccessfullyNotified: passed all rules and notification succeeded.
	SuccessfullyNotified []int64

	// UnsuccessfullyNotified: passed all rules but notification failed or
	// could not be confirmed; also carries requested ids unknown to the store.
	UnsuccessfullyNotified []int64

	// FailedRequirements: did not pass one or more business rules.
	FailedRequirements []int64

	// FailedToUpdate: successfully notified but the store did not confirm the
	// state transition, an inconsistency downstream systems must reconcile.
	FailedToUpdate []int64

	// AllUpdatesSucceeded is true when the store confirmed at least one
	// transition for the notified set; a partial shortfall keeps it true with
	// the stragglers listed in FailedToUpdate, while zero confirmed
	// transitions force it to false.
	AllUpdatesSucceeded bool
}

// NewCompleteOrdersResult creates an empty result with all buckets allocated,
// so serialized responses carry empty lists rather than nulls.
func NewCompleteOrdersResult() CompleteOrdersResult {
	return CompleteOrdersResult{
		SuccessfullyNotified:   make([]int64, 0),
		UnsuccessfullyNotified: make([]int64, 0),
		FailedRequirements:     make([]int64, 0),
		FailedToUpdate:         make([]int64, 0),
	}
}

// AggregateResult folds the loop classifications, the ids the store never
// returned, and the persistence outcome into the final result shape.
//
// Pure function: no side effects, no I/O. Kept separate so the merge rules
// stay testable independently of the orchestration control flow.
func AggregateResult(
	notification NotificationResults,
	notFound []int64,
	persistence PersistenceResults,
) CompleteOrdersResult {
	result := NewCompleteOrdersResult()

	result.SuccessfullyNotified = append(result.SuccessfullyNotified, notification.SuccessfullyNotified...)
	result.UnsuccessfullyNotified = append(result.UnsuccessfullyNotified, notification.UnsuccessfullyNotified...)
	result.UnsuccessfullyNotified = append(result.UnsuccessfullyNotified, notFound...)
	result.FailedRequirements = append(result.FailedRequirements, notification.FailedRequirements...)
	result.FailedToUpdate = append(result.FailedToUpdate, persistence.NotUpdated...)
	result.AllUpdatesSucceeded = persistence.Attempted && persistence.Updated > 0

	return result
}
