package order

import (
	"fmt"

	"ordercompletion/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single forward transition to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Submitted ──> Finished
//
// Finished is a final state with no further transitions. Status is a value
// object that validates state transitions and provides string representations
// for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Submitted is the initial status of an order entering the system.
	// Only submitted orders are candidates for completion.
	Submitted

	// Finished indicates the order has been completed.
	// This is a final state with no further transitions allowed.
	Finished
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Submitted: "Submitted",
		Finished:  "Finished",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted: "Submitted",
		Finished:  "Finished",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Submitted, Finished. Unknown (0) and any other values
// are invalid. Used to ensure Status values from external sources (database,
// API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones, which report as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the status to Finished.
//
// Valid transitions:
//   - Submitted -> Finished
//
// Invalid transitions:
//   - Finished -> Finished (already finished)
//   - Unknown -> Finished (invalid initial state)
//
// Returns (Finished, nil) on a valid transition, or (0, error) when the
// transition is not allowed from the current status. Used by Order.Complete()
// to enforce state transitions.
func (s Status) Complete() (Status, error) {
	if s != Submitted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Finished, nil
}
