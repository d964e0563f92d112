package services

import (
	"log/slog"

	"ordercompletion/internal/core/domain/model/order"
)

// Requirement is a business rule that decides whether a single order qualifies
// for completion.
//
// Implementations must be free of side effects: Fulfils inspects the order and
// answers, nothing more. FailureReason returns the human-readable explanation
// for the most recent negative answer; its value is unspecified before the
// first failing Fulfils call.
//
// Any component implementing this contract can be registered with the
// RequirementEngine, so the rule set is open while the evaluation loop stays
// closed.
type Requirement interface {
	// Fulfils reports whether the order satisfies this requirement.
	Fulfils(o *order.Order) bool

	// FailureReason explains why the last Fulfils call returned false.
	FailureReason() string
}

// RequirementEngine evaluates an ordered collection of requirements against a
// single order.
//
// Evaluation short-circuits at the first requirement returning false, and the
// reported reason is that requirement's own failure message. An engine with
// zero requirements treats every order as eligible; that degenerate
// configuration is flagged once at construction, not per evaluation.
//
// Example:
//
//	engine := services.NewRequirementEngine(logger,
//	    services.NewFullyDeliveredRequirement(),
//	    services.NewOrderAgeRequirement(clk),
//	    services.NewNotFinishedRequirement(),
//	)
//	eligible, reason := engine.Evaluate(o)
//	if !eligible {
//	    // reason explains the first failed rule
//	}
type RequirementEngine struct {
	requirements []Requirement
}

// NewRequirementEngine creates an engine evaluating the given requirements in
// the given order. An empty rule set makes every order vacuously eligible and
// is logged as a configuration hazard.
func NewRequirementEngine(logger *slog.Logger, requirements ...Requirement) RequirementEngine {
	if len(requirements) == 0 && logger != nil {
		logger.Warn("requirement engine configured with zero rules; every order is eligible")
	}

	engine := RequirementEngine{
		requirements: make([]Requirement, len(requirements)),
	}
	copy(engine.requirements, requirements)
	return engine
}

// Evaluate runs the configured requirements against the order.
// Returns (true, "") when every rule passes, otherwise (false, reason) with
// the first failing rule's message.
func (e RequirementEngine) Evaluate(o *order.Order) (bool, string) {
	for _, requirement := range e.requirements {
		if !requirement.Fulfils(o) {
			return false, requirement.FailureReason()
		}
	}

	return true, ""
}
