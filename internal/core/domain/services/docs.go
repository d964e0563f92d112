// Package services contains stateless domain services for the order completion
// workflow.
//
// The central abstraction is the Requirement interface: a named business rule
// that decides whether a single order qualifies for completion and explains
// itself when it does not. Requirements are pure predicates; any state they
// need (such as the current time) is injected at construction.
//
// RequirementEngine composes an ordered set of requirements and evaluates them
// with short-circuit semantics: the first failing rule decides the outcome and
// supplies the failure reason. New rules can be registered without touching
// the completion workflow.
package services
