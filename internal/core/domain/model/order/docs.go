// Package order provides the domain entities and business logic for order
// completion. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: the aggregate root carrying identity, order date, state, and lines
//   - Line: a value object describing one ordered product and its delivery progress
//   - Status: a state machine enforcing the Submitted -> Finished transition
//
// Key business rules:
//   - Orders must have a positive identifier and a non-zero order date
//   - Order lines must reference a product and order a positive quantity
//   - Orders can only transition from Submitted to Finished, never back
//   - Orders can only be created through NewOrder or restored through RestoreOrder
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
