// Package errs provides standardized error types for the order completion service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value fell outside its bounds
//   - ObjectNotFoundError: an object could not be located
//
// Each error type follows the same pattern: a sentinel error variable usable
// with errors.Is, a struct carrying the error details, constructors with and
// without an underlying cause, and Error/Unwrap methods for formatting and
// classification.
package errs
