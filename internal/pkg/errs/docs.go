// Package errs provides standardized error types for the shipper client.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types.
//
// Validation errors, raised by domain objects and command/query constructors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid (including illegal
//     order status transitions)
//   - ObjectNotFoundError: For when an object cannot be found
//
// Remote operation errors, raised at the order service boundary and used by
// the lifecycle state machine to decide between keeping and rolling back an
// optimistic update:
//   - ConflictError: The service rejected the operation on business grounds
//   - UnauthorizedError: The session is no longer valid
//   - NetworkUnavailableError: Transport failure, operation outcome unknown
//   - ServerFailureError: Unexpected upstream failure
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
