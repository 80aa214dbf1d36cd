// Package errs provides standardized error types for the laundry application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps the service's error taxonomy onto concrete types:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation
//     failures, rejected before any computation or mutation
//   - ObjectNotFoundError: unknown order or expense identifier
//   - ObjectAlreadyExistsError: unique key collision (e.g. a concurrently allocated order ID)
//   - RetryableError: a collision that survived the retry policy; the caller may resubmit
//   - ConfirmationRequiredError: a destructive action that needs explicit confirmation
//   - ConsistencyWarning: malformed stored data; logged, never returned
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, so adapters
// can map them to transport codes without knowing the concrete types.
package errs
