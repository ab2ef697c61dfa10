// Package errs provides the standardized error types used across the
// application. Every type follows the same pattern: a sentinel error variable
// for classification with errors.Is, a struct carrying the error details,
// constructors with and without an underlying cause, and Unwrap support.
//
// Error kinds:
//   - ObjectNotFoundError: a lookup by identifier produced nothing
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value fell outside its bounds
//   - VersionIsInvalidError: an aggregate version is malformed or stale
//   - TransientError: a retryable infrastructure failure (deadlock, lock timeout)
//
// Handlers use the sentinels to map failures onto user-visible responses and
// to decide whether an operation may be retried.
package errs
