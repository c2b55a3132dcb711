// Package errs provides the standardized error types used across the food
// ordering service. Every failure a use case can surface falls into one of a
// small, closed set of categories:
//
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates an invariant
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ForbiddenError: the acting party lacks the role or ownership required
//   - ConflictError: the operation is no longer possible in the current state
//
// Each type follows the same pattern: a sentinel error variable (e.g.
// ErrConflict), a struct carrying the details, constructor functions with and
// without a cause, an Error() method for formatting and an Unwrap() method so
// errors.Is and errors.As work throughout the application.
//
// Forbidden and Conflict are deliberately distinct: Forbidden means "you may
// never do this", Conflict means "this is no longer possible in the order's
// current state" - callers map them to different HTTP statuses.
package errs
