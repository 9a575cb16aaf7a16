// Package errs provides the typed error kinds returned by the consolidation
// core. Every mutating or querying operation reports its expected failure
// modes through these types; only genuine infrastructure failures surface as
// UnavailableError, which is the single retryable kind.
//
// Each error kind follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrOrderNotEligible)
//   - A struct type carrying the failure details
//   - Constructor functions, with and without a cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// Callers classify outcomes with errors.Is against the sentinels rather than
// parsing message text, which keeps the boundary contract stable while the
// messages stay free to carry diagnostic detail.
package errs
