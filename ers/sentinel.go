package ers

// ErrInvariantViolation is the root error of the error object
// produced when a container's internal bookkeeping does not match its
// contents.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is at the root of any error produced by
// converting a panic into an error.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvalidInput indicates malformed input. These errors are not
// generally retriable.
const ErrInvalidInput Error = Error("invalid input")
