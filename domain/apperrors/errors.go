package apperrors

import "errors"

// Stable error kinds surfaced to callers. Services wrap these with context via
// fmt.Errorf("...: %w", ...) and the delivery layer maps them with errors.Is.
var (
	// ErrValidation marks malformed or missing input. Not retryable.
	ErrValidation = errors.New("validation error")

	// ErrInsufficientFunds marks a balance too low for the requested operation.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotFound marks an unknown wallet, event, bet or account.
	ErrNotFound = errors.New("not found")

	// ErrPermission marks an operation the caller is not allowed to perform.
	ErrPermission = errors.New("permission denied")

	// ErrStorage marks a failed or timed-out unit of work. The whole operation
	// rolled back, so callers may retry it.
	ErrStorage = errors.New("storage error")
)

// IsRetryable reports whether the failed operation can be safely retried as a
// whole. Only storage failures qualify; everything else needs corrected input.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorage)
}
