package limits

import "errors"

// Service errors
var (
	ErrLimitExceeded      = errors.New("limit exceeded")
	ErrAmountBelowMinimum = errors.New("amount below minimum")
	ErrAmountAboveMaximum = errors.New("amount above maximum")
	ErrNoLimitForType     = errors.New("no limit configured for type")
)
