package loyalty

import "errors"

var (
	ErrRewardNotFound = errors.New("reward not found")
	ErrProcessFailed  = errors.New("failed to process loyalty rewards")
)

// EligibilityError is a guard rejection: non-fatal, carries the single
// user-displayable reason for the first failing condition.
type EligibilityError struct {
	Reason string
}

func (e *EligibilityError) Error() string { return e.Reason }
