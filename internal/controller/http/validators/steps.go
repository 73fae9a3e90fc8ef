package validators

import (
	"errors"

	"github.com/steptrek/steptrek/internal/domain"
)

var (
	ErrEmptyUsername = errors.New("username must be specified")
	ErrNegativeSteps = errors.New("step count must not be negative")
	ErrZeroDate      = errors.New("log date must be specified")
)

// Validate checks a step log entry before it reaches the service. Future log
// dates are deliberately allowed, duplicate dates are handled downstream.
func Validate(entry *domain.StepLog) error {
	if entry.Username == "" {
		return ErrEmptyUsername
	}

	if entry.StepCount < 0 {
		return ErrNegativeSteps
	}

	if entry.LogDate.IsZero() {
		return ErrZeroDate
	}

	return nil
}
