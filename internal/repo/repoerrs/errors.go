package repoerrs

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidStepCount = errors.New("invalid step count")
)
