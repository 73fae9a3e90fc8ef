package service

import "fmt"

var (
	ErrNoStepsLogged     = fmt.Errorf("no steps logged")
	ErrCannotRecordSteps = fmt.Errorf("cannot record steps")
	ErrInvalidStepCount  = fmt.Errorf("invalid step count")
)
