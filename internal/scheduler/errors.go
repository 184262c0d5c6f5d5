package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmptyInput       = errors.New("no processes to schedule")
	ErrInvalidQuantum   = fmt.Errorf("%w: time quantum must be > 0", ErrInvalidInput)
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrInvalidTimeline  = errors.New("invalid timeline")
)
