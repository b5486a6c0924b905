package fit

import (
	"errors"
	"fmt"
)

// MinSamples is the fewest samples a linear fit accepts.
const MinSamples = 2

// ErrDegenerate is returned when all samples share the same x, so the slope is undetermined.
var ErrDegenerate = errors.New("all samples have the same x")

// InsufficientDataError is returned when there are fewer than MinSamples samples.
type InsufficientDataError struct {
	Count int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %d samples (need at least %d)", e.Count, MinSamples)
}
