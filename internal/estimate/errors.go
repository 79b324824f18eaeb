package estimate

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when the predicted channel cannot be compared to the true one.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeMismatchError names the lengths of the compared channels.
type ShapeMismatchError struct {
	True      int
	Predicted int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: true=%d, predicted=%d", ErrShapeMismatch.Error(), e.True, e.Predicted)
}

// Is makes the error match ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}
