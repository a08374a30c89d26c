package render

import (
	"errors"
	"fmt"
)

var (
	// ErrReplyCountMismatch is returned when labels and replies are not aligned.
	ErrReplyCountMismatch = errors.New("render: label and reply counts differ")
	// ErrInvalidTemplate wraps output template compilation failures.
	ErrInvalidTemplate = errors.New("render: invalid output template")
)

// CountMismatchError reports the sizes that broke the label/reply alignment.
type CountMismatchError struct {
	Labels  int
	Replies int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("render: %d labels but %d replies", e.Labels, e.Replies)
}

// Is lets callers match against ErrReplyCountMismatch.
func (e *CountMismatchError) Is(target error) bool {
	return target == ErrReplyCountMismatch
}
