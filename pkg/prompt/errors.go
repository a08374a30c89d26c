package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrInputRead wraps failures reading a line of interactive input.
	ErrInputRead = errors.New("prompt: input read failure")
)
