package parser

import "errors"

var (
	// ErrMissingClosingBrackets signals the template ended inside a placeholder.
	ErrMissingClosingBrackets = errors.New("parser: missing closing bracket")
	// ErrNoFillInWords signals the template has no placeholders to fill in.
	ErrNoFillInWords = errors.New("parser: no fill in words")
)
