package parser

import "strings"

const (
	openBracket  = '['
	closeBracket = ']'
)

type scanState int

const (
	stateOutside scanState = iota
	stateInside
)

// Parse scans raw left to right and returns every placeholder label in
// discovery order. Empty placeholders ("[]") yield empty labels. A "[" seen
// while already inside a placeholder keeps accumulating into the current
// label, and a "]" seen outside one is ignored.
func Parse(raw string) ([]string, error) {
	var (
		state  = stateOutside
		acc    strings.Builder
		labels []string
	)

	for _, ch := range raw {
		switch ch {
		case openBracket:
			state = stateInside
		case closeBracket:
			if state != stateInside {
				continue
			}
			labels = append(labels, acc.String())
			acc.Reset()
			state = stateOutside
		default:
			if state == stateInside {
				acc.WriteRune(ch)
			}
		}
	}

	if state == stateInside {
		return nil, ErrMissingClosingBrackets
	}
	if len(labels) == 0 {
		return nil, ErrNoFillInWords
	}
	return labels, nil
}

// Marker returns the literal placeholder text for label as it appears in a
// template.
func Marker(label string) string {
	return string(openBracket) + label + string(closeBracket)
}
