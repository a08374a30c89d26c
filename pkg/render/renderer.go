package render

import (
	"strings"

	"github.com/goliatone/go-madlib/pkg/parser"
)

// Sentinel replaces empty replies in the rendered story.
const Sentinel = "Word Not Entered"

// Render substitutes replies into raw, one placeholder occurrence per label,
// left to right. Replies are aligned with labels by position; an empty reply
// renders as Sentinel. Each label consumes the first matching marker at or
// after the end of the previous substitution, so repeated labels map to
// successive occurrences and reply text is never rescanned.
//
// A marker that cannot be found is left in place and its reply dropped. This
// only happens for labels produced from nested opening brackets.
func Render(raw string, labels, replies []string) (string, error) {
	if len(labels) != len(replies) {
		return "", &CountMismatchError{Labels: len(labels), Replies: len(replies)}
	}

	var out strings.Builder
	out.Grow(len(raw))

	rest := raw
	for i, label := range labels {
		marker := parser.Marker(label)
		idx := strings.Index(rest, marker)
		if idx < 0 {
			continue
		}

		reply := replies[i]
		if reply == "" {
			reply = Sentinel
		}

		out.WriteString(rest[:idx])
		out.WriteString(reply)
		rest = rest[idx+len(marker):]
	}
	out.WriteString(rest)

	return out.String(), nil
}
