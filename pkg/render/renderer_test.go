package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-madlib/pkg/parser"
	"github.com/goliatone/go-madlib/pkg/render"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		labels  []string
		replies []string
		want    string
	}{
		{
			name:    "basic substitution",
			raw:     "Hello [name], you are [age] years old.",
			labels:  []string{"name", "age"},
			replies: []string{"Ada", "36"},
			want:    "Hello Ada, you are 36 years old.",
		},
		{
			name:    "empty reply uses sentinel",
			raw:     "A [adjective] [noun].",
			labels:  []string{"adjective", "noun"},
			replies: []string{"", "dog"},
			want:    "A Word Not Entered dog.",
		},
		{
			name:    "repeated labels consume occurrences in order",
			raw:     "A [color] cat and a [color] dog.",
			labels:  []string{"color", "color"},
			replies: []string{"red", "blue"},
			want:    "A red cat and a blue dog.",
		},
		{
			name:    "empty placeholders",
			raw:     "[][]",
			labels:  []string{"", ""},
			replies: []string{"x", "y"},
			want:    "xy",
		},
		{
			name:    "reply containing a marker is not rescanned",
			raw:     "[a] then [b]",
			labels:  []string{"a", "b"},
			replies: []string{"[b]", "done"},
			want:    "[b] then done",
		},
		{
			name:    "reply whitespace is kept verbatim",
			raw:     "<[word]>",
			labels:  []string{"word"},
			replies: []string{"  spaced  "},
			want:    "<  spaced  >",
		},
		{
			name:    "nested bracket label leaves marker in place",
			raw:     "[a[b] end",
			labels:  []string{"ab"},
			replies: []string{"ignored"},
			want:    "[a[b] end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := render.Render(tt.raw, tt.labels, tt.replies)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tt.want {
				t.Fatalf("render mismatch\nwant: %q\ngot:  %q", tt.want, got)
			}
		})
	}
}

func TestRender_SentinelOnlyAtEmptyPosition(t *testing.T) {
	raw := "[one] [two] [three]"
	got, err := render.Render(raw, []string{"one", "two", "three"}, []string{"a", "", "c"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(got, render.Sentinel) != 1 {
		t.Fatalf("expected exactly one sentinel, got %q", got)
	}
	if got != "a "+render.Sentinel+" c" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRender_RoundTripUniqueLabels(t *testing.T) {
	raw := "The [adjective] [noun] [verb] over the [place]."
	labels, err := parser.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	replies := []string{"quick", "fox", "leaps", "fence"}

	got, err := render.Render(raw, labels, replies)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, label := range labels {
		if strings.Contains(got, parser.Marker(label)) {
			t.Fatalf("marker %q left in %q", parser.Marker(label), got)
		}
	}

	last := -1
	for _, reply := range replies {
		idx := strings.Index(got, reply)
		if idx <= last {
			t.Fatalf("reply %q out of order in %q", reply, got)
		}
		last = idx
	}
}

func TestRender_DoesNotMutateInputs(t *testing.T) {
	replies := []string{""}
	if _, err := render.Render("[x]", []string{"x"}, replies); err != nil {
		t.Fatalf("render: %v", err)
	}
	if replies[0] != "" {
		t.Fatalf("replies mutated: %q", replies)
	}
}

func TestRender_CountMismatch(t *testing.T) {
	_, err := render.Render("[a] [b]", []string{"a", "b"}, []string{"x"})
	if !errors.Is(err, render.ErrReplyCountMismatch) {
		t.Fatalf("expected ErrReplyCountMismatch, got %v", err)
	}
	var mismatch *render.CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected CountMismatchError, got %T", err)
	}
	if mismatch.Labels != 2 || mismatch.Replies != 1 {
		t.Fatalf("unexpected counts %+v", mismatch)
	}
}
