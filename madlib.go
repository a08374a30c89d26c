// Package madlib fills in bracket-delimited word templates ("mad libs").
//
// The pipeline has three stages: parser.Parse extracts the placeholder
// labels, a prompt.Collector asks for one reply per label, and render.Render
// substitutes the replies back into the template. Fill runs all three.
package madlib

import (
	"context"

	"github.com/goliatone/go-madlib/pkg/parser"
	"github.com/goliatone/go-madlib/pkg/prompt"
	"github.com/goliatone/go-madlib/pkg/render"
)

// Sentinel is printed in place of replies left empty.
const Sentinel = render.Sentinel

// Driver aliases prompt.Driver for callers wiring their own input source.
type Driver = prompt.Driver

// Labels returns the placeholder labels of raw in template order.
func Labels(raw string) ([]string, error) {
	return parser.Parse(raw)
}

// Fill parses raw, asks driver for every placeholder, and returns the
// completed text.
func Fill(ctx context.Context, raw string, driver Driver, options ...prompt.Option) (string, error) {
	labels, err := parser.Parse(raw)
	if err != nil {
		return "", err
	}
	replies, err := prompt.NewCollector(driver, options...).Collect(ctx, labels)
	if err != nil {
		return "", err
	}
	return render.Render(raw, labels, replies)
}
