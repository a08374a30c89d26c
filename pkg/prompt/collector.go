package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultPromptFormat is the fmt pattern used to ask for each label.
const DefaultPromptFormat = "Please enter a %s"

// emptyLabelName is shown in place of an empty "[]" label.
const emptyLabelName = "word"

// Option configures a Collector.
type Option func(*Collector)

// WithPromptFormat overrides the fmt pattern used to ask for each label. The
// pattern receives the label as its only argument.
func WithPromptFormat(format string) Option {
	return func(c *Collector) {
		if format != "" {
			c.format = format
		}
	}
}

// WithLogger attaches a logger for per-reply debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// Collector asks for one reply per label, strictly in label order.
type Collector struct {
	driver Driver
	format string
	logger zerolog.Logger
}

// NewCollector constructs a Collector reading through driver.
func NewCollector(driver Driver, options ...Option) *Collector {
	c := &Collector{
		driver: driver,
		format: DefaultPromptFormat,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Collect prompts for every label and returns the replies aligned by
// position. Replies are kept verbatim, including empty ones. The first read
// failure aborts the collection and no partial replies are returned.
func (c *Collector) Collect(ctx context.Context, labels []string) ([]string, error) {
	if c == nil || c.driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}

	replies := make([]string, 0, len(labels))
	for i, label := range labels {
		reply, err := c.driver.Input(ctx, InputConfig{
			Message: c.message(label),
		})
		if err != nil {
			return nil, fmt.Errorf("prompt: reply %d of %d: %w", i+1, len(labels), err)
		}
		c.logger.Debug().Int("index", i).Str("label", label).Str("reply", reply).Msg("reply collected")
		replies = append(replies, reply)
	}
	return replies, nil
}

func (c *Collector) message(label string) string {
	if label == "" {
		label = emptyLabelName
	}
	return fmt.Sprintf(c.format, label)
}
