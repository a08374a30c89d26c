package session

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-madlib/pkg/prompt"
	"github.com/goliatone/go-madlib/pkg/render"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTheme overrides the message styling.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithPresenter overrides how finished stories are framed.
func WithPresenter(p *render.Presenter) Option {
	return func(s *Session) {
		if p != nil {
			s.presenter = p
		}
	}
}

// WithCollectorOptions forwards options to the prompt collector.
func WithCollectorOptions(opts ...prompt.Option) Option {
	return func(s *Session) {
		s.collectorOpts = append(s.collectorOpts, opts...)
	}
}

// WithInitialTemplate skips the selection prompt for the first round and
// plays the template best matching query. The query is matched against the
// listed templates with library.Match; when nothing matches the first round
// falls back to selection.
func WithInitialTemplate(query string) Option {
	return func(s *Session) {
		s.initial = query
	}
}
