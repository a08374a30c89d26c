// Package session runs the interactive game: it lists the available
// templates, lets the player pick one, fills it in, prints the story and
// offers another round.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-madlib/pkg/library"
	"github.com/goliatone/go-madlib/pkg/parser"
	"github.com/goliatone/go-madlib/pkg/prompt"
	"github.com/goliatone/go-madlib/pkg/render"
)

// ErrNoTemplates is returned when the template directory holds no templates.
var ErrNoTemplates = errors.New("session: no templates available")

// Source lists and reads templates.
type Source interface {
	Dir() string
	Ensure() (bool, error)
	List() ([]string, error)
	Read(id string) (string, error)
}

const (
	welcomeMessage = "Welcome to the Mad Lib terminal game!"
	selectMessage  = "Please enter the number of the Mad Lib you want to play"
	replayMessage  = "Would you like to play another Mad Lib? (Y/N)"
	goodbyeMessage = "Thanks for playing!"
)

// Session drives one run of the game.
type Session struct {
	source        Source
	driver        prompt.Driver
	collector     *prompt.Collector
	collectorOpts []prompt.Option
	presenter     *render.Presenter
	theme         Theme
	logger        zerolog.Logger
	initial       string
}

// New constructs a Session reading templates from source and talking to the
// player through driver.
func New(source Source, driver prompt.Driver, options ...Option) *Session {
	s := &Session{
		source: source,
		driver: driver,
		theme:  NewTheme(false),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	opts := append([]prompt.Option{prompt.WithLogger(s.logger)}, s.collectorOpts...)
	s.collector = prompt.NewCollector(driver, opts...)
	return s
}

// Run plays rounds until the player declines another one. Directory errors
// are fatal; errors within a round are reported and only end that round.
// End of input or an interrupt ends the run without error.
func (s *Session) Run(ctx context.Context) error {
	if err := s.say(ctx, s.theme.Banner(welcomeMessage)); err != nil {
		return err
	}

	created, err := s.source.Ensure()
	if err != nil {
		_ = s.say(ctx, s.theme.Problem(describe(err)))
		return err
	}
	if created {
		_ = s.say(ctx, s.theme.Hint(fmt.Sprintf("No %s directory found, created it.", s.source.Dir())))
	}

	ids, err := s.source.List()
	if err != nil {
		_ = s.say(ctx, s.theme.Problem(describe(err)))
		return err
	}
	if len(ids) == 0 {
		_ = s.say(ctx, s.theme.Problem(fmt.Sprintf("No mad libs found in %s. Add a template file and try again.", s.source.Dir())))
		return ErrNoTemplates
	}
	s.logger.Debug().Int("count", len(ids)).Str("dir", s.source.Dir()).Msg("templates listed")

	next := s.resolveInitial(ctx, ids)
	for {
		id := next
		next = ""
		if id == "" {
			id, err = s.SelectTemplate(ctx, ids)
			if err != nil {
				return s.finish(ctx, err)
			}
		}

		story, err := s.Play(ctx, id)
		if err != nil {
			if stop(ctx, err) {
				return s.finish(ctx, err)
			}
			s.logger.Warn().Err(err).Str("template", id).Msg("round aborted")
			if err := s.say(ctx, s.theme.Problem(describe(err))); err != nil {
				return err
			}
		} else if err := s.say(ctx, s.theme.Story(story)); err != nil {
			return err
		}

		again, err := s.AskReplay(ctx)
		if err != nil {
			return s.finish(ctx, err)
		}
		if !again {
			return s.finish(ctx, nil)
		}
	}
}

// resolveInitial matches the initial template query against ids.
func (s *Session) resolveInitial(ctx context.Context, ids []string) string {
	if s.initial == "" {
		return ""
	}
	id, ok := library.Match(s.initial, ids)
	if !ok {
		s.logger.Warn().Str("query", s.initial).Msg("no template matches, falling back to selection")
		_ = s.say(ctx, s.theme.Hint(fmt.Sprintf("No Mad Lib matches %q.", s.initial)))
		return ""
	}
	s.logger.Info().Str("template", id).Msg("starting with template")
	return id
}

// SelectTemplate shows ids as a 1-indexed list and asks for a number until
// one in range is entered.
func (s *Session) SelectTemplate(ctx context.Context, ids []string) (string, error) {
	if len(ids) == 0 {
		return "", ErrNoTemplates
	}
	for i, id := range ids {
		if err := s.say(ctx, fmt.Sprintf("%d. %s", i+1, id)); err != nil {
			return "", err
		}
	}

	for {
		line, err := s.driver.Input(ctx, prompt.InputConfig{Message: selectMessage})
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.logger.Debug().Str("input", line).Msg("selection is not a number")
			if err := s.say(ctx, s.theme.Hint("That is not a number.")); err != nil {
				return "", err
			}
			continue
		}
		if n < 1 || n > len(ids) {
			hint := fmt.Sprintf("Please enter a number from 1 to %d.", len(ids))
			if err := s.say(ctx, s.theme.Hint(hint)); err != nil {
				return "", err
			}
			continue
		}
		return ids[n-1], nil
	}
}

// Play fills in the template id and returns the presented story.
func (s *Session) Play(ctx context.Context, id string) (string, error) {
	raw, err := s.source.Read(id)
	if err != nil {
		return "", err
	}

	labels, err := parser.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", id, err)
	}
	s.logger.Debug().Str("template", id).Strs("labels", labels).Msg("template parsed")

	replies, err := s.collector.Collect(ctx, labels)
	if err != nil {
		return "", err
	}
	s.logger.Debug().Strs("replies", replies).Msg("replies collected")

	text, err := render.Render(raw, labels, replies)
	if err != nil {
		return "", err
	}

	return s.presenter.Present(render.Story{
		Title:   id,
		Text:    text,
		Labels:  labels,
		Replies: replies,
	})
}

// AskReplay asks whether to play again until a y or n answer is given.
func (s *Session) AskReplay(ctx context.Context) (bool, error) {
	for {
		line, err := s.driver.Input(ctx, prompt.InputConfig{Message: replayMessage})
		if err != nil {
			return false, err
		}
		switch answer := strings.TrimSpace(line); {
		case strings.EqualFold(answer, "y"):
			return true, nil
		case strings.EqualFold(answer, "n"):
			return false, nil
		}
	}
}

func (s *Session) say(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, msg)
}

// finish ends the run. End of input and interrupts are a normal way to quit.
func (s *Session) finish(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, prompt.ErrAborted) {
		if err != nil {
			s.logger.Debug().Err(err).Msg("input closed")
		}
		_ = s.say(ctx, s.theme.Banner(goodbyeMessage))
		return nil
	}
	return err
}

// stop reports whether err should end the whole run rather than one round.
func stop(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, prompt.ErrAborted)
}

// describe turns round and directory errors into player-facing messages.
func describe(err error) string {
	switch {
	case errors.Is(err, parser.ErrMissingClosingBrackets):
		return "The last [ was not closed in the Mad Lib!"
	case errors.Is(err, parser.ErrNoFillInWords):
		return "No fill in words found in the Mad Lib!"
	case errors.Is(err, library.ErrTemplateUnreadable):
		return fmt.Sprintf("Could not read the Mad Lib: %v", err)
	case errors.Is(err, library.ErrDirectoryUnavailable):
		return fmt.Sprintf("The template directory cannot be used, please delete or rename it: %v", err)
	case errors.Is(err, library.ErrDirectoryUnreadable):
		return fmt.Sprintf("Could not read the template directory: %v", err)
	case errors.Is(err, prompt.ErrInputRead):
		return fmt.Sprintf("Error getting fill in words: %v", err)
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}
