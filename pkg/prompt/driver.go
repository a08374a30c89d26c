package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a single line prompt.
type InputConfig struct {
	Message string
	Help    string
}

// Driver abstracts the line-based terminal so prompt logic can be tested
// without a real terminal and callers can swap implementations.
type Driver interface {
	// Input shows cfg.Message and blocks until one line is read. The
	// returned text excludes the line terminator.
	Input(ctx context.Context, cfg InputConfig) (string, error)
	// Info writes msg followed by a newline.
	Info(ctx context.Context, msg string) error
}

// SurveyDriver renders prompts with survey.
type SurveyDriver struct {
	stdio terminal.Stdio
	out   io.Writer
}

// NewSurveyDriver constructs a survey-backed driver bound to the process
// standard streams.
func NewSurveyDriver() *SurveyDriver {
	return &SurveyDriver{
		stdio: terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr},
		out:   os.Stdout,
	}
}

func (d *SurveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out, survey.WithStdio(d.stdio.In, d.stdio.Out, d.stdio.Err)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *SurveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return fmt.Errorf("%w: %v", ErrInputRead, err)
}
