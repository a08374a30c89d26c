package render

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// Story carries everything a presenter may show once a mad lib is complete.
type Story struct {
	Title   string
	Text    string
	Labels  []string
	Replies []string
}

// Presenter frames rendered stories for display using a pongo2 template.
type Presenter struct {
	source string
	tpl    *pongo2.Template
}

// NewPresenter compiles the configured output template.
func NewPresenter(options ...Option) (*Presenter, error) {
	p := &Presenter{source: DefaultOutputTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}

	tpl, err := pongo2.FromString(plainText(p.source))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	p.tpl = tpl
	return p, nil
}

// Present executes the output template for story. Output is plain text:
// nothing in the context, including values passed through filters, is
// HTML-escaped.
func (p *Presenter) Present(story Story) (string, error) {
	if p == nil || p.tpl == nil {
		return story.Text, nil
	}

	out, err := p.tpl.Execute(pongo2.Context{
		"title":   story.Title,
		"story":   story.Text,
		"labels":  story.Labels,
		"replies": story.Replies,
	})
	if err != nil {
		return "", fmt.Errorf("render: present %q: %w", story.Title, err)
	}
	return out, nil
}

// plainText turns autoescaping off for the whole template. The tags share
// the first and last line with the source so error line numbers still match.
func plainText(source string) string {
	return "{% autoescape off %}" + source + "{% endautoescape %}"
}
