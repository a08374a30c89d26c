package render

// DefaultOutputTemplate prints the story on its own.
const DefaultOutputTemplate = "{{ story }}"

// Option configures a Presenter.
type Option func(*Presenter)

// WithOutputTemplate overrides the pongo2 template used to frame the story.
// Available context keys: title, story, labels, replies.
func WithOutputTemplate(tpl string) Option {
	return func(p *Presenter) {
		if tpl != "" {
			p.source = tpl
		}
	}
}
