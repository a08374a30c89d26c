package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"
)

// DefaultDir is the template directory used when none is configured.
const DefaultDir = "mad_libs"

// Option configures a Library.
type Option func(*Library)

// WithSeed copies every regular file of seed into the template directory when
// Ensure has to create it.
func WithSeed(seed fs.FS) Option {
	return func(l *Library) {
		l.seed = seed
	}
}

// WithLogger attaches a logger for directory lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Library) {
		l.logger = logger
	}
}

// Library reads templates from a directory on disk.
type Library struct {
	dir    string
	seed   fs.FS
	logger zerolog.Logger
}

// New constructs a Library rooted at dir. An empty dir selects DefaultDir.
func New(dir string, options ...Option) *Library {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = DefaultDir
	}
	l := &Library{
		dir:    filepath.Clean(dir),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Dir reports the template directory.
func (l *Library) Dir() string {
	return l.dir
}

// Ensure makes sure the template directory exists, creating it when absent.
// It reports whether the directory was created by this call.
func (l *Library) Ensure() (bool, error) {
	info, err := os.Stat(l.dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("%w: %s exists but is not a directory", ErrDirectoryUnavailable, l.dir)
		}
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	l.logger.Info().Str("dir", l.dir).Msg("template directory not found, creating it")
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	if l.seed != nil {
		if err := l.copySeed(); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (l *Library) copySeed() error {
	entries, err := fs.ReadDir(l.seed, ".")
	if err != nil {
		return fmt.Errorf("library: read seed templates: %w", err)
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		data, err := fs.ReadFile(l.seed, entry.Name())
		if err != nil {
			return fmt.Errorf("library: read seed %s: %w", entry.Name(), err)
		}
		dest := filepath.Join(l.dir, entry.Name())
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("library: write seed %s: %w", dest, err)
		}
		l.logger.Debug().Str("template", entry.Name()).Msg("seeded template")
	}
	return nil
}

// List returns the identifiers of every regular, non-hidden file in the
// template directory, sorted by name.
func (l *Library) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnreadable, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !l.isRegular(entry) {
			continue
		}
		ids = append(ids, name)
	}
	return ids, nil
}

// isRegular accepts regular files and symlinks that resolve to one. FIFOs,
// sockets and devices are skipped since reading them can block.
func (l *Library) isRegular(entry fs.DirEntry) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(l.dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

// Read returns the raw text of the template identified by id.
func (l *Library) Read(id string) (string, error) {
	if id == "" || id != path.Base(id) || id == "." || id == ".." {
		return "", fmt.Errorf("%w: invalid template id %q", ErrTemplateUnreadable, id)
	}

	data, err := fs.ReadFile(os.DirFS(l.dir), id)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTemplateUnreadable, id, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8 text", ErrTemplateUnreadable, id)
	}
	return string(data), nil
}

// Find resolves query against the available identifiers. A case-insensitive
// exact match, with or without extension, wins; otherwise the best fuzzy
// match is returned.
func (l *Library) Find(query string) (string, bool, error) {
	ids, err := l.List()
	if err != nil {
		return "", false, err
	}
	id, ok := Match(query, ids)
	return id, ok, nil
}

// Match picks the identifier in ids that best matches query.
func Match(query string, ids []string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(ids) == 0 {
		return "", false
	}

	for _, id := range ids {
		stem := strings.TrimSuffix(id, filepath.Ext(id))
		if strings.EqualFold(id, query) || strings.EqualFold(stem, query) {
			return id, true
		}
	}

	matches := fuzzy.Find(query, ids)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
