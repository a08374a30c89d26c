package library

import "errors"

var (
	// ErrDirectoryUnavailable signals the template directory is missing and
	// could not be created, or exists but is not a directory.
	ErrDirectoryUnavailable = errors.New("library: template directory unavailable")
	// ErrDirectoryUnreadable signals listing the template directory failed.
	ErrDirectoryUnreadable = errors.New("library: template directory unreadable")
	// ErrTemplateUnreadable signals a template could not be read as text.
	ErrTemplateUnreadable = errors.New("library: template unreadable")
)
