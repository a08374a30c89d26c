package library

import (
	"embed"
	"io/fs"
)

//go:embed samples/*.txt
var samplesFS embed.FS

// Samples exposes the bundled example templates rooted at the template files.
func Samples() fs.FS {
	sub, err := fs.Sub(samplesFS, "samples")
	if err != nil {
		// fs.Sub only fails on invalid patterns.
		panic(err)
	}
	return sub
}
