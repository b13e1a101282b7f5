// Package embedded ships a compact default dataset so the CLI is
// usable with no configuration. Pointing content.dir at a full corpus
// replaces it entirely.
package embedded

import (
	"embed"
	"io/fs"
)

//go:embed documents
var documents embed.FS

// Documents returns the embedded content documents as a filesystem
// rooted at the document directory.
func Documents() fs.FS {
	fsys, err := fs.Sub(documents, "documents")
	if err != nil {
		// The subtree is compiled in; a failure here is a build defect.
		panic(err)
	}
	return fsys
}
