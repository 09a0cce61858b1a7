package earn

import "embed"

//go:embed content
var contentFS embed.FS

// Default loads the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Load(contentFS, "content")
}
