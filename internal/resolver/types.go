package resolver

import (
	"path/filepath"
	"strings"
)

const DefaultContentType = "text/html"

// ContentTypes maps a case-sensitive file extension (with its dot) to the
// Content-Type it is served with. A Resolver never modifies it.
type ContentTypes map[string]string

func DefaultContentTypes() ContentTypes {
	return ContentTypes{
		".js":   "text/javascript",
		".css":  "text/css",
		".json": "application/json",
		".png":  "image/png",
		".jpg":  "image/jpg",
	}
}

// Lookup returns text/html for every extension not in the table, including
// ".html" and the empty extension.
func (t ContentTypes) Lookup(ext string) string {
	if ct, ok := t[ext]; ok {
		return ct
	}
	return DefaultContentType
}

// Extension returns the suffix of the last path segment starting at its last
// dot. A segment whose only dot is the leading one (".env") has none.
func Extension(p string) string {
	base := filepath.Base(p)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i:]
}
