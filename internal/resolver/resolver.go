// Package resolver turns a request path into the response a single-page
// application server sends for it: the file under the document root when it
// exists, otherwise the index document so the client-side router can handle
// the route.
//
// Request paths are joined to the root without sanitization, so ".." segments
// that survive the transport can reach files outside the root.
package resolver

import (
	"github.com/senti270/work-schedule-web/internal/schema"
	"github.com/spf13/afero"
	"net/http"
	"path/filepath"
	"strings"
)

const DefaultIndex = "index.html"

// Response is what gets written back for one request. An empty ContentType
// means the handler sets no Content-Type header.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

type Resolver struct {
	fs    afero.Fs
	root  string
	index string
	types ContentTypes
}

type Options struct {
	// Index is the fallback document name under Root. Defaults to index.html.
	Index string
	// Types defaults to DefaultContentTypes().
	Types ContentTypes
}

func New(fs afero.Fs, root string, opts Options) *Resolver {
	r := &Resolver{
		fs:    fs,
		root:  root,
		index: opts.Index,
		types: opts.Types,
	}
	if r.index == "" {
		r.index = DefaultIndex
	}
	if r.types == nil {
		r.types = DefaultContentTypes()
	}
	return r
}

func (r *Resolver) Root() string {
	return r.root
}

// MapPath maps a request path to a file path under the root. A trailing
// slash survives the join, so "/app.js/" fails to read with ENOTDIR.
func (r *Resolver) MapPath(requestPath string) string {
	if requestPath == "/" {
		return r.indexPath()
	}

	p := filepath.Join(r.root, strings.TrimPrefix(requestPath, "/"))
	if strings.HasSuffix(requestPath, "/") && !strings.HasSuffix(p, string(filepath.Separator)) {
		p += string(filepath.Separator)
	}
	return p
}

func (r *Resolver) ContentType(filePath string) string {
	return r.types.Lookup(Extension(filePath))
}

// Resolve never fails: every read error ends in one of the 500 responses.
func (r *Resolver) Resolve(requestPath string) Response {
	filePath := r.MapPath(requestPath)
	contentType := r.ContentType(filePath)

	body, err := r.read(filePath)
	if err == nil {
		return Response{Status: http.StatusOK, ContentType: contentType, Body: body}
	}
	if err.IsNotFound() {
		return r.fallback()
	}
	return Response{
		Status: http.StatusInternalServerError,
		Body:   []byte(schema.ServerErrorBody(err.Code)),
	}
}

// fallback serves the index document for paths that are not files, which is
// what lets deep links like /dashboard/42 reach the client-side router.
func (r *Resolver) fallback() Response {
	body, err := r.read(r.indexPath())
	if err != nil {
		return Response{
			Status: http.StatusInternalServerError,
			Body:   []byte(schema.FallbackFailureBody),
		}
	}
	return Response{Status: http.StatusOK, ContentType: DefaultContentType, Body: body}
}

func (r *Resolver) read(filePath string) ([]byte, *schema.Error) {
	body, err := afero.ReadFile(r.fs, filePath)
	if err != nil {
		return nil, schema.NewReadError(filePath, err)
	}
	return body, nil
}

func (r *Resolver) indexPath() string {
	return filepath.Join(r.root, r.index)
}
