package server

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/jsonml"
	"github.com/vango-dev/markup/pkg/render"
)

// PageExt is the file extension of page documents.
const PageExt = ".json"

// Site is a directory of pages sharing one document shell.
type Site struct {
	// Dir holds the page documents.
	Dir string

	// Title, Lang, StyleSheets and Scripts fill the document shell.
	Title       string
	Lang        string
	StyleSheets []string
	Scripts     []render.ScriptTag

	// Head adds site-wide markup to every <head>.
	Head func(r *render.Renderer)

	// Helpers are callable from pages. Nil means DefaultHelpers.
	Helpers render.Helpers

	// Options are passed to every renderer.
	Options []render.Option
}

// File maps a URL path to its page file. "/" and directory paths map
// to index.json. ok is false for paths that could escape Dir.
func (s *Site) File(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, "/")
	if strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}
	if rel == "" || strings.HasSuffix(rel, "/") {
		rel += "index"
	}
	rel = strings.TrimSuffix(rel, PageExt)
	clean := path.Clean(rel)
	if strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, "../") {
		return "", false
	}
	return filepath.Join(s.Dir, filepath.FromSlash(clean)+PageExt), true
}

// Load parses the page for urlPath and returns its build routine.
// "/docs" falls back to docs/index.json. A missing page is an E112
// error.
func (s *Site) Load(urlPath string) (func(*render.Renderer), error) {
	file, ok := s.File(urlPath)
	if !ok {
		return nil, errors.New("E112").WithDetail(urlPath)
	}
	nodes, err := jsonml.ParseFile(file)
	if err != nil && IsNotFound(err) && urlPath != "" && !strings.HasSuffix(urlPath, "/") {
		if index, ok := s.File(urlPath + "/"); ok {
			nodes, err = jsonml.ParseFile(index)
		}
	}
	if err != nil {
		return nil, err
	}
	return jsonml.Build(nodes), nil
}

// IsNotFound reports whether err means the page does not exist.
func IsNotFound(err error) bool {
	var me *errors.MarkupError
	return stderrors.As(err, &me) && me.Code == "E112"
}

// Page wraps body in the site's document shell.
func (s *Site) Page(body func(*render.Renderer)) render.Page {
	return render.Page{
		Title:       s.Title,
		Lang:        s.Lang,
		StyleSheets: s.StyleSheets,
		Scripts:     s.Scripts,
		HeadContent: s.Head,
		Body:        body,
	}
}

// Host returns the render host for a page: vars as ambient values and
// the site helpers.
func (s *Site) Host(vars map[string]any) *render.Env {
	helpers := s.Helpers
	if helpers == nil {
		helpers = DefaultHelpers()
	}
	return &render.Env{Values: vars, Helpers: helpers}
}

// Render renders the complete document for urlPath.
func (s *Site) Render(ctx context.Context, urlPath string, host any) (string, error) {
	body, err := s.Load(urlPath)
	if err != nil {
		return "", err
	}
	if host == nil {
		host = s.Host(map[string]any{"path": urlPath})
	}
	return render.New(host, s.Page(body).Document, s.Options...).Render(ctx)
}

// Stream renders the document for urlPath to w, head first.
func (s *Site) Stream(ctx context.Context, w io.Writer, urlPath string, host any) error {
	body, err := s.Load(urlPath)
	if err != nil {
		return err
	}
	return render.WritePage(ctx, w, host, s.Page(body), s.Options...)
}

// Routes lists the URL path of every page under Dir, sorted.
func (s *Site) Routes() ([]string, error) {
	var routes []string
	err := filepath.WalkDir(s.Dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != s.Dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) != PageExt {
			return nil
		}
		rel, err := filepath.Rel(s.Dir, p)
		if err != nil {
			return err
		}
		routes = append(routes, RoutePath(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(routes)
	return routes, nil
}

// RoutePath turns a page file name relative to the pages directory into
// its URL path: "docs/index.json" is "/docs/".
func RoutePath(rel string) string {
	rel = strings.TrimSuffix(rel, PageExt)
	if rel == "index" {
		return "/"
	}
	if strings.HasSuffix(rel, "/index") {
		return "/" + strings.TrimSuffix(rel, "index")
	}
	return "/" + rel
}

// OutputFile is the file name a route is published under: "/" is
// "index.html", "/docs/" is "docs/index.html", "/about" is
// "about.html".
func OutputFile(route string) string {
	rel := strings.TrimPrefix(route, "/")
	if rel == "" || strings.HasSuffix(rel, "/") {
		return rel + "index.html"
	}
	return rel + ".html"
}
