package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// CacheControl selects the Cache-Control policy for static files.
type CacheControl int

const (
	// CacheControlNone disables caching, for development.
	CacheControlNone CacheControl = iota

	// CacheControlProduction caches fingerprinted files for a year and
	// everything else for an hour.
	CacheControlProduction
)

// staticRelPath returns the cleaned path of a static file below the
// static root, rejecting traversal and absolute-path tricks.
func staticRelPath(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return "", false
	}
	if strings.IndexByte(rel, 0) != -1 || strings.Contains(rel, "\\") {
		return "", false
	}
	// "/static//etc/passwd" leaves a leading slash.
	if strings.HasPrefix(rel, "/") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}
	return clean, true
}

// serveStatic serves urlPath from dir when it names a regular file and
// reports whether it did.
func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request) bool {
	if s.config.Static == "" {
		return false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	rel, ok := staticRelPath(r.URL.Path)
	if !ok {
		return false
	}

	f, err := os.Open(filepath.Join(s.config.Static, filepath.FromSlash(rel)))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	applyCacheHeaders(w, s.config.CacheControl, rel)
	http.ServeContent(w, r, rel, info.ModTime(), f)
	return true
}

func applyCacheHeaders(w http.ResponseWriter, policy CacheControl, file string) {
	switch policy {
	case CacheControlNone:
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	case CacheControlProduction:
		if isFingerprinted(file) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
		}
	}
}

// isFingerprinted reports whether the file name carries a content hash,
// as in "app.a1b2c3d4.css".
func isFingerprinted(file string) bool {
	parts := strings.Split(path.Base(file), ".")
	if len(parts) < 3 {
		return false
	}
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
