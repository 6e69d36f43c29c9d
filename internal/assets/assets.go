// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package assets provides embedded static assets with content-hashed URLs.
package assets

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

//go:embed static
var staticFS embed.FS

// HashLength is the number of hex characters in a hashed asset name.
const HashLength = 8

const stylesheet = "css/styles.css"

var (
	static fs.FS
	// hashed maps "css/styles.abcd1234.css" to "css/styles.css".
	hashed = map[string]string{}
	// urls maps "css/styles.css" to "/static/css/styles.abcd1234.css".
	urls = map[string]string{}
)

func init() {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("failed to create sub filesystem: " + err.Error())
	}
	static = sub

	err = fs.WalkDir(static, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return walkErr
		}
		data, readErr := fs.ReadFile(static, p)
		if readErr != nil {
			return readErr
		}
		name := hashedName(p, data)
		hashed[name] = p
		urls[p] = "/static/" + name
		return nil
	})
	if err != nil {
		slog.Error("failed to index static assets", "error", err)
	}
}

// hashedName inserts a short content hash before the file extension.
func hashedName(p string, data []byte) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])[:HashLength]
	ext := path.Ext(p)
	return strings.TrimSuffix(p, ext) + "." + hash + ext
}

// URL returns the hashed URL for a file below static/, or the plain URL if
// the file is unknown.
func URL(name string) string {
	if u, ok := urls[name]; ok {
		return u
	}
	return "/static/" + name
}

// CSSPath returns the hashed path to the main stylesheet.
func CSSPath() string {
	return URL(stylesheet)
}

// FileServer serves the embedded files. Requests must already have the
// /static/ prefix stripped. Hashed names resolve to their source file.
func FileServer() http.Handler {
	files := http.FileServer(http.FS(static))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if orig, ok := hashed[strings.TrimPrefix(r.URL.Path, "/")]; ok {
			r2 := r.Clone(r.Context())
			r2.URL.Path = "/" + orig
			r2.URL.RawPath = ""
			files.ServeHTTP(w, r2)
			return
		}
		files.ServeHTTP(w, r)
	})
}
