// Package web embeds the browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed all:static
var assets embed.FS

// Handler serves the single-page client. Extensionless paths fall back to
// index.html so client-side routes survive a page reload.
func Handler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	fileServer := http.FileServer(http.FS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := strings.TrimPrefix(r.URL.Path, "/")
		if p != "" {
			if _, statErr := fs.Stat(sub, p); statErr == nil {
				fileServer.ServeHTTP(w, r)
				return
			}
		}
		if path.Ext(p) == "" {
			r2 := r.Clone(r.Context())
			r2.URL.Path = "/"
			fileServer.ServeHTTP(w, r2)
			return
		}
		http.NotFound(w, r)
	})
}
