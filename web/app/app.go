// Package app serves the Redline analyzer page: an embedded single-page
// form that submits a document and instruction to the API and renders
// streamed per-paragraph diffs.
package app

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/redline/pkg/module"
)

//go:embed index.html app.css app.js
var staticFS embed.FS

// NewModule creates a module that serves the analyzer UI at basePath.
func NewModule(basePath, apiBasePath string) *module.Module {
	router := buildRouter(basePath, apiBasePath)
	return module.New(basePath, router)
}

func buildRouter(basePath, apiBasePath string) http.Handler {
	mux := http.NewServeMux()

	tmpl := template.Must(template.ParseFS(staticFS, "index.html"))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		tmpl.Execute(w, map[string]string{
			"BasePath":    basePath,
			"APIBasePath": apiBasePath,
		})
	})

	mux.Handle("GET /", http.FileServer(http.FS(staticFS)))

	return mux
}
