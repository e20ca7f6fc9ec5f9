// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zfatbt/tenufa/internal/news/post"
)

// SiteHandler delivers the built single-page web client.
//
// # Delivery Rules
//
//   - Requests with a file extension serve the asset from the bundle dir.
//   - Article and short-link pages serve index.html with share metadata
//     injected, so link previews work without client-side rendering.
//   - Everything else serves index.html untouched; the client router takes
//     over from there.
type SiteHandler struct {
	staticDir     string
	publicBaseURL string
	posts         *post.Service
	fileServer    http.Handler
	logger        *slog.Logger
}

// NewSiteHandler constructs the SPA delivery handler.
func NewSiteHandler(staticDir, publicBaseURL string, posts *post.Service, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		staticDir:     staticDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		posts:         posts,
		fileServer:    http.FileServer(http.Dir(staticDir)),
		logger:        logger,
	}
}

// Register mounts the SPA routes on the root router.
func (site *SiteHandler) Register(router chi.Router) {
	router.Get("/article/{id}", site.articlePage)
	router.Get("/p/{code}", site.shortLinkPage)
	router.NotFound(site.fallback)
}

// fallback serves bundle assets or index.html for client-side routes.
func (site *SiteHandler) fallback(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet && request.Method != http.MethodHead {
		http.NotFound(writer, request)
		return
	}

	// A path with an extension is an asset request: serve it (or 404)
	// rather than masking a broken bundle with index.html.
	if filepath.Ext(request.URL.Path) != "" {
		site.fileServer.ServeHTTP(writer, request)
		return
	}

	site.serveIndex(writer, request, "")
}

// articlePage serves index.html with the article's share metadata.
func (site *SiteHandler) articlePage(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, "id")

	article, err := site.posts.Get(request.Context(), id)
	if err != nil {
		// Unknown article still renders the app; the client shows its own
		// not-found page.
		site.serveIndex(writer, request, "")
		return
	}

	site.serveIndex(writer, request, metaTags(article, site.publicBaseURL+"/article/"+article.ID))
}

// shortLinkPage resolves a printed short code and serves the article shell.
func (site *SiteHandler) shortLinkPage(writer http.ResponseWriter, request *http.Request) {
	code := chi.URLParam(request, "code")

	article, err := site.posts.GetByShortCode(request.Context(), code)
	if err != nil {
		site.serveIndex(writer, request, "")
		return
	}

	site.serveIndex(writer, request, metaTags(article, site.publicBaseURL+"/article/"+article.ID))
}

// serveIndex writes index.html, optionally injecting metadata before </head>.
func (site *SiteHandler) serveIndex(writer http.ResponseWriter, request *http.Request, injected string) {
	page, err := os.ReadFile(filepath.Join(site.staticDir, "index.html"))
	if err != nil {
		site.logger.Error("spa_index_missing",
			slog.String("static_dir", site.staticDir),
			slog.Any("error", err),
		)
		http.Error(writer, "site bundle unavailable", http.StatusServiceUnavailable)
		return
	}

	html := string(page)
	if injected != "" {
		html = strings.Replace(html, "</head>", injected+"</head>", 1)
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.Header().Set("Cache-Control", "no-cache")
	_, _ = writer.Write([]byte(html))
}
