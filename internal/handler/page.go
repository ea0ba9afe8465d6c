package handler

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/stridehq/stride/internal/ctxkeys"
	"github.com/stridehq/stride/internal/service"
)

type PageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{
		pageService: pageService,
	}
}

func (h *PageHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home")
}

func (h *PageHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, r.PathValue("slug"))
}

func (h *PageHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, "<!doctype html><title>Not Found</title><h1>Page not found</h1>")
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := h.pageService.Page(slug)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("failed to render page", "error", err, "slug", slug)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	appName := "Stride"
	if cfg := ctxkeys.Config(r.Context()); cfg != nil {
		appName = cfg.AppName
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w,
		"<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>%s | %s</title></head><body><main>%s</main></body></html>",
		html.EscapeString(page.Title), html.EscapeString(appName), page.Content)
}
