package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/bus-portal/internal/middleware"
	"github.com/ukydev/bus-portal/internal/web"
)

// PageHandler serves the static public pages.
type PageHandler struct {
	siteTitle string
	logger    log.FieldLogger
}

// NewPageHandler creates a new page handler
func NewPageHandler(siteTitle string, logger log.FieldLogger) *PageHandler {
	return &PageHandler{
		siteTitle: siteTitle,
		logger:    logger,
	}
}

// Page returns a handler that renders p inside the public layout.
func (h *PageHandler) Page(p web.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		doc := p.FullDocument(h.siteTitle)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.WriteString(w, string(doc)); err != nil {
			h.logger.WithFields(log.Fields{
				"request_id": middleware.GetRequestID(r.Context()),
				"page":       p.Name,
			}).WithError(err).Warn("Failed to write page")
		}
	}
}

// Home sends visitors to the customer page. Any other unmatched path is a 404.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Redirect(w, r, "/customer", http.StatusFound)
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
