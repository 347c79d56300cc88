package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/bus-portal/internal/middleware"
	"github.com/ukydev/bus-portal/internal/web"
)

// NewRouter wires every route and the middleware chain.
func NewRouter(siteTitle string, logger log.FieldLogger) http.Handler {
	pages := NewPageHandler(siteTitle, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", Health)
	for _, p := range web.Pages() {
		mux.Handle(p.Path, pages.Page(p))
	}
	mux.HandleFunc("/", pages.Home)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.AccessLog(logger),
		middleware.Recover(logger),
	)
}
