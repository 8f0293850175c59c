package main

import (
	"context"
	"net/http"
	"time"

	"paperapi/internal/catalog"
	"paperapi/internal/saved"
)

func newRouter(catalogHandler *catalog.HTTPHandler, savedHandler *saved.HTTPHandler, pinger saved.Pinger, metricsHandler http.Handler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				http.Error(w, "saved store not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	if metricsHandler != nil {
		router.Handle("GET /metrics", metricsHandler)
	}

	router.HandleFunc("GET /api/papers", catalogHandler.List)
	router.HandleFunc("GET /api/search-papers", catalogHandler.Search)

	router.HandleFunc("GET /api/saved-papers", savedHandler.List)
	router.HandleFunc("POST /api/saved-papers", savedHandler.Save)
	router.HandleFunc("DELETE /api/saved-papers/{id}", savedHandler.Remove)

	return router
}
