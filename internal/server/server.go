// Package server exposes the tool layer over HTTP for the voice-agent
// runtime. One POST per invocation; handler errors come back as 200 with a
// structured error payload so the agent can narrate them, while transport
// problems (unknown tool, unreadable body) use HTTP status codes.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hr-voice-tools/internal/common/config"
	"hr-voice-tools/internal/common/logger"
	"hr-voice-tools/internal/dispatch"
)

type Server struct {
	cfg        config.ServerConfig
	dispatcher *dispatch.Dispatcher
	logger     logger.Logger
}

func New(cfg config.ServerConfig, d *dispatch.Dispatcher, log logger.Logger) *Server {
	return &Server{
		cfg:        cfg,
		dispatcher: d,
		logger:     log.WithFields(map[string]interface{}{"component": "server"}),
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/metrics", promhttp.Handler())

	r.Get("/tools", s.handleListTools)
	r.Post("/tools/{name}", s.handleInvoke)
	return r
}

// HTTPServer wraps the router with the configured timeouts.
func (s *Server) HTTPServer() *http.Server {
	timeout := config.GetDuration(s.cfg.RequestTimeout)
	return &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.Router(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout + 5*time.Second,
	}
}

func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tools": s.dispatcher.Tools(),
	})
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "unreadable body", http.StatusBadRequest)
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		http.Error(w, "body must be a JSON object", http.StatusBadRequest)
		return
	}

	result, err := s.dispatcher.Dispatch(r.Context(), name, body)
	if err != nil {
		// Only context cancellation reaches here.
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	status := http.StatusOK
	if result.Error != nil && result.Error.Code == "UNKNOWN_TOOL" {
		status = http.StatusNotFound
	}
	writeJSON(w, status, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
