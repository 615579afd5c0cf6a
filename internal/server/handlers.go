package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AmandaBirmingham/syndna/internal/pool"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListPools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"pools": s.handle.Current().List(),
	})
}

func (s *Server) handleGetPool(w http.ResponseWriter, r *http.Request) {
	poolID := chi.URLParam(r, "poolID")

	cfg, err := s.handle.Current().Get(poolID)
	if err != nil {
		var unknown *pool.UnknownPoolError
		if errors.As(err, &unknown) {
			s.metrics.lookups.WithLabelValues("miss").Inc()
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.metrics.lookups.WithLabelValues("hit").Inc()
	writeJSON(w, http.StatusOK, cfg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
