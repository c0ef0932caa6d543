package handler

import (
	"net/http"

	"github.com/dangerclosesec/scholar/internal/service"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Home serves the public dashboard counts.
func (h *StatsHandler) Home(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Home(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// Mine serves the caller's own research counts.
func (h *StatsHandler) Mine(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	stats, err := h.stats.ForUser(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
