package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/placer/types"
)

type runRequest struct {
	Choice string `json:"choice"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type statsResponse struct {
	Runs  map[string]int64 `json:"runs"`
	Total int64            `json:"total"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	w.Header().Set(RunIDHeader, runID)

	var req runRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&req); err != nil {
		s.logger.Warn("rejected malformed run request", "runID", runID, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})

		return
	}

	start := time.Now()
	result, err := s.runner.Run(r.Context(), req.Choice)
	if err != nil {
		s.logger.Error("run failed", "runID", runID, "choice", req.Choice, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})

		return
	}

	mode := types.ParseScalingMode(req.Choice)
	s.stats.inc(mode.String())

	s.logger.Info("run served",
		"runID", runID,
		"choice", req.Choice,
		"mode", mode.String(),
		"accepted", result.Accepted,
		"total", result.TotalRequests,
		"retries", result.Retries,
		"duration", time.Since(start),
	)

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	runs, total := s.stats.snapshot()
	writeJSON(w, http.StatusOK, statsResponse{Runs: runs, Total: total})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
