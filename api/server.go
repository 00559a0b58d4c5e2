// Package api exposes the research pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scout/pipeline"
)

// Server wraps the pipeline behind a minimal JSON API. Runs are
// sequential; the pipeline itself is single-threaded by design.
type Server struct {
	pipe    *pipeline.Pipeline
	port    int
	timeout time.Duration
}

func NewServer(pipe *pipeline.Pipeline, port int, timeout time.Duration) *Server {
	return &Server{pipe: pipe, port: port, timeout: timeout}
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/research", s.researchHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}

type researchRequest struct {
	Topic string `json:"topic"`
}

type researchResponse struct {
	ReportPath string                   `json:"report_path"`
	State      string                   `json:"state"`
	Analysis   *pipeline.AnalysisResult `json:"analysis"`
}

func (s *Server) researchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req researchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Topic == "" {
		http.Error(w, "missing topic parameter", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	result, path, err := s.pipe.Run(ctx, req.Topic)
	if err != nil {
		http.Error(w, "research failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(researchResponse{
		ReportPath: path,
		State:      s.pipe.State().String(),
		Analysis:   result,
	})
}
