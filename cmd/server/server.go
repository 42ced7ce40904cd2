// cmd/server/server.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/civicdata/statement-go/internal/monitoring"
	"github.com/civicdata/statement-go/internal/scraper"
	"github.com/civicdata/statement-go/internal/utils"
	"github.com/civicdata/statement-go/pkg/types"
)

// Server exposes the scraping engine over HTTP.
type Server struct {
	engine  *scraper.Engine
	metrics *monitoring.Metrics
	logger  utils.Logger
	router  *mux.Router
}

// NewServer wires the engine and metrics into a routed handler.
func NewServer(engine *scraper.Engine, metrics *monitoring.Metrics, logger utils.Logger) *Server {
	s := &Server{
		engine:  engine,
		metrics: metrics,
		logger:  logger,
		router:  mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/scrape/{source}", s.handleScrape).Methods(http.MethodGet)
	api.HandleFunc("/sources", s.handleSources).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type scrapeResponse struct {
	Source  string         `json:"source"`
	Page    int            `json:"page"`
	Count   int            `json:"count"`
	Records []types.Record `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["source"]

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page must be a positive integer"})
			return
		}
		page = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	records, err := s.engine.Scrape(ctx, name, page)
	if err != nil {
		if errors.Is(err, scraper.ErrNoScraper) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		s.logger.Errorf("scrape %s: %v", name, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "scrape failed"})
		return
	}
	if records == nil {
		records = []types.Record{}
	}
	writeJSON(w, http.StatusOK, scrapeResponse{Source: name, Page: page, Count: len(records), Records: records})
}

type sourceInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	registry := s.engine.Registry()
	infos := make([]sourceInfo, 0, registry.Len())
	for _, name := range registry.Names() {
		src, ok := registry.Lookup(name)
		if !ok {
			continue
		}
		infos = append(infos, sourceInfo{Name: name, Pattern: string(src.Pattern)})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
