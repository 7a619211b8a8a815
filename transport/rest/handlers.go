package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/report"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

type handlers struct {
	logger *slog.Logger
	graph  *solver.Graph
}

func newHandlers(logger *slog.Logger, graph *solver.Graph) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		graph:  graph,
	}
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *handlers) Root(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, map[string]string{"key": that.graph.RootKey()})
}

func (that *handlers) Summary(w http.ResponseWriter, _ *http.Request) {
	summary, err := report.Summarize(that.graph)
	if err != nil {
		that.logger.Error("failed to summarize graph", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, summary)
}

func (that *handlers) Position(w http.ResponseWriter, r *http.Request) {
	key, ok := that.requireKey(w, r)
	if !ok {
		return
	}

	record, err := repository.NewPositionRecord(that.graph, key)
	if errors.Is(err, solver.ErrPositionNotFound) {
		http.Error(w, "position not found", http.StatusNotFound)
		return
	}
	if err != nil {
		that.logger.Error("failed to build position record", "key", key, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, record)
}

func (that *handlers) Children(w http.ResponseWriter, r *http.Request) {
	key, ok := that.requireKey(w, r)
	if !ok {
		return
	}

	if _, err := that.graph.Lookup(key); err != nil {
		http.Error(w, "position not found", http.StatusNotFound)
		return
	}

	edges := make([]repository.EdgeRecord, 0)
	for _, edge := range that.graph.Children(key) {
		edges = append(edges, repository.EdgeRecord{Cell: edge.Cell, Child: edge.Child})
	}

	that.writeJSON(w, edges)
}

func (that *handlers) Parents(w http.ResponseWriter, r *http.Request) {
	key, ok := that.requireKey(w, r)
	if !ok {
		return
	}

	if _, err := that.graph.Lookup(key); err != nil {
		http.Error(w, "position not found", http.StatusNotFound)
		return
	}

	parents := that.graph.Parents(key)
	if parents == nil {
		parents = []string{}
	}

	that.writeJSON(w, parents)
}

func (that *handlers) Leaves(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, that.graph.Leaves())
}

func (that *handlers) requireKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing key parameter", http.StatusBadRequest)
		return "", false
	}

	return key, true
}

func (that *handlers) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
