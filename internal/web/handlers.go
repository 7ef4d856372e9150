package web

// handlers.go implements the read-only JSON API over the loaded table.
// Domain errors map to status codes here: a failed column lookup is the
// client's 404, anything else is a 500 with detail kept server-side.

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/typetab"
	"github.com/JonMunkholm/typetab/internal/logging"
)

// errorResponse is the JSON envelope for API errors.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// tableResponse is the JSON form of a full table.
type tableResponse struct {
	Names []string                `json:"names"`
	Types map[string]typetab.Type `json:"types"`
	Rows  [][]typetab.Cell        `json:"rows"`
}

// frequencyEntry is one value count, ordered by descending count in the
// response (ordering is this layer's choice; the core map carries none).
type frequencyEntry struct {
	Value typetab.Cell `json:"value"`
	Count int          `json:"count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, tableResponse{
		Names: s.table.Names(),
		Types: s.table.Types(),
		Rows:  s.table.Rows(),
	})
}

func (s *Server) handleColumns(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, typetab.Columns(s.table))
}

func (s *Server) handleColumn(w http.ResponseWriter, r *http.Request) {
	col, err := typetab.Column(s.table, chi.URLParam(r, "name"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, col)
}

func (s *Server) handleFrequencies(w http.ResponseWriter, r *http.Request) {
	col, err := typetab.Column(s.table, chi.URLParam(r, "name"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	freq := typetab.Frequencies(col)
	entries := make([]frequencyEntry, 0, len(freq))
	for value, count := range freq {
		entries = append(entries, frequencyEntry{Value: value, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value.String() < entries[j].Value.String()
	})
	s.respondJSON(w, r, http.StatusOK, entries)
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := "internal"

	var notFound typetab.NotFoundError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		code = "column_not_found"
	}

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
	)
	s.respondJSON(w, r, status, errorResponse{Error: err.Error(), Code: code})
}
