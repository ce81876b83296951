// Package server exposes the file-backed document store over HTTP:
// GET/POST /api/content for the document, GET /api/status as a
// liveness probe.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"pagepad/internal/store"
)

type Server struct {
	store *store.Store
}

func New(st *store.Store) *Server {
	return &Server{store: st}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/content", s.getContent).Methods(http.MethodGet)
	r.HandleFunc("/api/content", s.postContent).Methods(http.MethodPost)
	r.HandleFunc("/api/status", s.getStatus).Methods(http.MethodGet)
	r.HandleFunc("/", s.getIndex).Methods(http.MethodGet)
	r.Use(logRequests)
	return r
}

func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Load())
}

func (s *Server) postContent(w http.ResponseWriter, r *http.Request) {
	var in store.Document
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, s.store.Save(in.Content, in.Title))
}

// getStatus is a liveness probe; success carries no content.
func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) getIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	path := s.store.Path()
	if path == "" {
		path = "(no file bound yet)"
	}
	fmt.Fprintf(w, "pagepad server\nfile: %s\n\nconnect with: pagepad edit --server http://%s\n", path, r.Host)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "err", err)
	}
}

// logRequests records method, url and status for every request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &recordingWriter{inner: w}
		next.ServeHTTP(rw, r)
		slog.Info("handled", "method", r.Method, "url", r.URL.String(), "status", rw.statusCode)
	})
}

type recordingWriter struct {
	inner      http.ResponseWriter
	statusCode int
}

func (r *recordingWriter) Header() http.Header {
	return r.inner.Header()
}

func (r *recordingWriter) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	return r.inner.Write(b)
}

func (r *recordingWriter) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.inner.WriteHeader(statusCode)
}
