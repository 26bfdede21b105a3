// Package server exposes the journal over HTTP for the local UI.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/thelanternworks/inklight/analysis"
	"github.com/thelanternworks/inklight/reflection"
	"github.com/thelanternworks/inklight/storage"
)

const (
	defaultTimelineDays = 14
	maxTimelineDays     = 90
)

// Server wires the stores and the reflection engine behind a chi
// router. The insights path never touches remote; only /reflect can,
// and only when the caller opts in and a reflector was configured.
type Server struct {
	log     *zap.Logger
	entries *storage.EntryStore
	memory  *storage.MemoryStore
	engine  *reflection.Engine
	remote  reflection.RemoteReflector
	now     func() time.Time
}

func New(log *zap.Logger, entries *storage.EntryStore, memory *storage.MemoryStore, engine *reflection.Engine, remote reflection.RemoteReflector) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:     log,
		entries: entries,
		memory:  memory,
		engine:  engine,
		remote:  remote,
		now:     time.Now,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/entries", func(r chi.Router) {
		r.Post("/", s.handleCreateEntry)
		r.Get("/", s.handleListEntries)
		r.Get("/{id}", s.handleGetEntry)
		r.Get("/{id}/reflection", s.handleGetReflection)
		r.Delete("/{id}", s.handleDeleteEntry)
	})
	r.Get("/insights", s.handleInsights)
	r.Get("/memory", s.handleGetMemory)
	r.Post("/reflect", s.handleReflect)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createEntryRequest struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	entry, err := s.entries.Create(r.Context(), analysis.Entry{Text: req.Text, CreatedAt: req.CreatedAt})
	if err != nil {
		s.log.Error("create entry", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not store entry")
		return
	}

	s.refreshMemory(r.Context())
	s.writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := s.entries.List(r.Context(), limit)
	if err != nil {
		s.log.Error("list entries", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not list entries")
		return
	}
	if entries == nil {
		entries = []analysis.Entry{}
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.entries.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	if err != nil {
		s.log.Error("get entry", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not load entry")
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	err := s.entries.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	if err != nil {
		s.log.Error("delete entry", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not delete entry")
		return
	}
	s.refreshMemory(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type insightsResponse struct {
	Timeline   []analysis.DayPoint    `json:"timeline"`
	Themes     []analysis.Theme       `json:"themes"`
	Weekly     analysis.WeeklySummary `json:"weekly"`
	WhatHelped []analysis.HelpItem    `json:"what_helped"`
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	days := defaultTimelineDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTimelineDays {
			s.writeError(w, http.StatusBadRequest, "days must be between 1 and 90")
			return
		}
		days = n
	}

	entries, err := s.entries.List(r.Context(), 0)
	if err != nil {
		s.log.Error("load entries for insights", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not load entries")
		return
	}
	memory, err := s.memory.Load()
	if err != nil {
		s.log.Warn("load memory for insights", zap.Error(err))
	}

	now := s.now()
	timeline := analysis.BuildMoodTimeline(entries, days, now)
	themes := analysis.ExtractThemes(entries, 3)
	resp := insightsResponse{
		Timeline:   timeline,
		Themes:     themes,
		Weekly:     analysis.BuildWeeklySummary(entries, themes, timeline, now),
		WhatHelped: analysis.WhatHelped(memory, timeline),
	}
	if resp.Themes == nil {
		resp.Themes = []analysis.Theme{}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMemory(w http.ResponseWriter, _ *http.Request) {
	memory, err := s.memory.Load()
	if err != nil {
		s.log.Error("load memory", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not load memory")
		return
	}
	s.writeJSON(w, http.StatusOK, memory)
}

type reflectRequest struct {
	EntryID  string `json:"entry_id,omitempty"`
	Text     string `json:"text,omitempty"`
	Enhanced bool   `json:"enhanced,omitempty"`
}

func (s *Server) handleReflect(w http.ResponseWriter, r *http.Request) {
	var req reflectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	text := req.Text
	if req.EntryID != "" {
		entry, err := s.entries.Get(r.Context(), req.EntryID)
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, "entry not found")
			return
		}
		if err != nil {
			s.log.Error("load entry for reflection", zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "could not load entry")
			return
		}
		text = entry.Text
	}
	if req.EntryID == "" && req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "entry_id or text is required")
		return
	}

	memory, err := s.memory.Load()
	if err != nil {
		s.log.Warn("load memory for reflection", zap.Error(err))
	}

	var out reflection.Output
	if req.Enhanced {
		out = s.engine.Enhanced(r.Context(), s.remote, text, memory)
	} else {
		out = s.engine.Local(text, memory)
	}

	// Reflections on stored entries persist; at most one per entry, so
	// regenerating replaces the previous one.
	if req.EntryID != "" {
		_, err := s.entries.SaveReflection(r.Context(), storage.Reflection{
			EntryID:   req.EntryID,
			CreatedAt: s.now().UTC().Format(time.RFC3339),
			Mirror:    out.Mirror,
			Question:  out.Question,
			Nudges:    out.Nudges,
			Mode:      out.Mode,
		})
		if err != nil {
			s.log.Warn("save reflection", zap.Error(err))
		}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetReflection(w http.ResponseWriter, r *http.Request) {
	ref, err := s.entries.GetReflection(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "no reflection for this entry")
		return
	}
	if err != nil {
		s.log.Error("get reflection", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not load reflection")
		return
	}
	s.writeJSON(w, http.StatusOK, ref)
}

// refreshMemory rebuilds the derived memory from the stored entries.
// The memory is a cache, so a failure here is logged and absorbed.
func (s *Server) refreshMemory(ctx context.Context) {
	entries, err := s.entries.List(ctx, 0)
	if err != nil {
		s.log.Warn("refresh memory: list entries", zap.Error(err))
		return
	}
	if err := s.memory.Save(analysis.BuildMemoryFromEntries(entries, s.now())); err != nil {
		s.log.Warn("refresh memory: save", zap.Error(err))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
