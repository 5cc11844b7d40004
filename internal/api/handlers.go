package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dana-c0914/tui.chart/pkg/cache"
	errs "github.com/dana-c0914/tui.chart/pkg/errors"
	"github.com/dana-c0914/tui.chart/pkg/legend"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/observability"
	"github.com/dana-c0914/tui.chart/pkg/store"
)

// SizeRequest is the body of POST /api/v1/legend/size and /api/v1/layouts.
type SizeRequest struct {
	Spec       legend.Spec `json:"spec"`
	ChartWidth float64     `json:"chart_width"`
}

// SizeResponse is the body returned by POST /api/v1/legend/size.
type SizeResponse struct {
	Dimension legend.Dimension   `json:"dimension"`
	Lines     []layout.LineGroup `json:"lines,omitempty"`
	Skipped   bool               `json:"skipped"`
	Cached    bool               `json:"cached"`
}

// decodeSizeRequest parses and validates a sizing request body.
func decodeSizeRequest(r *http.Request) (SizeRequest, error) {
	var req SizeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, errs.Wrap(errs.ErrCodeInvalidSpec, err, "parse request body")
	}

	if err := errs.ValidateChartType(req.Spec.ChartType); err != nil {
		return req, err
	}
	for _, t := range req.Spec.ChartTypes {
		if err := errs.ValidateChartType(t); err != nil {
			return req, err
		}
	}
	if err := errs.ValidateAlign(string(req.Spec.Options.Align)); err != nil {
		return req, err
	}
	if err := errs.ValidateLabels(req.Spec.Labels); err != nil {
		return req, err
	}
	if req.ChartWidth < 0 {
		return req, errs.New(errs.ErrCodeInvalidInput, "chart_width cannot be negative")
	}
	if req.Spec.Theme.Label.FontSize == 0 {
		req.Spec.Theme = legend.DefaultTheme()
	}
	return req, nil
}

// size runs one sizing computation, consulting the response cache first.
func (s *Server) size(r *http.Request, req SizeRequest) SizeResponse {
	ctx := r.Context()
	specJSON, _ := json.Marshal(req.Spec)
	key := s.keyer.SizeKey(cache.Hash(specJSON), cache.SizeKeyOpts{ChartWidth: req.ChartWidth})

	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var resp SizeResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			observability.Cache().OnCacheHit(ctx, "size")
			resp.Cached = true
			return resp
		}
	}
	observability.Cache().OnCacheMiss(ctx, "size")

	eng := legend.New(req.Spec, s.measurer, legend.WithConstants(s.consts))
	resp := SizeResponse{
		Dimension: eng.Dimension(req.ChartWidth),
		Skipped:   eng.Skip(),
	}
	if !resp.Skipped && eng.Align().IsHorizontal() {
		resp.Lines = eng.Partition(req.ChartWidth).Lines
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "size", len(data))
		}
	}
	return resp
}

// handleSize computes a dimension without persisting anything.
func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSizeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.size(r, req))
}

// handleCreateLayout computes a dimension and persists it as a layout
// document, returning the document with its fresh ID.
func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSizeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := s.size(r, req)
	specJSON, _ := json.Marshal(req.Spec)
	doc := store.NewDocument(cache.Hash(specJSON), req.ChartWidth, resp.Dimension, layout.Partition{Lines: resp.Lines})

	if err := s.store.Put(r.Context(), doc); err != nil {
		writeError(w, errs.Wrap(errs.ErrCodeStore, err, "save layout"))
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// handleGetLayout fetches a persisted layout document by ID.
func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errs.ValidateLayoutID(id); err != nil {
		writeError(w, err)
		return
	}

	doc, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, errs.New(errs.ErrCodeLayoutNotFound, "layout %s not found", id))
		return
	}
	if err != nil {
		writeError(w, errs.Wrap(errs.ErrCodeStore, err, "load layout"))
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleDeleteLayout removes a persisted layout document.
func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errs.ValidateLayoutID(id); err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, errs.Wrap(errs.ErrCodeStore, err, "delete layout"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
