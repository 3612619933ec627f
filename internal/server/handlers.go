package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cardframe/pkg/errors"
	"github.com/matzehuels/cardframe/pkg/pipeline"
	"github.com/matzehuels/cardframe/pkg/template"
)

// resolveRequest is the body of POST /v1/resolve.
type resolveRequest struct {
	Template template.Template `json:"template"`
	Options  pipeline.Options  `json:"options"`
}

// resolveResponse is the body of both resolve endpoints.
type resolveResponse struct {
	Layout       template.Result `json:"layout"`
	TemplateHash string          `json:"template_hash"`
	Strategy     string          `json:"strategy"`
	CacheHit     bool            `json:"cache_hit"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	s.resolveAndRespond(w, r, req.Template, req.Options)
}

func (s *Server) handleResolveStored(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	tmpl, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var opts pipeline.Options
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode options"))
			return
		}
	}
	s.resolveAndRespond(w, r, tmpl, opts)
}

func (s *Server) resolveAndRespond(w http.ResponseWriter, r *http.Request, tmpl template.Template, opts pipeline.Options) {
	result, err := s.runner.Resolve(r.Context(), tmpl, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resolveResponse{
		Layout:       result.Layout,
		TemplateHash: result.TemplateHash,
		Strategy:     result.Strategy,
		CacheHit:     result.CacheHit,
	})
}

func (s *Server) handlePutTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateTemplateName(name); err != nil {
		s.writeError(w, r, err)
		return
	}

	var tmpl template.Template
	if err := json.NewDecoder(r.Body).Decode(&tmpl); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode template"))
		return
	}
	// The URL is authoritative for the name.
	tmpl.Name = name
	if err := tmpl.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.store.Put(r.Context(), tmpl); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"name": name})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tmpl)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"templates": names})
}
