package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/bethejack/internal/db"
	"github.com/jonathan/bethejack/internal/drafts"
	"github.com/jonathan/bethejack/internal/generation"
	"github.com/jonathan/bethejack/internal/llm"
	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/rendering"
	"github.com/jonathan/bethejack/internal/types"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// handleCreateDraft generates a draft from a job description. A failed model
// call still creates the draft; its text carries the error.
func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if !s.decode(w, r, &req, false) {
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, err)
		return
	}
	mode, err := types.ParseLayoutMode(req.Layout)
	if err != nil {
		s.fail(w, &ErrValidation{Field: "layout", Message: err.Error()})
		return
	}

	aboutMe := req.AboutMe
	if aboutMe == "" {
		name := req.Profile
		if name == "" {
			name = profile.DefaultName
		}
		p, err := profile.LoadOrDefault(r.Context(), s.profiles, name)
		if err != nil {
			s.fail(w, err)
			return
		}
		aboutMe = p.AboutMe
	}

	res := s.drafter.Generate(r.Context(), generation.Request{
		AboutMe:        aboutMe,
		JobDescription: req.JobDescription,
		Layout:         mode,
		Tier:           llm.ParseTier(req.Tier),
	})

	d := types.Draft{
		Layout:         mode,
		Text:           res.Text,
		JobDescription: req.JobDescription,
		Model:          res.Model,
	}
	if res.Err != nil {
		d.GenerationErr = res.Err.Error()
	}
	created, err := s.drafts.Create(r.Context(), drafts.New(d, time.Now()))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleListDrafts returns the most recently updated drafts.
func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.fail(w, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = min(n, maxListLimit)
	}

	list, err := s.drafts.List(r.Context(), limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	if list == nil {
		list = []types.Draft{}
	}
	s.jsonResponse(w, http.StatusOK, list)
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := s.draftID(w, r)
	if !ok {
		return
	}
	d, err := s.drafts.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, d)
}

// handleUpdateDraft replaces the draft text with the user's edit.
func (s *Server) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := s.draftID(w, r)
	if !ok {
		return
	}
	var req types.UpdateDraftRequest
	if !s.decode(w, r, &req, false) {
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, err)
		return
	}
	d, err := s.drafts.UpdateText(r.Context(), id, req.Text)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, d)
}

// handleRenderDraft renders the current text of a stored draft as a PDF.
func (s *Server) handleRenderDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := s.draftID(w, r)
	if !ok {
		return
	}
	var req types.RenderDraftRequest
	if !s.decode(w, r, &req, true) {
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, err)
		return
	}
	d, err := s.drafts.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}

	filename := rendering.Filename(d.Layout, d.JobDescription)
	pdf, pages, err := rendering.RenderPages(d.Text, rendering.Options{
		Layout:      d.Layout,
		DisplayName: s.nameOr(req.DisplayName),
		Photo:       req.Photo,
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	if s.db != nil {
		_, err := s.db.RecordRender(r.Context(), db.Render{
			DraftID:   &d.ID,
			Layout:    string(d.Layout),
			Filename:  filename,
			Pages:     pages,
			SizeBytes: len(pdf),
		})
		if err != nil {
			log.Printf("[server] failed to record render of %s: %v", d.ID, err)
		}
	}
	s.pdfResponse(w, filename, pages, pdf)
}

// handleListRenders returns the render history of a draft. Without a
// database there is no history.
func (s *Server) handleListRenders(w http.ResponseWriter, r *http.Request) {
	id, ok := s.draftID(w, r)
	if !ok {
		return
	}
	if _, err := s.drafts.Get(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	renders := []db.Render{}
	if s.db != nil {
		list, err := s.db.ListRenders(r.Context(), id)
		if err != nil {
			s.fail(w, err)
			return
		}
		if list != nil {
			renders = list
		}
	}
	s.jsonResponse(w, http.StatusOK, renders)
}

// handleRender renders text from the request body without storing a draft.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req types.RenderRequest
	if !s.decode(w, r, &req, false) {
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, err)
		return
	}
	mode, err := types.ParseLayoutMode(req.Layout)
	if err != nil {
		s.fail(w, &ErrValidation{Field: "layout", Message: err.Error()})
		return
	}

	pdf, pages, err := rendering.RenderPages(req.Text, rendering.Options{
		Layout:      mode,
		DisplayName: s.nameOr(req.DisplayName),
		Photo:       req.Photo,
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.pdfResponse(w, rendering.Filename(mode, req.JobDescription), pages, pdf)
}

// handleGetProfile returns a stored profile. The default profile always
// exists.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	p, err := s.profiles.Load(r.Context(), name)
	if errors.Is(err, profile.ErrNotFound) && name == profile.DefaultName {
		p, err = profile.Default(), nil
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handlePutProfile stores a profile document given as the raw request body.
func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := profile.ValidateName(name); err != nil {
		s.fail(w, err)
		return
	}
	p, err := profile.Load(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := s.profiles.Save(r.Context(), name, p); err != nil {
		s.fail(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.fail(w, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) nameOr(name string) string {
	if name != "" {
		return name
	}
	return s.displayName
}

func (s *Server) pdfResponse(w http.ResponseWriter, filename string, pages int, pdf []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("X-Page-Count", strconv.Itoa(pages))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("[server] error writing PDF response: %v", err)
	}
}
