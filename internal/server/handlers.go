package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/resumify/resumify/internal/export"
	"github.com/resumify/resumify/internal/preview"
	"github.com/resumify/resumify/internal/printer"
	"github.com/resumify/resumify/internal/suggest"
	"github.com/resumify/resumify/internal/types"
	"github.com/resumify/resumify/schemas"
)

// ---------------------------------------------------------------------
// Document Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

func (s *Server) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var req types.Personal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Var(req.Email, "omitempty,email"); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	s.store.ReplacePersonal(req)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req types.Theme
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.ReplaceTheme(req)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleUpdateThemeColor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.SetThemeColor(req.Color)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleUpdateThemeFont(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Font string `json:"font"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.SetThemeFont(req.Font)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleReset wipes the document. The caller must send {"confirm": true};
// anything else is rejected so a stray request cannot destroy the resume.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Confirm {
		err := &ErrNotConfirmed{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.store.Reset()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := schemas.ValidateDocument(raw); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	doc, err := types.ParseDocument(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return
	}

	s.store.ReplaceDocument(doc)
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "imported"})
}

// ---------------------------------------------------------------------
// Record Handlers
// ---------------------------------------------------------------------

func (s *Server) handleAppendRecord(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")

	fields, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(fields) == 0 {
		fields = []byte("{}")
	}

	id, err := s.store.AppendRecord(section, fields)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	id := r.PathValue("id")

	fields, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := s.store.UpdateRecord(section, id, fields); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleRemoveRecord(w http.ResponseWriter, r *http.Request) {
	section := r.PathValue("section")
	id := r.PathValue("id")

	if err := s.store.RemoveRecord(section, id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// Suggestion Handler
// ---------------------------------------------------------------------

// handleSuggest schedules background bullet generation for one experience
// record. The response returns immediately; suggestions are appended to the
// record's description once ready, unless a newer request supersedes this one.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Role string `json:"role"`
	}
	if r.Body != nil {
		// Body is optional; a missing role falls back to the stored one.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	rec, ok := s.findExperience(id)
	if !ok {
		err := &ErrRecordNotFound{Section: types.SectionExperience, ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = rec.Role
	}

	requestID, err := s.suggests.Request(context.Background(), id, role, func(suggestions []string) {
		s.applySuggestions(id, suggestions)
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusAccepted, map[string]string{"requestId": requestID})
}

func (s *Server) findExperience(id string) (types.Experience, bool) {
	for _, rec := range s.store.Document().Experience {
		if rec.ID == id {
			return rec, true
		}
	}
	return types.Experience{}, false
}

// applySuggestions appends the generated bullets to the record's current
// description. The record may have been edited or removed since the request
// was made; the description is re-read here and a missing record is a no-op.
func (s *Server) applySuggestions(id string, suggestions []string) {
	rec, ok := s.findExperience(id)
	if !ok {
		return
	}

	fields, err := json.Marshal(map[string]string{
		"description": suggest.Apply(rec.Description, suggestions),
	})
	if err != nil {
		return
	}
	_ = s.store.UpdateRecord(types.SectionExperience, id, fields)
}

// ---------------------------------------------------------------------
// Rendering Handlers
// ---------------------------------------------------------------------

func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	html, err := preview.Render(s.store.Document())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

func (s *Server) handleExportDOCX(w http.ResponseWriter, _ *http.Request) {
	doc := s.store.Document()

	data, err := s.exporter.DOCX(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export DOCX: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Document()

	html, err := preview.Render(doc)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render preview: "+err.Error())
		return
	}

	data, err := s.printer.PDF(r.Context(), html)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to print PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", printer.FileName(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
