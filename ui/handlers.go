package ui

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"dashgen/app"
	"dashgen/internal/errors"
)

// maxUploadBytes bounds how much of a multipart upload is kept in memory.
const maxUploadBytes = 32 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts a multipart upload ("file" plus an optional "prompt"
// field) and returns the full generation result as JSON.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	result, err := s.runGeneration(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"columnTypes":     result.ColumnTypes,
		"insights":        result.Analysis.Insights,
		"profiles":        result.Analysis.Profiles,
		"summary":         result.Analysis.Summary,
		"instruction":     result.Instruction,
		"patternsApplied": result.PatternsApplied,
	})
}

// handleAnalyzePreview runs the same pipeline but renders the instruction
// block as HTML for quick inspection.
func (s *Server) handleAnalyzePreview(w http.ResponseWriter, r *http.Request) {
	result, err := s.runGeneration(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML([]byte(result.Instruction.Text), p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(rendered)
}

// handleOutcome records how a finished generation went.
func (s *Server) handleOutcome(w http.ResponseWriter, r *http.Request) {
	var report app.OutcomeReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		s.respondError(w, errors.InvalidInput("invalid outcome payload"))
		return
	}
	if err := s.service.RecordOutcome(r.Context(), report); err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

// runGeneration extracts the upload and prompt from a multipart request and
// runs the pipeline.
func (s *Server) runGeneration(r *http.Request) (*app.GenerationResult, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, errors.InvalidInput("expected multipart form with a file field")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errors.InvalidInput("missing file field")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}

	return s.service.Generate(r.Context(), app.Upload{
		Filename: header.Filename,
		Content:  content,
	}, r.FormValue("prompt"))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response: %v", err)
	}
}

// respondError maps the error taxonomy onto HTTP statuses. Unsupported
// formats, empty datasets, and parse failures are caller-visible failures;
// everything else is a server error.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeUnsupportedFormat:
		status = http.StatusUnsupportedMediaType
	case errors.CodeEmptyDataset:
		status = http.StatusUnprocessableEntity
	case errors.CodeParseError, errors.CodeInvalidInput:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	} else {
		s.logger.Warn("request rejected: %v", err)
	}

	s.respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
