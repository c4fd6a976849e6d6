package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
	"github.com/allergymenu/allergymenu-backend/internal/service/analysis"
)

// analyzeService is the slice of the analysis service the handler needs.
type analyzeService interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error)
}

// AnalyzeHandler serves POST /analyze.
type AnalyzeHandler struct {
	log          *slog.Logger
	svc          analyzeService
	maxImageSize int64
}

// NewAnalyzeHandler creates an AnalyzeHandler. maxImageSize bounds the
// uploaded file in bytes.
func NewAnalyzeHandler(logger *slog.Logger, svc analyzeService, maxImageSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		log:          logger.With("handler", "analyze"),
		svc:          svc,
		maxImageSize: maxImageSize,
	}
}

// analyzeMetadata is the "metadata" form field, a JSON document riding
// alongside the image.
type analyzeMetadata struct {
	AllergicList   []string `json:"allergic_list"`
	Platform       string   `json:"platform"`
	PlatformUserID string   `json:"platform_user_id"`
}

// AnalyzeResponse is the success payload of POST /analyze.
type AnalyzeResponse struct {
	Response string          `json:"response"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata echoes the request metadata plus the raw OCR text.
type ResponseMetadata struct {
	AllergicList   []string `json:"allergic_list"`
	Platform       string   `json:"platform"`
	PlatformUserID string   `json:"platform_user_id"`
	RawText        string   `json:"raw_text"`
}

// ErrorResponse is the error payload; the status code doubles as a
// retryability hint for callers (4xx: fix the request, 502: try later).
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Analyze handles one menu analysis request: multipart form with a "file"
// image and a "metadata" JSON field.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize)
	if err := r.ParseMultipartForm(h.maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close() //nolint:errcheck

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	var meta analyzeMetadata
	if err := json.Unmarshal([]byte(r.FormValue("metadata")), &meta); err != nil {
		writeError(w, http.StatusBadRequest, "invalid metadata JSON")
		return
	}
	if meta.Platform == "" || meta.PlatformUserID == "" {
		writeError(w, http.StatusBadRequest, "missing platform or platform_user_id in metadata")
		return
	}

	platform := domain.Platform(strings.ToLower(meta.Platform))
	if !platform.IsValid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown platform %q", meta.Platform))
		return
	}

	result, err := h.svc.Analyze(r.Context(), analysis.Request{
		Image:          image,
		Allergies:      meta.AllergicList,
		Platform:       platform,
		PlatformUserID: meta.PlatformUserID,
	})
	if err != nil {
		h.writeAnalyzeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Response: result.Text,
		Metadata: ResponseMetadata{
			AllergicList:   meta.AllergicList,
			Platform:       string(platform),
			PlatformUserID: meta.PlatformUserID,
			RawText:        result.RawOCR,
		},
	})
}

func (h *AnalyzeHandler) writeAnalyzeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNoCredential):
		writeError(w, http.StatusNotFound, "No API key found.")
	case errors.Is(err, domain.ErrInvalidImage):
		writeError(w, http.StatusUnprocessableEntity, "file is not a decodable image")
	case errors.Is(err, domain.ErrBadAPIKey):
		writeError(w, http.StatusBadGateway, "LLM provider rejected the API key")
	case errors.Is(err, domain.ErrPipelineFailed):
		writeError(w, http.StatusBadGateway, "analysis pipeline failed")
	default:
		h.log.ErrorContext(r.Context(), "analysis failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
