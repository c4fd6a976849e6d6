// Package analysis orchestrates one menu analysis: resolve the user's API
// key, OCR the photo, run the LLM pipeline.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// credentialSource resolves a user's API key. Absence of a usable key is
// signalled with domain.ErrNoCredential.
type credentialSource interface {
	GetCredential(ctx context.Context, platform domain.Platform, platformUserID string) (string, error)
}

// textExtractor turns image bytes into text.
type textExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// verdictGenerator runs the staged LLM analysis.
type verdictGenerator interface {
	Generate(ctx context.Context, ocrText string, allergies []string, apiKey, logTag string) (string, error)
}

// Request is one menu photo plus the requester's identity and allergen list.
type Request struct {
	Image          []byte
	Allergies      []string
	Platform       domain.Platform
	PlatformUserID string
}

// Result is the verdict text plus the raw OCR output it was derived from.
type Result struct {
	Text   string
	RawOCR string
}

// Service implements the analysis operation.
type Service struct {
	log        *slog.Logger
	creds      credentialSource
	ocr        textExtractor
	pipeline   verdictGenerator
	ocrTimeout time.Duration
}

// NewService creates a new analysis service instance.
func NewService(
	logger *slog.Logger,
	creds credentialSource,
	ocr textExtractor,
	pipeline verdictGenerator,
	ocrTimeout time.Duration,
) *Service {
	return &Service{
		log:        logger.With("service", "analysis"),
		creds:      creds,
		ocr:        ocr,
		pipeline:   pipeline,
		ocrTimeout: ocrTimeout,
	}
}

// Analyze runs the full photo-to-verdict flow. Sentinel errors pass through
// for the transport layer to classify: ErrNoCredential, ErrInvalidImage,
// ErrBadAPIKey, ErrPipelineFailed.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	apiKey, err := s.creds.GetCredential(ctx, req.Platform, req.PlatformUserID)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	ocrCtx := ctx
	if s.ocrTimeout > 0 {
		var cancel context.CancelFunc
		ocrCtx, cancel = context.WithTimeout(ctx, s.ocrTimeout)
		defer cancel()
	}

	text, err := s.ocr.ExtractText(ocrCtx, req.Image)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	logTag := fmt.Sprintf("%s: %s", req.Platform, req.PlatformUserID)
	s.log.Info("menu analysis started",
		"platform", req.Platform,
		"platform_user_id", req.PlatformUserID,
		"allergies", req.Allergies,
		"ocr_chars", len(text),
	)

	verdict, err := s.pipeline.Generate(ctx, text, req.Allergies, apiKey, logTag)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	return &Result{Text: verdict, RawOCR: text}, nil
}
