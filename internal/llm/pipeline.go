// Package llm turns OCR text into a personalized allergen verdict through
// three sequential Gemini calls: dish extraction, allergen enumeration, and
// classification against the user's allergy list.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// Pipeline runs the three-stage analysis. Safe for concurrent use; each run
// builds its own provider client from the caller's API key.
type Pipeline struct {
	log          *slog.Logger
	stageTimeout time.Duration
	newGenerator generatorFactory
}

// NewPipeline creates a pipeline using the Gemini backend.
func NewPipeline(logger *slog.Logger, model string, temperature float32, stageTimeout time.Duration) *Pipeline {
	return &Pipeline{
		log:          logger.With("component", "llm"),
		stageTimeout: stageTimeout,
		newGenerator: newGeminiGenerator(model, temperature),
	}
}

// Generate produces the final verdict text for one menu. logTag identifies
// the requesting user in logs ("platform: user id"); stage exchanges are
// logged at Debug and never persisted.
//
// An empty completion in the first two stages degrades to "" and the run
// continues; the model answers "no menu" on its own in stage three. A stage
// error aborts the run: key rejections surface as domain.ErrBadAPIKey,
// everything else as domain.ErrPipelineFailed.
func (p *Pipeline) Generate(ctx context.Context, ocrText string, allergies []string, apiKey, logTag string) (string, error) {
	gen, err := p.newGenerator(ctx, apiKey)
	if err != nil {
		return "", fmt.Errorf("llm pipeline: %w", err)
	}
	defer gen.Close() //nolint:errcheck

	p.log.Debug("pipeline input", "tag", logTag, "allergies", allergies, "ocr_text", ocrText)

	dishes, err := p.runStage(ctx, gen, "dish extraction", logTag, dishExtractionInstruction, ocrText)
	if err != nil {
		return "", err
	}

	allergens, err := p.runStage(ctx, gen, "allergen enumeration", logTag, allergenEnumerationInstruction, dishes)
	if err != nil {
		return "", err
	}

	content := fmt.Sprintf("我的過敏原:%s\n菜單以及過敏資訊:\n%s",
		strings.Join(allergies, ", "), allergens)

	verdict, err := p.runStage(ctx, gen, "classification", logTag, classificationInstruction, content)
	if err != nil {
		return "", err
	}
	if verdict == "" {
		return "", fmt.Errorf("llm pipeline: classification returned nothing: %w", domain.ErrPipelineFailed)
	}

	return verdict, nil
}

func (p *Pipeline) runStage(ctx context.Context, gen generator, stage, logTag, instruction, content string) (string, error) {
	stageCtx := ctx
	if p.stageTimeout > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, p.stageTimeout)
		defer cancel()
	}

	out, err := gen.Generate(stageCtx, instruction, content)
	if err != nil {
		if errors.Is(err, domain.ErrBadAPIKey) {
			return "", fmt.Errorf("llm pipeline: %s: %w", stage, domain.ErrBadAPIKey)
		}
		return "", fmt.Errorf("llm pipeline: %s: %v: %w", stage, err, domain.ErrPipelineFailed)
	}

	p.log.Debug("stage completed", "tag", logTag, "stage", stage, "output", out)
	return out, nil
}
