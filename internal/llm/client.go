package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// generator produces one completion for a system instruction + user content
// pair. It hides the SDK so pipeline stages are testable without it.
type generator interface {
	Generate(ctx context.Context, systemInstruction, content string) (string, error)
	Close() error
}

// generatorFactory builds a generator bound to one user's API key. Keys are
// per-user, so a fresh client is built per pipeline run and closed with it.
type generatorFactory func(ctx context.Context, apiKey string) (generator, error)

type geminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

func newGeminiGenerator(model string, temperature float32) generatorFactory {
	return func(ctx context.Context, apiKey string) (generator, error) {
		client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		return &geminiGenerator{
			client:      client,
			model:       model,
			temperature: temperature,
		}, nil
	}
}

func (g *geminiGenerator) Generate(ctx context.Context, systemInstruction, content string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	temp := g.temperature
	model.GenerationConfig = genai.GenerationConfig{
		Temperature: &temp,
	}

	resp, err := model.GenerateContent(ctx, genai.Text(content))
	if err != nil {
		return "", mapProviderError(err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	return out.String(), nil
}

func (g *geminiGenerator) Close() error {
	return g.client.Close()
}

// mapProviderError turns key-rejection responses into domain.ErrBadAPIKey so
// callers can tell the user to fix their key instead of retrying.
func mapProviderError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return fmt.Errorf("%v: %w", apiErr.Message, domain.ErrBadAPIKey)
		case 400:
			if strings.Contains(strings.ToLower(apiErr.Message), "api key") {
				return fmt.Errorf("%v: %w", apiErr.Message, domain.ErrBadAPIKey)
			}
		}
	}
	return fmt.Errorf("generate content: %w", err)
}
