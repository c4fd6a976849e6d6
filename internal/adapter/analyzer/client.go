// Package analyzer is the bot-side HTTP client for the menu analysis
// service. It speaks the multipart protocol of POST /analyze and maps
// the service's status codes back to domain errors.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// Client calls the analysis service over HTTP.
type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

// New creates a Client for the analysis service at baseURL.
func New(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     logger.With("adapter", "analyzer"),
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type requestMetadata struct {
	AllergicList   []string `json:"allergic_list"`
	Platform       string   `json:"platform"`
	PlatformUserID string   `json:"platform_user_id"`
}

type analyzeResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Analyze uploads the image with the user's allergy list and returns the
// verdict text.
func (c *Client) Analyze(ctx context.Context, image []byte, allergies []string, platform domain.Platform, platformUserID string) (string, error) {
	body, contentType, err := encodeForm(image, requestMetadata{
		AllergicList:   allergies,
		Platform:       platform.String(),
		PlatformUserID: platformUserID,
	})
	if err != nil {
		return "", fmt.Errorf("analyzer: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", body)
	if err != nil {
		return "", fmt.Errorf("analyzer: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("analyzer: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("analyzer: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.mapStatus(resp.StatusCode, payload)
	}

	var out analyzeResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("analyzer: decode response: %w", err)
	}
	if out.Response == "" {
		return "", fmt.Errorf("analyzer: empty response: %w", domain.ErrPipelineFailed)
	}
	return out.Response, nil
}

func encodeForm(image []byte, meta requestMetadata) (*bytes.Buffer, string, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", "image.jpg")
	if err != nil {
		return nil, "", err
	}
	if _, err := fw.Write(image); err != nil {
		return nil, "", err
	}
	if err := mw.WriteField("metadata", string(metaJSON)); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

// mapStatus converts the service's status codes back into the sentinel
// errors the dispatcher switches on.
func (c *Client) mapStatus(status int, payload []byte) error {
	var detail string
	var er errorResponse
	if err := json.Unmarshal(payload, &er); err == nil {
		detail = er.Detail
	}

	switch status {
	case http.StatusNotFound:
		return domain.ErrNoCredential
	case http.StatusUnprocessableEntity:
		return domain.ErrInvalidImage
	case http.StatusBadGateway:
		if strings.Contains(strings.ToLower(detail), "api key") {
			return domain.ErrBadAPIKey
		}
		return domain.ErrPipelineFailed
	default:
		c.log.Error("analysis service error", "status", status, "detail", detail)
		return fmt.Errorf("analyzer: unexpected status %d: %s", status, detail)
	}
}
