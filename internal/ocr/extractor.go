// Package ocr extracts text from menu photos. Images are upscaled,
// grayscaled and binarized before being handed to the Tesseract engine;
// menu photos are usually low-contrast phone shots and the engine performs
// poorly on them raw.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"strings"

	_ "image/jpeg"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/draw"

	"github.com/allergymenu/allergymenu-backend/internal/domain"
)

// Extractor runs the OCR preprocessing pipeline and the Tesseract engine.
type Extractor struct {
	log       *slog.Logger
	languages []string
	upscale   float64
}

// NewExtractor creates an extractor. languages is a Tesseract language
// string such as "chi_tra+eng"; upscale is the linear scale factor applied
// before recognition.
func NewExtractor(logger *slog.Logger, languages string, upscale float64) *Extractor {
	if upscale < 1.0 {
		upscale = 1.0
	}
	return &Extractor{
		log:       logger.With("component", "ocr"),
		languages: strings.Split(languages, "+"),
		upscale:   upscale,
	}
}

// ExtractText recognizes text in the given JPEG or PNG bytes. Undecodable
// input yields domain.ErrInvalidImage. The engine call is bounded by ctx.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", domain.ErrInvalidImage)
	}

	prepared := e.preprocess(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, prepared); err != nil {
		return "", fmt.Errorf("encode preprocessed image: %w", err)
	}

	text, err := e.recognize(ctx, buf.Bytes())
	if err != nil {
		return "", err
	}

	e.log.Debug("text extracted", "chars", len(text))
	return text, nil
}

// preprocess upscales the image, converts it to grayscale and binarizes it
// with an Otsu threshold.
func (e *Extractor) preprocess(img image.Image) *image.Gray {
	b := img.Bounds()
	w := int(float64(b.Dx()) * e.upscale)
	h := int(float64(b.Dy()) * e.upscale)

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)

	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	threshold := otsuThreshold(gray)
	for i, p := range gray.Pix {
		if p > threshold {
			gray.Pix[i] = 255
		} else {
			gray.Pix[i] = 0
		}
	}

	return gray
}

// recognize feeds the prepared PNG to Tesseract. The engine is not
// cancelable, so the call runs in its own goroutine and the result is
// dropped if ctx expires first.
func (e *Extractor) recognize(ctx context.Context, pngBytes []byte) (string, error) {
	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		client := gosseract.NewClient()
		defer client.Close()

		if err := client.SetLanguage(e.languages...); err != nil {
			done <- result{err: fmt.Errorf("set languages: %w", err)}
			return
		}
		if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
			done <- result{err: fmt.Errorf("set page seg mode: %w", err)}
			return
		}
		if err := client.SetImageFromBytes(pngBytes); err != nil {
			done <- result{err: fmt.Errorf("set image: %w", err)}
			return
		}

		text, err := client.Text()
		if err != nil {
			done <- result{err: fmt.Errorf("recognize: %w", err)}
			return
		}
		done <- result{text: strings.TrimSpace(text)}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("ocr: %w", ctx.Err())
	case r := <-done:
		return r.text, r.err
	}
}
