package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
)

// minReferenceLength is the smallest base64 payload worth attaching as a
// reference image; anything shorter is a placeholder or corrupt ref.
const minReferenceLength = 100

// DefaultAttemptTimeout bounds a single generation attempt.
const DefaultAttemptTimeout = 60 * time.Second

// ContentCaller is the part of the API client the synthesizer needs.
type ContentCaller interface {
	GenerateContent(ctx context.Context, model string, req ContentRequest) ([]Part, error)
}

// Synthesizer renders images through a primary model, falling back to a
// secondary model on quota or permission rejections. Implements
// asset.ImageSynthesizer.
type Synthesizer struct {
	caller        ContentCaller
	primaryModel  string
	fallbackModel string
	timeout       time.Duration
	logger        *slog.Logger
}

// NewSynthesizer creates a Synthesizer. An empty fallbackModel disables
// the fallback path; a zero timeout gets DefaultAttemptTimeout.
func NewSynthesizer(caller ContentCaller, primaryModel, fallbackModel string, timeout time.Duration, logger *slog.Logger) *Synthesizer {
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{
		caller:        caller,
		primaryModel:  primaryModel,
		fallbackModel: fallbackModel,
		timeout:       timeout,
		logger:        logger,
	}
}

// Render generates one image and returns it as a data URI ref.
func (s *Synthesizer) Render(ctx context.Context, req asset.RenderRequest) (concept.AssetRef, error) {
	parts := buildParts(req)

	primary := ContentRequest{
		Contents: []Content{{Parts: parts}},
		GenerationConfig: &GenerationConfig{
			ImageConfig: &ImageConfig{ImageSize: req.Size, AspectRatio: req.AspectRatio},
		},
	}

	ref, primaryErr := s.attempt(ctx, s.primaryModel, primary)
	if primaryErr == nil {
		return ref, nil
	}
	if s.fallbackModel == "" || !IsCapacityError(primaryErr) {
		return "", primaryErr
	}

	s.logger.Warn("primary image model rejected, trying fallback",
		"primary", s.primaryModel, "fallback", s.fallbackModel, "error", primaryErr)

	// The fallback model takes no image config; the aspect ratio is
	// hinted in the prompt instead.
	fallbackParts := append(append([]Part(nil), parts...), Part{Text: aspectHint(req.AspectRatio)})
	fallback := ContentRequest{Contents: []Content{{Parts: fallbackParts}}}

	ref, fallbackErr := s.attempt(ctx, s.fallbackModel, fallback)
	if fallbackErr != nil {
		// Surface the primary failure; the fallback one is secondary.
		s.logger.Error("fallback image model also failed", "fallback", s.fallbackModel, "error", fallbackErr)
		return "", primaryErr
	}
	return ref, nil
}

func (s *Synthesizer) attempt(ctx context.Context, model string, req ContentRequest) (concept.AssetRef, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	parts, err := s.caller.GenerateContent(attemptCtx, model, req)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return "", fmt.Errorf("%w after %s", ErrTimeout, s.timeout)
		}
		return "", err
	}
	return extractImage(parts)
}

// buildParts assembles the prompt plus an optional reference image part.
func buildParts(req asset.RenderRequest) []Part {
	parts := []Part{{Text: req.Prompt}}
	if blob, ok := referenceBlob(req.Reference); ok {
		parts = append(parts, Part{InlineData: blob})
	}
	return parts
}

// referenceBlob decodes a data URI ref into an inline blob, rejecting
// sentinel and undersized refs.
func referenceBlob(ref concept.AssetRef) (*Blob, bool) {
	if !ref.Ready() {
		return nil, false
	}
	uri := string(ref)
	if !strings.HasPrefix(uri, "data:") {
		return nil, false
	}
	meta, data, found := strings.Cut(uri[len("data:"):], ",")
	if !found || len(data) <= minReferenceLength {
		return nil, false
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	return &Blob{MimeType: mimeType, Data: data}, true
}

// extractImage finds the inline image in a response and re-encodes it as
// a data URI. A text-only answer is a refusal.
func extractImage(parts []Part) (concept.AssetRef, error) {
	var refusal string
	for _, part := range parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			uri := fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data)
			return concept.AssetRef(uri), nil
		}
		if part.Text != "" && refusal == "" {
			refusal = part.Text
		}
	}
	if refusal != "" {
		return "", fmt.Errorf("%w: model said %q", ErrNoImage, truncate(refusal, 50))
	}
	return "", ErrNoImage
}

// aspectHint phrases an aspect ratio as prose for models that take no
// image config.
func aspectHint(ratio string) string {
	w, h, found := strings.Cut(ratio, ":")
	if !found {
		return ""
	}
	return fmt.Sprintf(" Aspect ratio %s to %s.", w, h)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
