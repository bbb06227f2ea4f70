package mcp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
	"github.com/ganot/lumina/internal/domain/flow"
	"github.com/ganot/lumina/internal/domain/project"
	"github.com/ganot/lumina/internal/genai"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects for valid IDs"}
	case errors.Is(err, project.ErrConceptNotFound):
		return &APIError{Code: "CONCEPT_NOT_FOUND", Message: "concept not found", RecoveryHint: "Check the concept ID on the project"}
	case errors.Is(err, asset.ErrUnknownSlot):
		return &APIError{Code: "UNKNOWN_SLOT", Message: "unknown asset slot", RecoveryHint: "Valid slots: logo, moodboard, mockups, social"}
	case errors.Is(err, asset.ErrVersionNotFound):
		return &APIError{Code: "VERSION_NOT_FOUND", Message: "version not in history", RecoveryHint: "Use a url from the asset's history"}
	case errors.Is(err, asset.ErrNoVersionsForSlot):
		return &APIError{Code: "NO_VERSIONS_FOR_SLOT", Message: "slot keeps no version history", RecoveryHint: "Only logo and moodboard keep history"}
	case errors.Is(err, flow.ErrStepNotReady):
		return &APIError{Code: "STEP_NOT_READY", Message: "current step is still generating", RecoveryHint: "Wait for the asset, then retry"}
	case errors.Is(err, flow.ErrUnknownStep):
		return &APIError{Code: "UNKNOWN_STEP", Message: "unknown step", RecoveryHint: "Call get_progress for the step list"}
	case errors.Is(err, flow.ErrAtBoundary):
		return &APIError{Code: "AT_BOUNDARY", Message: "no step in that direction"}
	case errors.Is(err, genai.ErrMissingAPIKey):
		return &APIError{Code: "MISSING_API_KEY", Message: "generation API key is not configured", RecoveryHint: "Set LUMINA_API_KEY"}
	case errors.Is(err, genai.ErrTimeout):
		return &APIError{Code: "GENERATION_TIMEOUT", Message: "image generation hit its deadline", RecoveryHint: "Retry the request"}
	case errors.Is(err, genai.ErrNoImage):
		return &APIError{Code: "NO_IMAGE_RETURNED", Message: "the model answered without an image", RecoveryHint: "Retry, or regenerate the concept"}
	case strings.Contains(err.Error(), "PERMISSION_DENIED"):
		return &APIError{Code: "CREDENTIAL_REJECTED", Message: "the upstream API rejected the configured key", RecoveryHint: "Check LUMINA_API_KEY"}
	case errors.Is(err, concept.ErrInvalidJSON), errors.Is(err, concept.ErrMissingConcepts), errors.Is(err, concept.ErrNoText):
		return &APIError{Code: "GENERATION_FAILED", Message: "concept generation returned an unusable response", RecoveryHint: "Retry the request"}
	default:
		return nil
	}
}
