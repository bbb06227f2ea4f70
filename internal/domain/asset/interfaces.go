package asset

import (
	"context"

	"github.com/ganot/lumina/internal/domain/concept"
)

// RenderRequest is one image-generation call.
type RenderRequest struct {
	Prompt      string
	Size        string
	AspectRatio string
	// Reference optionally anchors visual consistency on an existing
	// asset; loading or failed refs are ignored by the synthesizer.
	Reference concept.AssetRef
}

// ImageSynthesizer produces one image payload reference per request.
type ImageSynthesizer interface {
	Render(ctx context.Context, req RenderRequest) (concept.AssetRef, error)
}

// ProjectView is the slice of project data the orchestrator needs for
// prompt composition.
type ProjectView struct {
	CompanyName  string
	BusinessType string
	BrandStyle   string
}

// Store provides read and merge-update access to concept state.
type Store interface {
	// View returns the project view and a copy of the concept.
	View(projectID, conceptID string) (ProjectView, *concept.BrandConcept, error)
	// Update applies a patch with merge semantics and persists.
	Update(ctx context.Context, projectID, conceptID string, patch concept.Patch) error
}
