package asset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ganot/lumina/internal/domain/concept"
)

// Slot identifies one regenerable asset position within a concept.
type Slot string

const (
	SlotLogo      Slot = "logo"
	SlotMoodBoard Slot = "moodboard"
	SlotMockups   Slot = "mockups"
	SlotSocial    Slot = "social"
)

// ParseSlot validates a slot name coming in from a host surface.
func ParseSlot(name string) (Slot, error) {
	switch Slot(name) {
	case SlotLogo, SlotMoodBoard, SlotMockups, SlotSocial:
		return Slot(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSlot, name)
}

type mockupSpec struct {
	key    concept.MockupKey
	suffix string
	ratio  string
}

// The nine application mockups, generated in this order. Ratios are per
// surface: tall for phone-format and apparel shots, wide for scenes.
var mockupSpecs = []mockupSpec{
	{concept.MockupWebsite, "Laptop screen showing website landing page design, ui/ux, digital interface", "16:9"},
	{concept.MockupSignage, "Modern 3D storefront signage, high end architectural photography, photorealistic", "16:9"},
	{concept.MockupMerchandise, "Branded merchandise collection including tote bag and coffee mug, studio lighting", "1:1"},
	{concept.MockupStationery, "Premium stationery set, business cards, letterhead, and envelope, overhead view, elegant", "16:9"},
	{concept.MockupMenu, "Restaurant menu or service list on clipboard or table, close up, depth of field", "9:16"},
	{concept.MockupPackaging, "Product packaging design, box or bag, minimalist studio setting", "1:1"},
	{concept.MockupSocial, "Instagram story social media promotional design, modern typography, phone screen format", "9:16"},
	{concept.MockupUniform, "Staff uniform or apparel design, t-shirt or apron, professional model", "9:16"},
	{concept.MockupInterior, "Interior design of the physical space, shop or office environment, atmospheric lighting", "16:9"},
}

const renderSize = "1K"

// Orchestrator drives image generation for a concept's asset slots and
// writes the resulting state transitions back through the store.
type Orchestrator struct {
	images ImageSynthesizer
	store  Store
	logger *slog.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(images ImageSynthesizer, store Store, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{images: images, store: store, logger: logger}
}

// Generate runs generation for one slot. Hero slots (logo, moodboard)
// return the underlying failure after recording the failure sentinel;
// batch slots isolate per-item failures and only fail on setup errors.
func (o *Orchestrator) Generate(ctx context.Context, projectID, conceptID string, slot Slot) error {
	switch slot {
	case SlotLogo:
		return o.generateLogo(ctx, projectID, conceptID)
	case SlotMoodBoard:
		return o.generateMoodBoard(ctx, projectID, conceptID)
	case SlotMockups:
		return o.generateMockups(ctx, projectID, conceptID)
	case SlotSocial:
		return o.generateCampaign(ctx, projectID, conceptID)
	}
	return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
}

func (o *Orchestrator) generateLogo(ctx context.Context, projectID, conceptID string) error {
	view, c, err := o.store.View(projectID, conceptID)
	if err != nil {
		return err
	}

	o.apply(ctx, projectID, conceptID, concept.Patch{LogoURL: concept.Ref(concept.RefPending)})

	prompt := fmt.Sprintf(
		"Minimalist vector logo for %s (%s). Concept: %s. Style: %s. Solid background, high quality, professional design.",
		view.CompanyName, view.BusinessType, c.LogoConcept, view.BrandStyle)

	ref, err := o.images.Render(ctx, RenderRequest{Prompt: prompt, Size: renderSize, AspectRatio: "1:1"})
	if err != nil {
		o.logger.Error("logo generation failed", "project_id", projectID, "concept_id", conceptID, "error", err)
		o.apply(ctx, projectID, conceptID, concept.Patch{LogoURL: concept.Ref(concept.RefFailed)})
		return fmt.Errorf("generating logo: %w", err)
	}

	history := o.currentHistory(projectID, conceptID, SlotLogo)
	o.apply(ctx, projectID, conceptID, concept.Patch{
		LogoURL:     concept.Ref(ref),
		LogoHistory: AppendVersion(history, ref),
	})
	return nil
}

func (o *Orchestrator) generateMoodBoard(ctx context.Context, projectID, conceptID string) error {
	view, c, err := o.store.View(projectID, conceptID)
	if err != nil {
		return err
	}

	o.apply(ctx, projectID, conceptID, concept.Patch{MoodBoardURL: concept.Ref(concept.RefPending)})

	prompt := fmt.Sprintf(
		"Professional moodboard layout for %s. Theme: %s. Style: %s. Include visual textures, color swatches matching palette, and lifestyle imagery. High resolution, 4k.",
		view.CompanyName, c.MoodBoard, view.BrandStyle)

	ref, err := o.images.Render(ctx, RenderRequest{
		Prompt:      prompt,
		Size:        renderSize,
		AspectRatio: "16:9",
		Reference:   logoReference(c),
	})
	if err != nil {
		o.logger.Error("moodboard generation failed", "project_id", projectID, "concept_id", conceptID, "error", err)
		o.apply(ctx, projectID, conceptID, concept.Patch{MoodBoardURL: concept.Ref(concept.RefFailed)})
		return fmt.Errorf("generating moodboard: %w", err)
	}

	history := o.currentHistory(projectID, conceptID, SlotMoodBoard)
	o.apply(ctx, projectID, conceptID, concept.Patch{
		MoodBoardURL:     concept.Ref(ref),
		MoodBoardHistory: AppendVersion(history, ref),
	})
	return nil
}

// generateMockups initializes all nine keys to the loading marker in one
// batched update, then renders strictly sequentially: one failure must
// not abort the remaining items.
func (o *Orchestrator) generateMockups(ctx context.Context, projectID, conceptID string) error {
	view, c, err := o.store.View(projectID, conceptID)
	if err != nil {
		return err
	}

	loading := make(map[concept.MockupKey]concept.AssetRef, len(mockupSpecs))
	for _, spec := range mockupSpecs {
		loading[spec.key] = concept.RefPending
	}
	o.apply(ctx, projectID, conceptID, concept.Patch{Mockups: loading})

	base := fmt.Sprintf("Brand application for %s (%s). Style: %s. Theme: %s.",
		view.CompanyName, view.BusinessType, view.BrandStyle, c.Summary)
	reference := logoReference(c)

	for _, spec := range mockupSpecs {
		ref, err := o.images.Render(ctx, RenderRequest{
			Prompt:      base + " " + spec.suffix,
			Size:        renderSize,
			AspectRatio: spec.ratio,
			Reference:   reference,
		})
		if err != nil {
			o.logger.Error("mockup generation failed", "project_id", projectID, "concept_id", conceptID, "mockup", spec.key, "error", err)
			ref = concept.RefFailed
		}
		o.apply(ctx, projectID, conceptID, concept.Patch{
			Mockups: map[concept.MockupKey]concept.AssetRef{spec.key: ref},
		})
	}
	return nil
}

// generateCampaign renders one image per campaign post, sequentially,
// keyed by the post's array index.
func (o *Orchestrator) generateCampaign(ctx context.Context, projectID, conceptID string) error {
	view, c, err := o.store.View(projectID, conceptID)
	if err != nil {
		return err
	}
	if len(c.Campaigns) == 0 {
		return nil
	}

	loading := make(map[int]concept.AssetRef, len(c.Campaigns))
	for i := range c.Campaigns {
		loading[i] = concept.RefPending
	}
	o.apply(ctx, projectID, conceptID, concept.Patch{CampaignAssets: loading})

	reference := logoReference(c)
	for i, post := range c.Campaigns {
		prompt := fmt.Sprintf("Social media image for %s. Platform: %s. %s",
			view.CompanyName, post.Platform, post.ImagePrompt)

		ref, err := o.images.Render(ctx, RenderRequest{
			Prompt:      prompt,
			Size:        renderSize,
			AspectRatio: "1:1",
			Reference:   reference,
		})
		if err != nil {
			o.logger.Error("campaign image generation failed", "project_id", projectID, "concept_id", conceptID, "index", i, "error", err)
			ref = concept.RefFailed
		}
		o.apply(ctx, projectID, conceptID, concept.Patch{
			CampaignAssets: map[int]concept.AssetRef{i: ref},
		})
	}
	return nil
}

// apply writes a patch; storage failures are logged and swallowed so the
// in-memory session keeps going.
func (o *Orchestrator) apply(ctx context.Context, projectID, conceptID string, patch concept.Patch) {
	if err := o.store.Update(ctx, projectID, conceptID, patch); err != nil {
		o.logger.Error("state update failed", "project_id", projectID, "concept_id", conceptID, "error", err)
	}
}

// currentHistory re-reads the concept so a regenerate appends to the
// history as it stands now, not as it stood when generation started.
func (o *Orchestrator) currentHistory(projectID, conceptID string, slot Slot) []concept.AssetVersion {
	_, c, err := o.store.View(projectID, conceptID)
	if err != nil {
		return nil
	}
	if slot == SlotLogo {
		return c.LogoHistory
	}
	return c.MoodBoardHistory
}

// logoReference returns the concept's logo for use as a reference image,
// or the empty ref when the logo is absent, loading, or failed.
func logoReference(c *concept.BrandConcept) concept.AssetRef {
	if c.LogoURL != nil && c.LogoURL.Ready() {
		return *c.LogoURL
	}
	return ""
}
