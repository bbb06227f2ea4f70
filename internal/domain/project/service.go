package project

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
)

// ConceptGenerator produces brand concepts from project inputs.
type ConceptGenerator interface {
	Generate(ctx context.Context, req concept.GenerateRequest) ([]concept.BrandConcept, error)
}

// CreateRequest carries the inputs for a new project.
type CreateRequest struct {
	CompanyName  string
	Description  string
	BusinessType string
	BrandStyle   string
	WebsiteURL   string
}

// Service implements project lifecycle operations on top of the Store.
type Service struct {
	store     *Store
	generator ConceptGenerator
	logger    *slog.Logger
}

// NewService creates a Service.
func NewService(store *Store, generator ConceptGenerator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, generator: generator, logger: logger}
}

// Create registers a new project and runs the initial concept generation.
// The project is inserted before generation so it is visible while text
// is in flight; a generation failure leaves it in the error status.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Project, error) {
	p := Project{
		ID:           strconv.FormatInt(time.Now().UnixMilli(), 10),
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		BusinessType: req.BusinessType,
		BrandStyle:   req.BrandStyle,
		WebsiteURL:   req.WebsiteURL,
		Status:       StatusGeneratingText,
		CreatedAt:    time.Now().UnixMilli(),
	}
	s.store.Insert(ctx, p)

	concepts, err := s.generator.Generate(ctx, concept.GenerateRequest{
		CompanyName:  req.CompanyName,
		Description:  req.Description,
		BusinessType: req.BusinessType,
		BrandStyle:   req.BrandStyle,
		WebsiteURL:   req.WebsiteURL,
	})
	if err != nil {
		s.logger.Error("concept generation failed", "project_id", p.ID, "error", err)
		_ = s.store.Mutate(ctx, p.ID, func(p *Project) {
			p.Status = StatusError
		})
		return Project{}, fmt.Errorf("creating project: %w", err)
	}

	if mutErr := s.store.Mutate(ctx, p.ID, func(p *Project) {
		p.Concepts = concepts
		p.Status = StatusGeneratingImages
		p.Progress = 10
	}); mutErr != nil {
		return Project{}, mutErr
	}
	return s.store.Get(p.ID)
}

// AddConcept generates one additional concept for an existing project.
// The project status flips to generating_text while the call is out and
// is restored on failure.
func (s *Service) AddConcept(ctx context.Context, projectID string) (concept.BrandConcept, error) {
	p, err := s.store.Get(projectID)
	if err != nil {
		return concept.BrandConcept{}, err
	}

	previous := p.Status
	_ = s.store.Mutate(ctx, projectID, func(p *Project) {
		p.Status = StatusGeneratingText
	})

	concepts, err := s.generator.Generate(ctx, concept.GenerateRequest{
		CompanyName:  p.CompanyName,
		Description:  p.Description,
		BusinessType: p.BusinessType,
		BrandStyle:   p.BrandStyle,
		WebsiteURL:   p.WebsiteURL,
	})
	if err != nil || len(concepts) == 0 {
		_ = s.store.Mutate(ctx, projectID, func(p *Project) {
			p.Status = previous
		})
		if err == nil {
			err = concept.ErrMissingConcepts
		}
		return concept.BrandConcept{}, fmt.Errorf("adding concept: %w", err)
	}

	added := concepts[0]
	added.ID = fmt.Sprintf("concept-%d-%d", time.Now().UnixMilli(), len(p.Concepts))
	if err := s.store.Mutate(ctx, projectID, func(p *Project) {
		p.Concepts = append(p.Concepts, added)
		p.Status = StatusGeneratingImages
	}); err != nil {
		return concept.BrandConcept{}, err
	}
	return added, nil
}

// MarkComplete flips a project to the complete status once its reveal
// has been walked to the end.
func (s *Service) MarkComplete(ctx context.Context, projectID string) error {
	return s.store.Mutate(ctx, projectID, func(p *Project) {
		p.Status = StatusComplete
		p.Progress = 100
	})
}

// List returns all projects, newest first.
func (s *Service) List() []Project {
	return s.store.List()
}

// Get returns one project.
func (s *Service) Get(projectID string) (Project, error) {
	return s.store.Get(projectID)
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, projectID string) {
	s.store.Delete(ctx, projectID)
}

// SelectVersion switches a hero asset's active reference to a version
// already in its history. Only the logo and moodboard keep history.
func (s *Service) SelectVersion(ctx context.Context, projectID, conceptID string, slot asset.Slot, ref concept.AssetRef) error {
	_, c, err := s.store.View(projectID, conceptID)
	if err != nil {
		return err
	}

	var patch concept.Patch
	switch slot {
	case asset.SlotLogo:
		selected, err := asset.SelectVersion(c.LogoHistory, ref)
		if err != nil {
			return err
		}
		patch.LogoURL = concept.Ref(selected)
	case asset.SlotMoodBoard:
		selected, err := asset.SelectVersion(c.MoodBoardHistory, ref)
		if err != nil {
			return err
		}
		patch.MoodBoardURL = concept.Ref(selected)
	default:
		return fmt.Errorf("%w: %q", asset.ErrNoVersionsForSlot, slot)
	}

	return s.store.Update(ctx, projectID, conceptID, patch)
}
