package mcp

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
	"github.com/ganot/lumina/internal/domain/flow"
	"github.com/ganot/lumina/internal/domain/project"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (project.Project, error)
	AddConcept(ctx context.Context, projectID string) (concept.BrandConcept, error)
	List() []project.Project
	Get(projectID string) (project.Project, error)
	Delete(ctx context.Context, projectID string)
	SelectVersion(ctx context.Context, projectID, conceptID string, slot asset.Slot, ref concept.AssetRef) error
	MarkComplete(ctx context.Context, projectID string) error
}

// Handler dispatches tool calls to domain services and keeps one flow
// controller per opened concept.
type Handler struct {
	projects  ProjectService
	store     asset.Store
	generator flow.AssetGenerator
	logger    *slog.Logger

	mu    sync.Mutex
	flows map[string]*flow.Controller
}

// NewHandler creates a new MCP handler.
func NewHandler(projects ProjectService, store asset.Store, generator flow.AssetGenerator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		projects:  projects,
		store:     store,
		generator: generator,
		logger:    logger,
		flows:     make(map[string]*flow.Controller),
	}
}

func (h *Handler) CreateProject(ctx context.Context, params CreateProjectParams) (ProjectResponse, error) {
	p, err := h.projects.Create(ctx, project.CreateRequest{
		CompanyName:  params.CompanyName,
		Description:  params.Description,
		BusinessType: params.BusinessType,
		BrandStyle:   params.BrandStyle,
		WebsiteURL:   params.WebsiteURL,
	})
	if err != nil {
		return ProjectResponse{}, mapError(err)
	}
	return ProjectResponse{Project: p}, nil
}

func (h *Handler) ListProjects(ctx context.Context) (ListProjectsResponse, error) {
	projects := h.projects.List()
	resp := ListProjectsResponse{Projects: make([]ProjectSummaryResponse, 0, len(projects))}
	for _, p := range projects {
		resp.Projects = append(resp.Projects, ProjectSummaryResponse{
			ID:           p.ID,
			CompanyName:  p.CompanyName,
			BusinessType: p.BusinessType,
			BrandStyle:   p.BrandStyle,
			Status:       p.Status,
			Progress:     p.Progress,
			CreatedAt:    p.CreatedAt,
			ConceptCount: len(p.Concepts),
		})
	}
	return resp, nil
}

func (h *Handler) GetProject(ctx context.Context, params GetProjectParams) (ProjectResponse, error) {
	p, err := h.projects.Get(params.ProjectID)
	if err != nil {
		return ProjectResponse{}, mapError(err)
	}
	return ProjectResponse{Project: p}, nil
}

func (h *Handler) DeleteProject(ctx context.Context, params DeleteProjectParams) (DeleteProjectResponse, error) {
	h.projects.Delete(ctx, params.ProjectID)

	// Drop flow sessions belonging to the deleted project.
	h.mu.Lock()
	for key := range h.flows {
		if projectOfKey(key) == params.ProjectID {
			delete(h.flows, key)
		}
	}
	h.mu.Unlock()

	return DeleteProjectResponse{Status: "deleted"}, nil
}

func (h *Handler) AddConcept(ctx context.Context, params AddConceptParams) (ConceptResponse, error) {
	c, err := h.projects.AddConcept(ctx, params.ProjectID)
	if err != nil {
		return ConceptResponse{}, mapError(err)
	}
	return ConceptResponse{
		ProjectID: params.ProjectID,
		ConceptID: c.ID,
		Name:      c.Name,
		Summary:   c.Summary,
	}, nil
}

func (h *Handler) GenerateAsset(ctx context.Context, params GenerateAssetParams) (GenerateAssetResponse, error) {
	slot, err := asset.ParseSlot(params.Slot)
	if err != nil {
		return GenerateAssetResponse{}, mapError(err)
	}
	if err := h.generator.Generate(ctx, params.ProjectID, params.ConceptID, slot); err != nil {
		return GenerateAssetResponse{}, mapError(err)
	}
	return GenerateAssetResponse{Status: "done", Slot: string(slot)}, nil
}

func (h *Handler) SelectVersion(ctx context.Context, params SelectVersionParams) (SelectVersionResponse, error) {
	slot, err := asset.ParseSlot(params.Slot)
	if err != nil {
		return SelectVersionResponse{}, mapError(err)
	}
	if err := h.projects.SelectVersion(ctx, params.ProjectID, params.ConceptID, slot, concept.AssetRef(params.URL)); err != nil {
		return SelectVersionResponse{}, mapError(err)
	}
	return SelectVersionResponse{Status: "selected", URL: params.URL}, nil
}

func (h *Handler) OpenConcept(ctx context.Context, params OpenConceptParams) (StepResponse, error) {
	// Validate the target before creating a session.
	if _, _, err := h.store.View(params.ProjectID, params.ConceptID); err != nil {
		return StepResponse{}, mapError(err)
	}

	ctrl := h.controller(params.ProjectID, params.ConceptID)
	ctrl.Start(context.WithoutCancel(ctx))
	return h.stepResponse(ctrl), nil
}

func (h *Handler) NextStep(ctx context.Context, params NextStepParams) (StepResponse, error) {
	ctrl := h.controller(params.ProjectID, params.ConceptID)
	if _, err := ctrl.Next(context.WithoutCancel(ctx)); err != nil {
		return StepResponse{}, mapError(err)
	}
	resp := h.stepResponse(ctrl)
	h.maybeComplete(ctx, params.ProjectID, resp)
	return resp, nil
}

func (h *Handler) PreviousStep(ctx context.Context, params PreviousStepParams) (StepResponse, error) {
	ctrl := h.controller(params.ProjectID, params.ConceptID)
	if _, err := ctrl.Prev(); err != nil {
		return StepResponse{}, mapError(err)
	}
	return h.stepResponse(ctrl), nil
}

func (h *Handler) GotoStep(ctx context.Context, params GotoStepParams) (StepResponse, error) {
	ctrl := h.controller(params.ProjectID, params.ConceptID)
	if _, err := ctrl.Goto(context.WithoutCancel(ctx), params.StepID); err != nil {
		return StepResponse{}, mapError(err)
	}
	resp := h.stepResponse(ctrl)
	h.maybeComplete(ctx, params.ProjectID, resp)
	return resp, nil
}

func (h *Handler) GetProgress(ctx context.Context, params GetProgressParams) (StepResponse, error) {
	ctrl := h.controller(params.ProjectID, params.ConceptID)
	return h.stepResponse(ctrl), nil
}

// controller returns the flow session for a concept, creating it on
// first use.
func (h *Handler) controller(projectID, conceptID string) *flow.Controller {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := projectID + "/" + conceptID
	ctrl, ok := h.flows[key]
	if !ok {
		ctrl = flow.NewController(h.store, h.generator, projectID, conceptID, h.logger)
		h.flows[key] = ctrl
	}
	return ctrl
}

// maybeComplete marks the project complete when the reveal reaches its
// final step.
func (h *Handler) maybeComplete(ctx context.Context, projectID string, resp StepResponse) {
	if resp.Current != resp.Total {
		return
	}
	if err := h.projects.MarkComplete(ctx, projectID); err != nil {
		h.logger.Warn("marking project complete", "project_id", projectID, "error", err)
	}
}

func (h *Handler) stepResponse(ctrl *flow.Controller) StepResponse {
	step := ctrl.Step()
	current, total := ctrl.Progress()
	return StepResponse{
		StepID:     step.ID,
		Title:      step.Title,
		Current:    current,
		Total:      total,
		CanProceed: ctrl.CanProceed(),
	}
}

func projectOfKey(key string) string {
	projectID, _, _ := strings.Cut(key, "/")
	return projectID
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
