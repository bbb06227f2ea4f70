package mcp

import (
	"github.com/ganot/lumina/internal/domain/project"
)

type CreateProjectParams struct {
	CompanyName  string `json:"company_name" jsonschema:"required,description=The company or brand name"`
	Description  string `json:"description" jsonschema:"required,description=What the company does"`
	BusinessType string `json:"business_type" jsonschema:"required,description=The kind of business (e.g., 'Coffee Shop')"`
	BrandStyle   string `json:"brand_style" jsonschema:"required,description=The desired visual style (e.g., 'Minimalist')"`
	WebsiteURL   string `json:"website_url,omitempty" jsonschema:"description=Optional existing website for context"`
}

type ListProjectsParams struct{}

type GetProjectParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
}

type DeleteProjectParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
}

type AddConceptParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
}

type GenerateAssetParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
	ConceptID string `json:"concept_id" jsonschema:"required,description=Concept ID"`
	Slot      string `json:"slot" jsonschema:"required,description=Asset slot (logo, moodboard, mockups, social)"`
}

type SelectVersionParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
	ConceptID string `json:"concept_id" jsonschema:"required,description=Concept ID"`
	Slot      string `json:"slot" jsonschema:"required,description=Asset slot (logo or moodboard)"`
	URL       string `json:"url" jsonschema:"required,description=The historical version url to make active"`
}

type OpenConceptParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
	ConceptID string `json:"concept_id" jsonschema:"required,description=Concept ID"`
}

type NextStepParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
	ConceptID string `json:"concept_id" jsonschema:"required,description=Concept ID"`
}

type PreviousStepParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
	ConceptID string `json:"concept_id" jsonschema:"required,description=Concept ID"`
}

type GotoStepParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
	ConceptID string `json:"concept_id" jsonschema:"required,description=Concept ID"`
	StepID    string `json:"step_id" jsonschema:"required,description=Target step ID (e.g., 'logo', 'moodboard')"`
}

type GetProgressParams struct {
	ProjectID string `json:"project_id" jsonschema:"required,description=Project ID"`
	ConceptID string `json:"concept_id" jsonschema:"required,description=Concept ID"`
}

// ProjectSummaryResponse is the list view of a project. Concept asset
// payloads are omitted: they are large data URIs.
type ProjectSummaryResponse struct {
	ID           string         `json:"id"`
	CompanyName  string         `json:"company_name"`
	BusinessType string         `json:"business_type"`
	BrandStyle   string         `json:"brand_style"`
	Status       project.Status `json:"status"`
	Progress     int            `json:"progress,omitempty"`
	CreatedAt    int64          `json:"created_at"`
	ConceptCount int            `json:"concept_count"`
}

type ListProjectsResponse struct {
	Projects []ProjectSummaryResponse `json:"projects"`
}

type ProjectResponse struct {
	Project project.Project `json:"project"`
}

type DeleteProjectResponse struct {
	Status string `json:"status"`
}

type ConceptResponse struct {
	ProjectID string `json:"project_id"`
	ConceptID string `json:"concept_id"`
	Name      string `json:"name"`
	Summary   string `json:"summary"`
}

type GenerateAssetResponse struct {
	Status string `json:"status"`
	Slot   string `json:"slot"`
}

type SelectVersionResponse struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

// StepResponse describes the controller's position after a navigation.
type StepResponse struct {
	StepID     string `json:"step_id"`
	Title      string `json:"title"`
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	CanProceed bool   `json:"can_proceed"`
}
