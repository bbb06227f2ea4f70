package project

import "github.com/ganot/lumina/internal/domain/concept"

// Status tracks where a project is in its generation lifecycle.
type Status string

const (
	// StatusGeneratingText means the concept text call is in flight.
	StatusGeneratingText Status = "generating_text"
	// StatusGeneratingImages means text is done and assets are rendering.
	StatusGeneratingImages Status = "generating_images"
	// StatusComplete means every requested asset has settled.
	StatusComplete Status = "complete"
	// StatusError means concept generation itself failed.
	StatusError Status = "error"
)

// Project is one brand identity workspace. JSON tags match the stored
// format used by earlier releases so old data loads unchanged.
type Project struct {
	ID           string                 `json:"id"`
	CompanyName  string                 `json:"companyName"`
	Description  string                 `json:"description"`
	BusinessType string                 `json:"businessType"`
	BrandStyle   string                 `json:"brandStyle"`
	WebsiteURL   string                 `json:"websiteUrl,omitempty"`
	Status       Status                 `json:"status"`
	Progress     int                    `json:"progress,omitempty"`
	CreatedAt    int64                  `json:"createdAt"`
	Concepts     []concept.BrandConcept `json:"concepts"`
}

// FindConcept returns the index of the concept with the given id, or -1.
func (p *Project) FindConcept(conceptID string) int {
	for i := range p.Concepts {
		if p.Concepts[i].ID == conceptID {
			return i
		}
	}
	return -1
}
