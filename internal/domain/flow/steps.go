package flow

import "github.com/ganot/lumina/internal/domain/asset"

// Step is one station in the guided brand reveal.
type Step struct {
	ID    string
	Title string
	// Slot is the asset slot this step generates, empty for text-only
	// steps whose content arrived with the concept itself.
	Slot asset.Slot
}

// Steps is the fixed reveal sequence.
var Steps = []Step{
	{ID: "logo", Title: "The Mark", Slot: asset.SlotLogo},
	{ID: "typography", Title: "Typography"},
	{ID: "color", Title: "Palette"},
	{ID: "moodboard", Title: "The Vibe", Slot: asset.SlotMoodBoard},
	{ID: "mockups", Title: "In Context", Slot: asset.SlotMockups},
	{ID: "social", Title: "Social Launch", Slot: asset.SlotSocial},
	{ID: "strategy", Title: "Strategy"},
}

// StepIndex returns the position of the step with the given id, or -1.
func StepIndex(id string) int {
	for i, step := range Steps {
		if step.ID == id {
			return i
		}
	}
	return -1
}
