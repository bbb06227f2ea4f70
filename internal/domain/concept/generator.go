package concept

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ganot/lumina/internal/jsonrepair"
)

const systemInstruction = "Output pure JSON only. Do not use comments. " +
	"Escape all special characters and newlines within strings."

// GenerateRequest carries the brand inputs for one concept generation.
type GenerateRequest struct {
	CompanyName  string
	Description  string
	BusinessType string
	BrandStyle   string
	WebsiteURL   string
}

// Generator turns brand inputs into validated BrandConcepts via a single
// structured text-generation call.
type Generator struct {
	text   TextCapability
	model  string
	logger *slog.Logger
}

// NewGenerator creates a Generator using the given text capability and
// model identifier.
func NewGenerator(text TextCapability, model string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{text: text, model: model, logger: logger}
}

// Generate issues one request and parses the response into concepts,
// each assigned a fresh unique identifier.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) ([]BrandConcept, error) {
	text, err := g.text.GenerateText(ctx, TextRequest{
		Model:             g.model,
		Prompt:            buildPrompt(req),
		SystemInstruction: systemInstruction,
		ResponseSchema:    ResponseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("generating brand concepts: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	envelope, err := g.parse(text)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	concepts := make([]BrandConcept, len(envelope.Concepts))
	for i, payload := range envelope.Concepts {
		concepts[i] = payload.toConcept()
		concepts[i].ID = fmt.Sprintf("concept-%d-%d", now, i)
	}
	return concepts, nil
}

type parsedEnvelope struct {
	Concepts []parsedConcept `json:"concepts"`
}

type parsedConcept struct {
	Name           string        `json:"name"`
	Summary        string        `json:"summary"`
	LogoConcept    string        `json:"logoConcept"`
	Typography     string        `json:"typography"`
	ColorPalette   []Color       `json:"colorPalette"`
	MoodBoard      string        `json:"moodBoard"`
	BrandVoice     BrandVoice    `json:"brandVoice"`
	MissionVision  MissionVision `json:"missionVision"`
	Taglines       []string      `json:"taglines"`
	SocialStrategy string        `json:"socialStrategy"`
	Campaigns      []SocialPost  `json:"campaigns"`
}

func (p parsedConcept) toConcept() BrandConcept {
	return BrandConcept{
		Name:           p.Name,
		Summary:        p.Summary,
		LogoConcept:    p.LogoConcept,
		Typography:     p.Typography,
		ColorPalette:   p.ColorPalette,
		MoodBoard:      p.MoodBoard,
		BrandVoice:     p.BrandVoice,
		MissionVision:  p.MissionVision,
		Taglines:       p.Taglines,
		SocialStrategy: p.SocialStrategy,
		Campaigns:      p.Campaigns,
	}
}

// parse runs the two-stage repair pipeline. The second attempt starts
// over from the original text: the first pass can mangle responses where
// prose around the payload itself contains braces.
func (g *Generator) parse(text string) (*parsedEnvelope, error) {
	cleaned := jsonrepair.Clean(text)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		g.logger.Warn("concept response failed first parse", "error", err)
		salvaged, ok := jsonrepair.Salvage(text)
		if !ok {
			return nil, fmt.Errorf("%w: no JSON object found", ErrInvalidJSON)
		}
		if err := json.Unmarshal([]byte(salvaged), &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		cleaned = salvaged
	}

	if _, ok := raw["concepts"]; !ok {
		return nil, ErrMissingConcepts
	}

	var envelope parsedEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConcepts, err)
	}
	if envelope.Concepts == nil {
		return nil, ErrMissingConcepts
	}
	return &envelope, nil
}

func buildPrompt(req GenerateRequest) string {
	var b strings.Builder
	b.WriteString("Act as a world-class AI Brand Agency. Develop a comprehensive brand identity package for:\n\n")
	fmt.Fprintf(&b, "Company Name: %s\n", req.CompanyName)
	fmt.Fprintf(&b, "Business Type: %s\n", req.BusinessType)
	fmt.Fprintf(&b, "Desired Brand Style: %s\n", req.BrandStyle)
	fmt.Fprintf(&b, "Description: %s\n", req.Description)
	if req.WebsiteURL != "" {
		fmt.Fprintf(&b, "Website URL for context: %s\n", req.WebsiteURL)
	}
	b.WriteString("\nTask: Create exactly 1 DISTINCT and UNIQUE brand concept (direction) for this company.\n")
	b.WriteString("The concept should be a \"High-Quality/Premium\" choice.\n\n")
	b.WriteString("Ensure the concept has a unique logo, color palette, voice, and a 3-post social media launch campaign.")
	return b.String()
}
