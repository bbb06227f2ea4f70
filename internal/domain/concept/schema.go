package concept

import "github.com/invopop/jsonschema"

// The payload structs below mirror BrandConcept minus the id and asset
// fields: they describe what the model is asked to produce. The response
// schema is reflected from them so the two can't drift apart.

type conceptEnvelope struct {
	Concepts []conceptPayload `json:"concepts" jsonschema:"description=Exactly 1 distinct brand concept."`
}

type conceptPayload struct {
	Name           string          `json:"name" jsonschema:"description=Creative name for this specific brand direction"`
	Summary        string          `json:"summary" jsonschema:"description=One sentence summary of this strategic direction."`
	LogoConcept    string          `json:"logoConcept" jsonschema:"description=Detailed text description of the visual logo."`
	Typography     string          `json:"typography" jsonschema:"description=Specific font recommendations and hierarchy."`
	ColorPalette   []Color         `json:"colorPalette"`
	MoodBoard      string          `json:"moodBoard" jsonschema:"description=A descriptive list of visual themes and textures and feelings."`
	BrandVoice     BrandVoice      `json:"brandVoice"`
	MissionVision  MissionVision   `json:"missionVision"`
	Taglines       []string        `json:"taglines"`
	SocialStrategy string          `json:"socialStrategy" jsonschema:"description=Brief social media strategy for this direction."`
	Campaigns      []campaignEntry `json:"campaigns" jsonschema:"description=3 specific social media post ideas to launch this brand."`
}

type campaignEntry struct {
	Platform    string `json:"platform" jsonschema:"description=Social platform such as Instagram or LinkedIn or TikTok"`
	Caption     string `json:"caption" jsonschema:"description=The caption text for the post."`
	ImagePrompt string `json:"imagePrompt" jsonschema:"description=A detailed AI image prompt to generate the visual for this post."`
}

// ResponseSchema builds the strict output schema sent with every
// concept-generation request. Every field is required; sub-objects are
// inlined rather than referenced so any schema-aware consumer can read
// it standalone.
func ResponseSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	return reflector.Reflect(&conceptEnvelope{})
}
