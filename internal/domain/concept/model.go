package concept

import "strings"

// AssetRef is the stored reference for one generated asset. The encoding
// is shared with older stored data: an empty string means generation is
// in flight, the error sentinel marks a terminal failure, and anything
// else is an image data URI. Absence (a nil pointer or a missing map
// key) means the asset was never requested.
type AssetRef string

// RefFailed is the terminal-failure sentinel. A failed slot stays
// regenerable: re-requesting it transitions back to pending.
const RefFailed AssetRef = "error_failed"

// RefPending marks an in-flight generation.
const RefPending AssetRef = ""

// Pending reports whether generation is in flight.
func (r AssetRef) Pending() bool { return r == "" }

// Failed reports whether the slot ended in a terminal failure.
func (r AssetRef) Failed() bool { return strings.HasPrefix(string(r), "error") }

// Ready reports whether the ref holds a usable image payload.
func (r AssetRef) Ready() bool { return r != "" && !r.Failed() }

// AssetVersion is one historical result for a regenerable asset.
type AssetVersion struct {
	ID        string   `json:"id"`
	URL       AssetRef `json:"url"`
	Timestamp int64    `json:"timestamp"`
}

// MockupKey identifies one of the fixed mockup slots.
type MockupKey string

const (
	MockupWebsite     MockupKey = "website"
	MockupSignage     MockupKey = "signage"
	MockupMerchandise MockupKey = "merchandise"
	MockupStationery  MockupKey = "stationery"
	MockupMenu        MockupKey = "menu"
	MockupPackaging   MockupKey = "packaging"
	MockupSocial      MockupKey = "social"
	MockupUniform     MockupKey = "uniform"
	MockupInterior    MockupKey = "interior"
)

// Color is one palette entry.
type Color struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Usage string `json:"usage"`
}

// BrandVoice describes tone guidance for the concept.
type BrandVoice struct {
	Tone  string   `json:"tone"`
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// MissionVision holds the mission and vision statements.
type MissionVision struct {
	Mission string `json:"mission"`
	Vision  string `json:"vision"`
}

// SocialPost is one planned campaign post.
type SocialPost struct {
	Platform    string `json:"platform"`
	Caption     string `json:"caption"`
	ImagePrompt string `json:"imagePrompt"`
}

// BrandConcept is one strategic brand direction. The text fields arrive
// from a single structured text-generation call; the asset fields are
// populated asynchronously, each independently.
type BrandConcept struct {
	ID             string        `json:"id"`
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
	Campaigns      []SocialPost  `json:"campaigns,omitempty"`

	LogoURL     *AssetRef      `json:"logoUrl,omitempty"`
	LogoHistory []AssetVersion `json:"logoHistory,omitempty"`

	MoodBoardURL     *AssetRef      `json:"moodBoardUrl,omitempty"`
	MoodBoardHistory []AssetVersion `json:"moodBoardHistory,omitempty"`

	Mockups        map[MockupKey]AssetRef `json:"mockups,omitempty"`
	CampaignAssets map[int]AssetRef       `json:"campaignAssets,omitempty"`
}

// Ref returns a pointer to r, for building patches.
func Ref(r AssetRef) *AssetRef {
	return &r
}
