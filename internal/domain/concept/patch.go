package concept

// Patch is a partial update to a BrandConcept's asset fields. Nil fields
// are left untouched. The Mockups and CampaignAssets mappings are merged
// key-by-key rather than replaced: the orchestrator writes one mockup or
// campaign result at a time, and a whole-map replace would clobber the
// siblings written by earlier iterations of the same loop.
type Patch struct {
	LogoURL          *AssetRef
	LogoHistory      []AssetVersion
	MoodBoardURL     *AssetRef
	MoodBoardHistory []AssetVersion
	Mockups          map[MockupKey]AssetRef
	CampaignAssets   map[int]AssetRef
}

// Apply merges p into c.
func (c *BrandConcept) Apply(p Patch) {
	if p.LogoURL != nil {
		c.LogoURL = p.LogoURL
	}
	if p.LogoHistory != nil {
		c.LogoHistory = p.LogoHistory
	}
	if p.MoodBoardURL != nil {
		c.MoodBoardURL = p.MoodBoardURL
	}
	if p.MoodBoardHistory != nil {
		c.MoodBoardHistory = p.MoodBoardHistory
	}
	if p.Mockups != nil {
		if c.Mockups == nil {
			c.Mockups = make(map[MockupKey]AssetRef, len(p.Mockups))
		}
		for key, ref := range p.Mockups {
			c.Mockups[key] = ref
		}
	}
	if p.CampaignAssets != nil {
		if c.CampaignAssets == nil {
			c.CampaignAssets = make(map[int]AssetRef, len(p.CampaignAssets))
		}
		for idx, ref := range p.CampaignAssets {
			c.CampaignAssets[idx] = ref
		}
	}
}

// Clone returns a deep copy of c. Stores hand out clones so callers can't
// mutate shared state behind the store's back.
func (c *BrandConcept) Clone() *BrandConcept {
	clone := *c
	clone.ColorPalette = append([]Color(nil), c.ColorPalette...)
	clone.Taglines = append([]string(nil), c.Taglines...)
	clone.Campaigns = append([]SocialPost(nil), c.Campaigns...)
	clone.LogoHistory = append([]AssetVersion(nil), c.LogoHistory...)
	clone.MoodBoardHistory = append([]AssetVersion(nil), c.MoodBoardHistory...)
	clone.BrandVoice.Dos = append([]string(nil), c.BrandVoice.Dos...)
	clone.BrandVoice.Donts = append([]string(nil), c.BrandVoice.Donts...)
	if c.LogoURL != nil {
		ref := *c.LogoURL
		clone.LogoURL = &ref
	}
	if c.MoodBoardURL != nil {
		ref := *c.MoodBoardURL
		clone.MoodBoardURL = &ref
	}
	if c.Mockups != nil {
		clone.Mockups = make(map[MockupKey]AssetRef, len(c.Mockups))
		for key, ref := range c.Mockups {
			clone.Mockups[key] = ref
		}
	}
	if c.CampaignAssets != nil {
		clone.CampaignAssets = make(map[int]AssetRef, len(c.CampaignAssets))
		for idx, ref := range c.CampaignAssets {
			clone.CampaignAssets[idx] = ref
		}
	}
	return &clone
}
