package domain

// HarmonyCategory classifies the hue relationship of a color set.
type HarmonyCategory string

const (
	HarmonyNeutral       HarmonyCategory = "neutral"
	HarmonyMonochromatic HarmonyCategory = "monochromatic"
	HarmonyAnalogous     HarmonyCategory = "analogous"
	HarmonyComplementary HarmonyCategory = "complementary"
	HarmonyTriadic       HarmonyCategory = "triadic"
	HarmonyRelated       HarmonyCategory = "related"
	HarmonyDiverse       HarmonyCategory = "diverse"
)

// CompatibilityResult is the outcome of scoring one set of garments.
// Scored is false when fewer than two items were supplied; all scores
// are zero in that case.
type CompatibilityResult struct {
	Overall       float64 `json:"score"`
	StyleCohesion float64 `json:"style_cohesion_score"`
	ColorHarmony  float64 `json:"color_harmony_score"`
	Scored        bool    `json:"scored"`
}

// OccasionQuery is the free-text occasion description a user asks to
// be dressed for. Not persisted.
type OccasionQuery struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

// Text joins name and notes for embedding; empty when there is
// nothing to match against.
func (q OccasionQuery) Text() string {
	if q.Notes == "" {
		return q.Name
	}
	return q.Name + " " + q.Notes
}

type RecommendationBundle struct {
	NewOutfitIdeas []string `json:"new_outfit_ideas"`
	ItemsToAcquire []string `json:"items_to_acquire"`
}

// ResponseMeta travels on every API response.
type ResponseMeta struct {
	RequestID   string `json:"request_id"`
	GeneratedAt string `json:"generated_at"`
}

// SuggestionMeta extends ResponseMeta for the suggestion endpoint,
// which is the only cached surface.
type SuggestionMeta struct {
	ResponseMeta
	CacheHit bool `json:"cache_hit"`
}

// WardrobeAnalysis summarizes a user's whole collection.
type WardrobeAnalysis struct {
	TotalItems             int            `json:"total_items"`
	CategoryBreakdown      map[string]int `json:"category_breakdown"`
	ColorDistribution      map[string]int `json:"color_distribution"`
	ColorTemperature       string         `json:"color_temperature"`
	AverageItemPrice       *float64       `json:"average_item_price,omitempty"`
	BrandDiversityScore    float64        `json:"brand_diversity_score"`
	WardrobeGaps           []string       `json:"wardrobe_gaps"`
	ImprovementSuggestions []string       `json:"improvement_suggestions"`
}
