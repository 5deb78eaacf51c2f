package handler

import "github.com/closetcraft/wardrobe-service/internal/domain"

type SuggestionResponse struct {
	UserID         int64                   `json:"user_id"`
	NewOutfitIdeas []string                `json:"new_outfit_ideas"`
	ItemsToAcquire []string                `json:"items_to_acquire"`
	Weather        *domain.WeatherSnapshot `json:"weather,omitempty"`
	Metadata       domain.SuggestionMeta   `json:"metadata"`
}

type OccasionOutfitsResponse struct {
	UserID   int64               `json:"user_id"`
	Occasion string              `json:"occasion"`
	Outfits  []domain.Outfit     `json:"outfits"`
	Metadata domain.ResponseMeta `json:"metadata"`
}

type CompatibilityResponse struct {
	OutfitID int64                      `json:"outfit_id"`
	Result   domain.CompatibilityResult `json:"result"`
	Metadata domain.ResponseMeta        `json:"metadata"`
}

type AnalysisResponse struct {
	UserID   int64                   `json:"user_id"`
	Analysis domain.WardrobeAnalysis `json:"analysis"`
	Metadata domain.ResponseMeta     `json:"metadata"`
}

type GarmentCreatedResponse struct {
	ID       int64               `json:"id"`
	Metadata domain.ResponseMeta `json:"metadata"`
}

type SuitabilityResponse struct {
	Suitability string              `json:"suitability"`
	Metadata    domain.ResponseMeta `json:"metadata"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
