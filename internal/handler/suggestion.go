package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// GET /users/{userID}/wardrobe/suggestions
func (h *Handler) GetWardrobeSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	// Parse and validate max_ideas
	maxIdeas := 5
	if maxStr := r.URL.Query().Get("max_ideas"); maxStr != "" {
		parsed, err := strconv.Atoi(maxStr)
		if err != nil || parsed < 1 || parsed > 10 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid max_ideas parameter")
			return
		}
		maxIdeas = parsed
	}

	// Coordinates are optional but must come as a pair.
	lat, lon, ok := coordinates(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetWardrobeSuggestions(r.Context(), userID, maxIdeas, lat, lon)
	if err != nil {
		// User not found
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found",
				fmt.Sprintf("User with ID %d does not exist", userID))
			return
		}
		// Request timeout
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := SuggestionResponse{
		UserID:         userID,
		NewOutfitIdeas: result.Bundle.NewOutfitIdeas,
		ItemsToAcquire: result.Bundle.ItemsToAcquire,
		Weather:        result.Weather,
		Metadata: domain.SuggestionMeta{
			ResponseMeta: newMeta(),
			CacheHit:     result.CacheHit,
		},
	}

	writeJSON(w, http.StatusOK, resp)
}

// coordinates reads optional lat/lon query parameters. Both must be
// present and in range, or neither; ok is false after writing the 400.
func coordinates(w http.ResponseWriter, r *http.Request) (*float64, *float64, bool) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" && lonStr == "" {
		return nil, nil, true
	}
	if latStr == "" || lonStr == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "lat and lon must be provided together")
		return nil, nil, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid lat parameter")
		return nil, nil, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid lon parameter")
		return nil, nil, false
	}
	return &lat, &lon, true
}
