package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

type occasionRequest struct {
	Name  string `json:"name"`
	Notes string `json:"notes"`
	TopN  int    `json:"top_n"`
}

// POST /users/{userID}/occasions/outfits
func (h *Handler) RankOccasionOutfits(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req occasionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_body", "Occasion name is required")
		return
	}
	if req.TopN < 0 || req.TopN > 10 {
		writeError(w, http.StatusBadRequest, "invalid_body", "Invalid top_n value")
		return
	}

	query := domain.OccasionQuery{Name: req.Name, Notes: req.Notes}
	outfits, err := h.service.RankOutfitsForOccasion(r.Context(), userID, query, req.TopN)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found",
				fmt.Sprintf("User with ID %d does not exist", userID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	if outfits == nil {
		outfits = []domain.Outfit{}
	}
	writeJSON(w, http.StatusOK, OccasionOutfitsResponse{
		UserID:   userID,
		Occasion: query.Name,
		Outfits:  outfits,
		Metadata: newMeta(),
	})
}

type suitabilityRequest struct {
	Style  string   `json:"style"`
	Colors []string `json:"colors"`
	Items  []string `json:"items"`
}

// POST /analysis/occasion-suitability
func (h *Handler) OccasionSuitability(w http.ResponseWriter, r *http.Request) {
	var req suitabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Style) == "" {
		writeError(w, http.StatusBadRequest, "invalid_body", "Style description is required")
		return
	}

	writeJSON(w, http.StatusOK, SuitabilityResponse{
		Suitability: h.service.DescribeOccasionSuitability(req.Style, req.Colors, req.Items),
		Metadata:    newMeta(),
	})
}
