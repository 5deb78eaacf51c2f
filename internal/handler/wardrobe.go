package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// GET /users/{userID}/wardrobe/analysis
func (h *Handler) GetWardrobeAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	analysis, err := h.service.GetWardrobeAnalysis(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found",
				fmt.Sprintf("User with ID %d does not exist", userID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, AnalysisResponse{
		UserID:   userID,
		Analysis: analysis,
		Metadata: newMeta(),
	})
}

type createGarmentRequest struct {
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Season    string    `json:"season"`
	Brand     string    `json:"brand"`
	Price     *float64  `json:"price"`
	ImageURL  string    `json:"image_url"`
	Colors    []string  `json:"colors"`
	Embedding []float64 `json:"embedding"`
}

// POST /users/{userID}/garments
func (h *Handler) AddGarment(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req createGarmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Category) == "" {
		writeError(w, http.StatusBadRequest, "invalid_body", "Garment name and category are required")
		return
	}
	if req.Price != nil && *req.Price < 0 {
		writeError(w, http.StatusBadRequest, "invalid_body", "Price must not be negative")
		return
	}

	id, err := h.service.AddGarment(r.Context(), domain.Garment{
		UserID:    userID,
		Name:      req.Name,
		Category:  req.Category,
		Season:    req.Season,
		Brand:     req.Brand,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
		Colors:    req.Colors,
		Embedding: req.Embedding,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found",
				fmt.Sprintf("User with ID %d does not exist", userID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, GarmentCreatedResponse{
		ID:       id,
		Metadata: newMeta(),
	})
}
