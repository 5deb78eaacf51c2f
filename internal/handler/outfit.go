package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// GET /outfits/{outfitID}/compatibility
func (h *Handler) GetOutfitCompatibility(w http.ResponseWriter, r *http.Request) {
	outfitID, ok := pathID(w, r, "outfitID")
	if !ok {
		return
	}

	result, err := h.service.GetOutfitCompatibility(r.Context(), outfitID)
	if err != nil {
		if errors.Is(err, domain.ErrOutfitNotFound) {
			writeError(w, http.StatusNotFound, "outfit_not_found",
				fmt.Sprintf("Outfit with ID %d does not exist", outfitID))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, CompatibilityResponse{
		OutfitID: outfitID,
		Result:   result,
		Metadata: newMeta(),
	})
}
