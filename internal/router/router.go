package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/closetcraft/wardrobe-service/internal/handler"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Get("/users/{userID}/wardrobe/suggestions", h.GetWardrobeSuggestions)
	r.Get("/users/{userID}/wardrobe/analysis", h.GetWardrobeAnalysis)
	r.Post("/users/{userID}/garments", h.AddGarment)
	r.Post("/users/{userID}/occasions/outfits", h.RankOccasionOutfits)
	r.Get("/outfits/{outfitID}/compatibility", h.GetOutfitCompatibility)
	r.Post("/analysis/occasion-suitability", h.OccasionSuitability)
	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
