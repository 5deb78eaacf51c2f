package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// Category and season sets for the hard weather filter. Filtering
// narrows the pool with an OR predicate, it is not a soft boost.
var (
	coldCategories = map[string]bool{
		"Sweater": true, "Coat": true, "Jacket": true, "Outerwear": true,
		"Knitwear": true, "Hoodie": true, "Long-Sleeve": true,
	}
	coldSeasons = map[string]bool{"Winter": true, "Autumn": true}

	hotCategories = map[string]bool{
		"T-Shirt": true, "Shorts": true, "Tank Top": true, "Dress": true, "Skirt": true,
	}
	hotSeasons = map[string]bool{"Summer": true, "Spring": true}

	snowCategories = map[string]bool{
		"Winter Coat": true, "Insulated Jacket": true, "Boots": true, "Snow Pants": true,
	}
)

// outfitStructures are the category templates a trial outfit is
// assembled from.
var outfitStructures = [][]string{
	{"Tops", "Bottoms"},
	{"Tops", "Bottoms", "Shoes"},
	{"Tops", "Bottoms", "Outerwear"},
}

var essentialCategories = []string{"Tops", "Bottoms", "Shoes", "Outerwear"}

const maxAcquisitionSuggestions = 3

// Recommender generates new outfit ideas from owned garments and
// suggests acquisitions for wardrobe gaps.
type Recommender struct {
	scorer *Scorer
	rng    *rand.Rand
	cfg    Config
}

// NewRecommender builds a Recommender around the given random source.
// Tests pass a seeded source; a nil rng gets a time-seeded one.
func NewRecommender(scorer *Scorer, rng *rand.Rand, cfg Config) *Recommender {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Recommender{scorer: scorer, rng: rng, cfg: cfg}
}

// Suggest builds a recommendation bundle for the given wardrobe.
// A nil weather snapshot skips filtering entirely.
func (r *Recommender) Suggest(items []domain.Garment, weather *domain.WeatherSnapshot, maxIdeas int) domain.RecommendationBundle {
	if maxIdeas <= 0 {
		maxIdeas = 5
	}

	pool := filterByWeather(items, weather)

	var matchable []domain.Garment
	for _, item := range pool {
		if item.HasFeatures() {
			matchable = append(matchable, item)
		}
	}

	byCategory := make(map[string][]domain.Garment)
	for _, item := range matchable {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	var ideas []string
	seen := make(map[string]bool)

	if len(matchable) >= 2 {
		for attempt := 0; attempt < r.cfg.IdeaAttempts && len(ideas) < maxIdeas; attempt++ {
			structure := outfitStructures[r.rng.Intn(len(outfitStructures))]

			var picked []domain.Garment
			ok := true
			for _, cat := range structure {
				candidates := byCategory[cat]
				if len(candidates) == 0 {
					ok = false
					break
				}
				choice := candidates[r.rng.Intn(len(candidates))]
				if containsID(picked, choice.ID) {
					ok = false
					break
				}
				picked = append(picked, choice)
			}
			if !ok || len(picked) < 2 {
				continue
			}

			// Dedupe by the sorted name set so item order doesn't matter.
			names := make([]string, len(picked))
			for i, item := range picked {
				names[i] = item.Name
			}
			signature := signatureOf(names)
			if seen[signature] {
				continue
			}

			result := r.scorer.Score(picked)
			if result.Overall > r.cfg.IdeaThreshold {
				seen[signature] = true
				ideas = append(ideas, fmt.Sprintf(
					"Try combining: %s (Style: %.2f, Color: %.2f, Overall: %.2f)",
					strings.Join(names, ", "),
					result.StyleCohesion, result.ColorHarmony, result.Overall,
				))
			}
		}
	}

	if len(ideas) == 0 && len(matchable) > 0 {
		ideas = append(ideas, "Try experimenting with different combinations from your wardrobe! Use items from different categories like Tops, Bottoms, and Shoes.")
	}

	return domain.RecommendationBundle{
		NewOutfitIdeas: ideas,
		ItemsToAcquire: acquisitionSuggestions(pool),
	}
}

func filterByWeather(items []domain.Garment, weather *domain.WeatherSnapshot) []domain.Garment {
	if weather == nil {
		return items
	}

	pool := items
	switch {
	case weather.TemperatureCelsius < 10:
		pool = filterGarments(pool, coldCategories, coldSeasons)
	case weather.TemperatureCelsius > 25:
		pool = filterGarments(pool, hotCategories, hotSeasons)
	}

	if strings.Contains(strings.ToLower(weather.Condition), "snow") {
		pool = filterGarments(pool, snowCategories, nil)
	}

	return pool
}

func filterGarments(items []domain.Garment, categories, seasons map[string]bool) []domain.Garment {
	var out []domain.Garment
	for _, item := range items {
		if categories[item.Category] || (seasons != nil && seasons[item.Season]) {
			out = append(out, item)
		}
	}
	return out
}

func acquisitionSuggestions(items []domain.Garment) []string {
	owned := make(map[string]bool)
	for _, item := range items {
		if item.Category != "" {
			owned[item.Category] = true
		}
	}

	var suggestions []string
	for _, cat := range essentialCategories {
		if !owned[cat] {
			suggestions = append(suggestions, fmt.Sprintf(
				"Consider adding a versatile item to your '%s' collection (e.g., a neutral-colored %s).",
				cat, singular(cat),
			))
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your wardrobe essentials seem covered! Explore accessories to diversify your looks.")
	}
	if len(suggestions) > maxAcquisitionSuggestions {
		suggestions = suggestions[:maxAcquisitionSuggestions]
	}
	return suggestions
}

func singular(category string) string {
	lower := strings.ToLower(category)
	if strings.HasSuffix(lower, "s") {
		return lower[:len(lower)-1]
	}
	return lower
}

func containsID(items []domain.Garment, id int64) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func signatureOf(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}
