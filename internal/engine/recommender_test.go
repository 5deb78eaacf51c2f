package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

func testRecommender() *Recommender {
	return NewRecommender(NewScorer(DefaultConfig()), rand.New(rand.NewSource(42)), DefaultConfig())
}

func garment(id int64, name, category, season string) domain.Garment {
	return domain.Garment{
		ID:        id,
		Name:      name,
		Category:  category,
		Season:    season,
		Embedding: []float64{1, 0.2, 0.1},
		Colors:    []string{"#1A1A1A", "#FFFFFF"},
	}
}

func TestSuggestGeneratesIdeas(t *testing.T) {
	items := []domain.Garment{
		garment(1, "White Tee", "Tops", "Summer"),
		garment(2, "Black Jeans", "Bottoms", ""),
		garment(3, "Canvas Sneakers", "Shoes", ""),
		garment(4, "Denim Jacket", "Outerwear", "Autumn"),
	}

	bundle := testRecommender().Suggest(items, nil, 3)

	if len(bundle.NewOutfitIdeas) == 0 {
		t.Fatal("expected at least one outfit idea")
	}
	if len(bundle.NewOutfitIdeas) > 3 {
		t.Errorf("expected at most 3 ideas, got %d", len(bundle.NewOutfitIdeas))
	}
	for _, idea := range bundle.NewOutfitIdeas {
		if !strings.Contains(idea, "Try combining:") {
			t.Errorf("unexpected idea format: %q", idea)
		}
	}

	// All essentials owned: the single generic acquisition fallback.
	if len(bundle.ItemsToAcquire) != 1 || !strings.Contains(bundle.ItemsToAcquire[0], "essentials seem covered") {
		t.Errorf("expected essentials-covered fallback, got %v", bundle.ItemsToAcquire)
	}
}

func TestSuggestNoDuplicateIdeas(t *testing.T) {
	items := []domain.Garment{
		garment(1, "White Tee", "Tops", ""),
		garment(2, "Black Jeans", "Bottoms", ""),
	}

	bundle := testRecommender().Suggest(items, nil, 5)

	seen := make(map[string]bool)
	for _, idea := range bundle.NewOutfitIdeas {
		if seen[idea] {
			t.Errorf("duplicate idea: %q", idea)
		}
		seen[idea] = true
	}
}

func TestSuggestTooFewMatchableItems(t *testing.T) {
	// One matchable item: no combinatorial generation, but the generic
	// fallback idea plus the gap suggestions.
	items := []domain.Garment{
		garment(1, "White Tee", "Tops", ""),
		{ID: 2, Name: "Mystery Item"}, // no category, colors or embedding
	}

	bundle := testRecommender().Suggest(items, nil, 5)

	if len(bundle.NewOutfitIdeas) != 1 {
		t.Fatalf("expected only the fallback idea, got %v", bundle.NewOutfitIdeas)
	}
	if strings.Contains(bundle.NewOutfitIdeas[0], "Try combining:") {
		t.Errorf("fallback should not be a generated combination: %q", bundle.NewOutfitIdeas[0])
	}

	if len(bundle.ItemsToAcquire) != 3 {
		t.Errorf("expected 3 capped gap suggestions, got %d", len(bundle.ItemsToAcquire))
	}
	for _, s := range bundle.ItemsToAcquire {
		if !strings.Contains(s, "Consider adding a versatile item") {
			t.Errorf("unexpected acquisition suggestion: %q", s)
		}
	}
}

func TestSuggestNoMatchableItems(t *testing.T) {
	bundle := testRecommender().Suggest(nil, nil, 5)

	if len(bundle.NewOutfitIdeas) != 0 {
		t.Errorf("expected no ideas for an empty wardrobe, got %v", bundle.NewOutfitIdeas)
	}
	if len(bundle.ItemsToAcquire) != 3 {
		t.Errorf("expected capped gap suggestions, got %v", bundle.ItemsToAcquire)
	}
}

func TestSuggestSnowRestrictsToWinterGear(t *testing.T) {
	items := []domain.Garment{
		garment(1, "White Tee", "T-Shirt", "Summer"),
		garment(2, "Parka", "Winter Coat", "Winter"),
		garment(3, "Snow Boots", "Boots", "Winter"),
		garment(4, "Ski Pants", "Snow Pants", "Winter"),
	}

	weather := &domain.WeatherSnapshot{TemperatureCelsius: 5, Condition: "Snow"}
	bundle := testRecommender().Suggest(items, weather, 5)

	for _, idea := range bundle.NewOutfitIdeas {
		if strings.Contains(idea, "White Tee") {
			t.Errorf("T-Shirt item leaked through the snow filter: %q", idea)
		}
	}
}

func TestSuggestColdWeatherFilter(t *testing.T) {
	items := []domain.Garment{
		garment(1, "Linen Shorts", "Shorts", "Summer"),
		garment(2, "Wool Sweater", "Sweater", "Winter"),
		garment(3, "Autumn Scarf", "Accessories", "Autumn"), // passes via season
	}

	weather := &domain.WeatherSnapshot{TemperatureCelsius: 4, Condition: "Clear"}
	bundle := testRecommender().Suggest(items, weather, 5)

	for _, idea := range bundle.NewOutfitIdeas {
		if strings.Contains(idea, "Linen Shorts") {
			t.Errorf("summer item leaked through the cold filter: %q", idea)
		}
	}
	// Sweater and scarf survive but form no Tops+Bottoms structure, so
	// the fallback idea is expected.
	if len(bundle.NewOutfitIdeas) != 1 || strings.Contains(bundle.NewOutfitIdeas[0], "Try combining:") {
		t.Errorf("expected the generic fallback idea, got %v", bundle.NewOutfitIdeas)
	}
}

func TestSuggestMissingWeatherSkipsFiltering(t *testing.T) {
	items := []domain.Garment{
		garment(1, "White Tee", "Tops", "Summer"),
		garment(2, "Black Jeans", "Bottoms", "Winter"),
	}

	bundle := testRecommender().Suggest(items, nil, 5)
	if len(bundle.NewOutfitIdeas) == 0 {
		t.Error("expected ideas when no weather snapshot is supplied")
	}
}
