package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// Minimum desired count per essential category for gap detection.
var essentialMinimums = []struct {
	category string
	minCount int
}{
	{"Tops", 5},
	{"Bottoms", 4},
	{"Outerwear", 2},
	{"Shoes", 3},
	{"Formal Wear", 1},
	{"Casual Dress", 2},
	{"Accessories", 5},
}

// AnalyzeWardrobe computes summary statistics and gap suggestions for a
// whole collection.
func AnalyzeWardrobe(items []domain.Garment) domain.WardrobeAnalysis {
	analysis := domain.WardrobeAnalysis{
		TotalItems:        len(items),
		CategoryBreakdown: make(map[string]int),
		ColorDistribution: make(map[string]int),
	}

	var priceSum float64
	var pricedItems int
	brands := make(map[string]bool)
	var allColors []string

	for _, item := range items {
		analysis.CategoryBreakdown[item.Category]++
		for _, color := range item.Colors {
			analysis.ColorDistribution[color]++
			allColors = append(allColors, color)
		}
		if item.Price != nil {
			priceSum += *item.Price
			pricedItems++
		}
		if item.Brand != "" {
			brands[strings.ToLower(item.Brand)] = true
		}
	}

	analysis.ColorTemperature = ColorTemperature(allColors)

	if pricedItems > 0 {
		avg := priceSum / float64(pricedItems)
		analysis.AverageItemPrice = &avg
	}

	if len(items) > 0 {
		analysis.BrandDiversityScore = math.Round(float64(len(brands))/float64(len(items))*100) / 100
	}

	for _, essential := range essentialMinimums {
		owned := analysis.CategoryBreakdown[essential.category]
		if owned < essential.minCount {
			analysis.WardrobeGaps = append(analysis.WardrobeGaps, fmt.Sprintf(
				"Consider adding more '%s'. You have %d, ideally %d+.",
				essential.category, owned, essential.minCount,
			))
		}
	}
	if len(items) == 0 && len(analysis.WardrobeGaps) == 0 {
		analysis.WardrobeGaps = append(analysis.WardrobeGaps, "Your wardrobe is empty! Start by adding some essential items.")
	}

	analysis.ImprovementSuggestions = []string{
		"Explore items in your preferred colors but new categories to diversify your options.",
		"Consider items that can bridge your primary and secondary styles if you have defined them.",
		"Regularly review items you haven't worn in a while.",
	}
	if analysis.AverageItemPrice != nil && *analysis.AverageItemPrice > 200 {
		analysis.ImprovementSuggestions = append(analysis.ImprovementSuggestions,
			"You have some high-value items. Ensure they are versatile.")
	}
	if analysis.BrandDiversityScore < 0.3 && len(items) > 10 {
		analysis.ImprovementSuggestions = append(analysis.ImprovementSuggestions,
			"Consider exploring new brands to diversify your style sources.")
	}

	return analysis
}
