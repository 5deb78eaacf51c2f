package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// occasionProfile holds the static associations used by the rule-based
// suitability analysis.
type occasionProfile struct {
	name     string
	keywords []string
	styles   []string
	colors   []string
	items    []string
}

// The table order is the tie-break order when scores are equal.
var occasionProfiles = []occasionProfile{
	{
		name:     "formal",
		keywords: []string{"formal", "business", "professional", "office", "meeting", "interview", "conference"},
		styles:   []string{"classic", "professional", "minimalist", "elegant"},
		colors:   []string{"black", "navy", "gray", "white", "dark"},
		items:    []string{"blazer", "suit", "dress shirt", "tie", "formal shoes", "dress", "heels"},
	},
	{
		name:     "casual",
		keywords: []string{"casual", "everyday", "relaxed", "comfortable", "weekend", "home"},
		styles:   []string{"casual", "cozy", "comfortable", "relaxed"},
		colors:   []string{"any"},
		items:    []string{"jeans", "t-shirt", "sneakers", "hoodie", "cardigan", "casual dress"},
	},
	{
		name:     "party",
		keywords: []string{"party", "celebration", "night out", "club", "dancing", "festive"},
		styles:   []string{"bold", "statement", "glamorous", "edgy", "vibrant"},
		colors:   []string{"bright", "metallic", "bold", "red", "gold", "silver"},
		items:    []string{"dress", "heels", "jewelry", "clutch", "statement piece"},
	},
	{
		name:     "wedding",
		keywords: []string{"wedding", "ceremony", "reception", "bridal", "guest"},
		styles:   []string{"elegant", "classic", "sophisticated", "formal"},
		colors:   []string{"pastels", "navy", "burgundy", "emerald", "avoid white"},
		items:    []string{"dress", "suit", "heels", "formal shoes", "elegant accessories"},
	},
	{
		name:     "church",
		keywords: []string{"church", "religious", "service", "worship", "conservative"},
		styles:   []string{"modest", "conservative", "classic", "respectful"},
		colors:   []string{"modest", "not too bright", "conservative"},
		items:    []string{"modest dress", "blouse", "skirt", "conservative top", "closed shoes"},
	},
	{
		name:     "outdoor",
		keywords: []string{"outdoor", "hiking", "camping", "sports", "active", "exercise"},
		styles:   []string{"sporty", "functional", "comfortable", "practical"},
		colors:   []string{"any", "earth tones", "bright for visibility"},
		items:    []string{"athletic wear", "sneakers", "jacket", "comfortable pants"},
	},
	{
		name:     "date",
		keywords: []string{"date", "romantic", "dinner", "restaurant", "romantic evening"},
		styles:   []string{"romantic", "elegant", "attractive", "stylish"},
		colors:   []string{"romantic", "flattering", "red", "soft colors"},
		items:    []string{"dress", "nice top", "heels", "jewelry", "attractive outfit"},
	},
}

const (
	suitabilityStyleWeight = 0.4
	suitabilityColorWeight = 0.3
	suitabilityItemWeight  = 0.3
)

// DescribeOccasionSuitability produces a human-readable sentence naming
// the occasions a detected outfit suits, given its style, dominant hex
// colors and identified item names.
func DescribeOccasionSuitability(style string, colors []string, items []string, threshold float64) string {
	type scoredOccasion struct {
		name  string
		score float64
	}

	styleLower := strings.ToLower(style)
	var matched []scoredOccasion

	for _, profile := range occasionProfiles {
		// Both the occasion's keyword list and its style list count as
		// style associations.
		styleScore := 0.0
		for _, s := range append(profile.keywords, profile.styles...) {
			if strings.Contains(styleLower, s) {
				styleScore = 1.0
				break
			}
		}

		final := suitabilityStyleWeight*styleScore +
			suitabilityColorWeight*colorScore(profile, colors) +
			suitabilityItemWeight*itemScore(profile, items)

		if final >= threshold {
			matched = append(matched, scoredOccasion{name: profile.name, score: final})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].score > matched[j].score })

	switch len(matched) {
	case 0:
		return "This outfit has a versatile style that could work for various casual occasions."
	case 1:
		return fmt.Sprintf("This outfit is well-suited for %s occasions (confidence: %.0f%%).",
			matched[0].name, matched[0].score*100)
	default:
		if len(matched) > 3 {
			matched = matched[:3]
		}
		names := make([]string, len(matched))
		for i, m := range matched {
			names[i] = m.name
		}
		return fmt.Sprintf("This outfit would work well for %s and %s occasions.",
			strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}
}

func colorScore(profile occasionProfile, colors []string) float64 {
	for _, pref := range profile.colors {
		if pref == "any" {
			return 0.7
		}
	}

	score := 0.0
	for _, color := range colors {
		colorLower := strings.ToLower(color)
		for _, pref := range profile.colors {
			if strings.Contains(colorLower, pref) || strings.Contains(pref, colorLower) {
				score += 0.3
			}
		}

		// One characteristic bonus per color, checked in fixed order.
		switch {
		case hasPalette(profile, "bright") && isBrightColor(color):
			score += 0.2
		case hasPalette(profile, "dark") && isDarkColor(color):
			score += 0.2
		case hasPalette(profile, "pastels") && isPastelColor(color):
			score += 0.2
		case hasPalette(profile, "metallic") && isMetallicColor(color):
			score += 0.2
		}
	}
	return math.Min(1.0, score)
}

func itemScore(profile occasionProfile, items []string) float64 {
	if len(items) == 0 {
		return 0
	}
	score := 0.0
	for _, item := range items {
		itemLower := strings.ToLower(item)
		for _, pref := range profile.items {
			if strings.Contains(itemLower, pref) || sharesWord(itemLower, pref) {
				score += 0.4
				break
			}
		}
	}
	return math.Min(1.0, score)
}

func hasPalette(profile occasionProfile, keyword string) bool {
	for _, c := range profile.colors {
		if c == keyword {
			return true
		}
	}
	return false
}

func sharesWord(item, preferred string) bool {
	for _, word := range strings.Fields(preferred) {
		if strings.Contains(item, word) {
			return true
		}
	}
	return false
}

func parseHexStrict(hex string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

func isBrightColor(hex string) bool {
	r, g, b, ok := parseHexStrict(hex)
	if !ok {
		return false
	}
	mean := float64(r+g+b) / 3
	spread := maxInt(r, g, b) - minInt(r, g, b)
	return mean > 150 && spread > 100
}

func isDarkColor(hex string) bool {
	r, g, b, ok := parseHexStrict(hex)
	if !ok {
		return false
	}
	return float64(r+g+b)/3 < 100
}

func isPastelColor(hex string) bool {
	r, g, b, ok := parseHexStrict(hex)
	if !ok {
		return false
	}
	mean := float64(r+g+b) / 3
	spread := maxInt(r, g, b) - minInt(r, g, b)
	return mean > 180 && spread < 80
}

// Reference hexes for silver, gold, bronze and copper.
var metallicReferences = []string{"#c0c0c0", "#ffd700", "#b87333", "#cd7f32"}

func isMetallicColor(hex string) bool {
	r, _, _, ok := parseHexStrict(hex)
	if !ok {
		return false
	}
	for _, ref := range metallicReferences {
		refR, _, _, _ := parseHexStrict(ref)
		if absInt(r-refR) < 50 {
			return true
		}
	}
	return false
}

func maxInt(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func minInt(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
