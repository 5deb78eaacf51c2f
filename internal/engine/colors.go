package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// Base score per harmony category. Neutral palettes are the safest,
// many unrelated hues clash.
var harmonyBaseScores = map[domain.HarmonyCategory]float64{
	domain.HarmonyNeutral:       0.95,
	domain.HarmonyMonochromatic: 0.90,
	domain.HarmonyAnalogous:     0.85,
	domain.HarmonyComplementary: 0.75,
	domain.HarmonyTriadic:       0.70,
	domain.HarmonyRelated:       0.65,
	domain.HarmonyDiverse:       0.45,
}

type rgb struct {
	r, g, b int
}

// hexToRGB parses a "#RRGGBB" string. Anything malformed degrades to
// mid gray instead of failing.
func hexToRGB(hex string) rgb {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return rgb{128, 128, 128}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{128, 128, 128}
	}
	return rgb{
		r: int(v >> 16 & 0xFF),
		g: int(v >> 8 & 0xFF),
		b: int(v & 0xFF),
	}
}

// rgbToHSV returns hue in degrees [0,360), saturation and value in [0,1].
func rgbToHSV(c rgb) (h, s, v float64) {
	r := float64(c.r) / 255.0
	g := float64(c.g) / 255.0
	b := float64(c.b) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	diff := maxVal - minVal

	switch {
	case diff == 0:
		h = 0
	case maxVal == r:
		h = math.Mod(60*((g-b)/diff)+360, 360)
	case maxVal == g:
		h = math.Mod(60*((b-r)/diff)+120, 360)
	default:
		h = math.Mod(60*((r-g)/diff)+240, 360)
	}

	if maxVal > 0 {
		s = diff / maxVal
	}
	v = maxVal
	return h, s, v
}

// isNeutral reports low-saturation colors (grays, whites, blacks).
func isNeutral(c rgb) bool {
	_, s, _ := rgbToHSV(c)
	return s < 0.2
}

func brightness(c rgb) float64 {
	return float64(c.r+c.g+c.b) / 3.0
}

// uniqueColors collapses duplicates, keeping first-seen order.
func uniqueColors(colors []string) []string {
	seen := make(map[string]struct{}, len(colors))
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// ClassifyHarmony determines the hue relationship of a color set.
func ClassifyHarmony(colors []string) domain.HarmonyCategory {
	colors = uniqueColors(colors)
	if len(colors) < 2 {
		return domain.HarmonyMonochromatic
	}

	var hues []float64
	neutralCount := 0
	for _, hex := range colors {
		c := hexToRGB(hex)
		if isNeutral(c) {
			neutralCount++
			continue
		}
		h, _, _ := rgbToHSV(c)
		hues = append(hues, h)
	}

	// Mostly grays and off-whites reads as a neutral palette.
	if float64(neutralCount) >= float64(len(colors))*0.7 {
		return domain.HarmonyNeutral
	}
	if len(hues) < 2 {
		return domain.HarmonyNeutral
	}

	var diffs []float64
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			d := math.Abs(hues[i] - hues[j])
			diffs = append(diffs, math.Min(d, 360-d))
		}
	}

	maxDiff := 0.0
	sum := 0.0
	hasComplementary := false
	hasTriadic := false
	for _, d := range diffs {
		if d > maxDiff {
			maxDiff = d
		}
		sum += d
		if d >= 150 && d <= 210 {
			hasComplementary = true
		} else if d >= 90 && d < 150 {
			hasTriadic = true
		}
	}
	avgDiff := sum / float64(len(diffs))

	switch {
	case maxDiff < 30:
		return domain.HarmonyAnalogous
	case hasComplementary:
		return domain.HarmonyComplementary
	case hasTriadic:
		return domain.HarmonyTriadic
	case avgDiff > 60:
		return domain.HarmonyDiverse
	default:
		return domain.HarmonyRelated
	}
}

// HarmonyScore rates how well a set of colors sit together, 0 to 1.
func HarmonyScore(colors []string) float64 {
	unique := uniqueColors(colors)
	if len(unique) <= 1 {
		return 1.0 // nothing to clash with
	}

	category := ClassifyHarmony(unique)
	score, ok := harmonyBaseScores[category]
	if !ok {
		score = 0.6
	}

	rgbs := make([]rgb, len(unique))
	for i, hex := range unique {
		rgbs[i] = hexToRGB(hex)
	}

	// Extreme brightness contrast is jarring, near-zero contrast is flat.
	minB, maxB := brightness(rgbs[0]), brightness(rgbs[0])
	for _, c := range rgbs[1:] {
		b := brightness(c)
		minB = math.Min(minB, b)
		maxB = math.Max(maxB, b)
	}
	switch {
	case maxB-minB > 200:
		score *= 0.8
	case maxB-minB < 50:
		score *= 0.9
	}

	// Uneven saturation levels pull an outfit apart.
	sats := make([]float64, len(rgbs))
	for i, c := range rgbs {
		_, s, _ := rgbToHSV(c)
		sats[i] = s
	}
	if variance(sats) > 0.3 {
		score *= 0.85
	}

	// Classic two- and three-color combinations get a bonus.
	switch len(unique) {
	case 2:
		if category == domain.HarmonyNeutral || category == domain.HarmonyAnalogous {
			score *= 1.1
		}
	case 3:
		if category == domain.HarmonyNeutral || category == domain.HarmonyAnalogous || category == domain.HarmonyTriadic {
			score *= 1.05
		}
	}

	if len(unique) > 5 {
		score *= 0.7
	}

	return clamp01(score)
}

// ColorTemperature classifies a palette as warm, cool or neutral.
func ColorTemperature(colors []string) string {
	warm, cool := 0, 0
	for _, hex := range colors {
		s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
		if len(s) != 6 {
			continue
		}
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			continue
		}
		r := int(v >> 16 & 0xFF)
		g := int(v >> 8 & 0xFF)
		b := int(v & 0xFF)

		if r > b && (r > 150 || (r > g && g > 100)) {
			warm++ // reds, oranges, yellows
		} else if b > r && (b > 150 || (b > g && g < 150)) {
			cool++ // blues, purples
		}
	}
	switch {
	case warm > cool:
		return "warm"
	case cool > warm:
		return "cool"
	default:
		return "neutral"
	}
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	v := 0.0
	for _, x := range xs {
		v += (x - mean) * (x - mean)
	}
	return v / float64(len(xs))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
