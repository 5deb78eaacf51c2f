package engine

import (
	"testing"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

func TestHarmonyScoreTrivialPalettes(t *testing.T) {
	cases := [][]string{
		nil,
		{},
		{"#FF0000"},
		{"#FF0000", "#FF0000", "#FF0000"}, // duplicates collapse to one
	}
	for _, colors := range cases {
		if got := HarmonyScore(colors); got != 1.0 {
			t.Errorf("HarmonyScore(%v) = %f, want 1.0", colors, got)
		}
	}
}

func TestInvalidHexDegradesToGray(t *testing.T) {
	// Must not panic, and gray is neutral.
	cases := []string{"", "#12", "zzzzzz", "#GGGGGG", "#1234567"}
	for _, hex := range cases {
		c := hexToRGB(hex)
		if c.r != 128 || c.g != 128 || c.b != 128 {
			t.Errorf("hexToRGB(%q) = %v, want gray", hex, c)
		}
	}

	category := ClassifyHarmony([]string{"not-a-color", "#zzzzzz", "?"})
	if category != domain.HarmonyNeutral {
		t.Errorf("expected neutral for invalid colors, got %s", category)
	}
}

func TestClassifyHarmonyCategories(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		want   domain.HarmonyCategory
	}{
		{"single color", []string{"#FF0000"}, domain.HarmonyMonochromatic},
		{"grays and whites", []string{"#FFFFFF", "#808080", "#1A1A1A"}, domain.HarmonyNeutral},
		{"close reds", []string{"#FF0000", "#FF4000"}, domain.HarmonyAnalogous},
		{"red and cyan", []string{"#FF0000", "#00FFFF"}, domain.HarmonyComplementary},
		{"red green blue", []string{"#FF0000", "#00FF00", "#0000FF"}, domain.HarmonyTriadic},
	}

	for _, tt := range tests {
		if got := ClassifyHarmony(tt.colors); got != tt.want {
			t.Errorf("%s: ClassifyHarmony(%v) = %s, want %s", tt.name, tt.colors, got, tt.want)
		}
	}
}

func TestBlackAndWhitePalette(t *testing.T) {
	colors := []string{"#000000", "#FFFFFF"}

	if got := ClassifyHarmony(colors); got != domain.HarmonyNeutral {
		t.Errorf("ClassifyHarmony = %s, want neutral", got)
	}

	// Base 0.95, x0.8 for the extreme brightness range, x1.1 for the
	// classic two-color neutral combination.
	score := HarmonyScore(colors)
	if score < 0.8 || score > 0.9 {
		t.Errorf("HarmonyScore = %f, want ~0.836", score)
	}
}

func TestHarmonyScoreManyColorsPenalty(t *testing.T) {
	few := HarmonyScore([]string{"#FF0000", "#FF2000", "#FF4000"})
	many := HarmonyScore([]string{"#FF0000", "#FF2000", "#FF4000", "#FF6000", "#FF8000", "#FFA000"})
	if many >= few {
		t.Errorf("expected >5 colors to score lower: few=%f many=%f", few, many)
	}
}

func TestHarmonyScoreBounds(t *testing.T) {
	palettes := [][]string{
		{"#000000", "#FFFFFF", "#FF0000", "#00FF00", "#0000FF", "#FFFF00"},
		{"#123456", "#654321"},
		{"bad", "also bad", "#FF0000"},
	}
	for _, colors := range palettes {
		score := HarmonyScore(colors)
		if score < 0 || score > 1 {
			t.Errorf("HarmonyScore(%v) = %f out of [0,1]", colors, score)
		}
	}
}

func TestColorTemperature(t *testing.T) {
	tests := []struct {
		colors []string
		want   string
	}{
		{[]string{"#FF2010", "#FF8030"}, "warm"},
		{[]string{"#1020FF", "#3040E0"}, "cool"},
		{[]string{"#808080"}, "neutral"},
		{nil, "neutral"},
	}
	for _, tt := range tests {
		if got := ColorTemperature(tt.colors); got != tt.want {
			t.Errorf("ColorTemperature(%v) = %s, want %s", tt.colors, got, tt.want)
		}
	}
}
