package engine

import (
	"strings"
	"testing"
)

func TestSuitabilityFormalOutfit(t *testing.T) {
	got := DescribeOccasionSuitability("formal business", []string{"#000000"}, []string{"blazer", "tie"}, 0.6)

	if !strings.Contains(got, "formal") {
		t.Errorf("expected formal occasion named, got %q", got)
	}
	// style 1.0, dark color characteristic 0.2, two item matches 0.8:
	// 0.4 + 0.06 + 0.24 = 0.70
	if !strings.Contains(got, "70%") {
		t.Errorf("expected 70%% confidence, got %q", got)
	}
}

func TestSuitabilityNoMatches(t *testing.T) {
	got := DescribeOccasionSuitability("unclassifiable", nil, nil, 0.6)

	if !strings.Contains(got, "versatile") {
		t.Errorf("expected the generic versatile message, got %q", got)
	}
}

func TestSuitabilityMultipleMatches(t *testing.T) {
	// "elegant" hits formal, wedding and date styles; a dress and heels
	// hit the item lists of several occasions.
	got := DescribeOccasionSuitability("elegant classic", []string{"#000000"},
		[]string{"dress", "heels", "jewelry"}, 0.5)

	if !strings.Contains(got, "would work well for") {
		t.Errorf("expected the multi-occasion phrasing, got %q", got)
	}
	if !strings.Contains(got, " and ") {
		t.Errorf("expected joined occasion list, got %q", got)
	}
}

func TestSuitabilityThresholdFiltering(t *testing.T) {
	// With an impossible threshold nothing qualifies.
	got := DescribeOccasionSuitability("formal business", []string{"#000000"}, []string{"blazer", "tie"}, 1.1)
	if !strings.Contains(got, "versatile") {
		t.Errorf("expected generic message above threshold 1.1, got %q", got)
	}
}

func TestColorPredicates(t *testing.T) {
	if !isBrightColor("#FF2010") {
		t.Error("#FF2010 should be bright")
	}
	if isBrightColor("#101010") {
		t.Error("#101010 should not be bright")
	}
	if !isDarkColor("#000000") {
		t.Error("#000000 should be dark")
	}
	if isDarkColor("#FFFFFF") {
		t.Error("#FFFFFF should not be dark")
	}
	if !isPastelColor("#F0D8E0") {
		t.Error("#F0D8E0 should be pastel")
	}
	if isPastelColor("#FF0000") {
		t.Error("#FF0000 should not be pastel")
	}
	if !isMetallicColor("#C0C0C0") {
		t.Error("#C0C0C0 should read as metallic")
	}
	if isMetallicColor("not-a-color") {
		t.Error("invalid hex should not read as metallic")
	}
}
