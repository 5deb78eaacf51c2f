package engine

import (
	"math"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// Scorer rates how well a set of garments work together, combining
// pairwise embedding similarity with color harmony.
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes the compatibility of two or more garments. Fewer than
// two items yields a zero result with Scored=false rather than an error.
func (s *Scorer) Score(items []domain.Garment) domain.CompatibilityResult {
	if len(items) < 2 {
		return domain.CompatibilityResult{}
	}

	var embeddings [][]float64
	for _, item := range items {
		if len(item.Embedding) > 0 {
			embeddings = append(embeddings, item.Embedding)
		}
	}

	// Style cohesion: average pairwise cosine similarity, rescaled to
	// [0,1]. Without two embeddings we fall back to a neutral 0.5.
	styleCohesion := 0.5
	if len(embeddings) >= 2 {
		var sum float64
		var pairs int
		for i := 0; i < len(embeddings); i++ {
			for j := i + 1; j < len(embeddings); j++ {
				sum += cosineSimilarity(embeddings[i], embeddings[j])
				pairs++
			}
		}
		styleCohesion = rescaleSimilarity(sum / float64(pairs))
	}

	// Color harmony over the union of dominant colors. Duplicates are
	// collapsed so owning several items of the same color isn't penalized.
	var allColors []string
	for _, item := range items {
		allColors = append(allColors, item.Colors...)
	}
	colorHarmony := HarmonyScore(uniqueColors(allColors))

	overall := clamp01(s.cfg.StyleWeight*styleCohesion + s.cfg.ColorWeight*colorHarmony)

	return domain.CompatibilityResult{
		Overall:       round3(overall),
		StyleCohesion: round3(styleCohesion),
		ColorHarmony:  round3(colorHarmony),
		Scored:        true,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
