package engine

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

// TextEmbedder turns free text into a vector in the same embedding
// space as the garment embeddings. Implementations live outside the
// engine so tests can inject doubles.
type TextEmbedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// Matcher ranks a user's existing outfits against a described occasion.
type Matcher struct {
	embedder TextEmbedder
	scorer   *Scorer
	cfg      Config
}

// NewMatcher builds a Matcher. A nil embedder is allowed; ranking then
// degrades to an empty result instead of failing the request.
func NewMatcher(embedder TextEmbedder, scorer *Scorer, cfg Config) *Matcher {
	return &Matcher{embedder: embedder, scorer: scorer, cfg: cfg}
}

type rankedOutfit struct {
	outfit      domain.Outfit
	score       float64
	coherence   float64
	occasionSim float64
}

// RankForOccasion returns the user's outfits ordered best-first for the
// occasion, at most topN. Outfits whose internal coherence falls below
// MinCoherence are dropped outright, not just demoted.
func (m *Matcher) RankForOccasion(ctx context.Context, query domain.OccasionQuery, outfits []domain.Outfit, topN int) []domain.Outfit {
	text := strings.TrimSpace(query.Text())
	if text == "" {
		return nil
	}
	if topN <= 0 {
		topN = 3
	}

	if m.embedder == nil {
		log.Println("[engine] no text embedder configured, skipping occasion matching")
		return nil
	}
	occasionEmbedding, err := m.embedder.EmbedText(ctx, text)
	if err != nil {
		log.Printf("[engine] embedding occasion text: %v", err)
		return nil
	}

	var ranked []rankedOutfit
	for _, outfit := range outfits {
		if len(outfit.Items) == 0 {
			continue
		}

		coherence := m.scorer.Score(outfit.Items)
		if !coherence.Scored || coherence.Overall < m.cfg.MinCoherence {
			continue
		}

		outfitEmbedding := outfit.MeanEmbedding()
		if outfitEmbedding == nil {
			continue
		}

		sim := rescaleSimilarity(cosineSimilarity(occasionEmbedding, outfitEmbedding))
		final := m.cfg.OccasionWeight*sim + m.cfg.CoherenceWeight*coherence.Overall

		ranked = append(ranked, rankedOutfit{
			outfit:      outfit,
			score:       final,
			coherence:   coherence.Overall,
			occasionSim: sim,
		})
	}

	// Tie-break on coherence so the more internally consistent outfit wins.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].coherence > ranked[j].coherence
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	result := make([]domain.Outfit, len(ranked))
	for i, r := range ranked {
		result[i] = r.outfit
	}
	return result
}
