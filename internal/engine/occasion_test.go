package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

type stubEmbedder struct {
	vector []float64
	err    error
}

func (s *stubEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	return s.vector, s.err
}

func coherentOutfit(id int64, embedding []float64) domain.Outfit {
	return domain.Outfit{
		ID: id,
		Items: []domain.Garment{
			{ID: id*10 + 1, Category: "Tops", Embedding: embedding, Colors: []string{"#000000"}},
			{ID: id*10 + 2, Category: "Bottoms", Embedding: embedding, Colors: []string{"#FFFFFF"}},
		},
	}
}

func TestRankForOccasionEmptyText(t *testing.T) {
	m := NewMatcher(&stubEmbedder{vector: []float64{1, 0}}, NewScorer(DefaultConfig()), DefaultConfig())

	for _, query := range []domain.OccasionQuery{
		{},
		{Name: "   "},
		{Name: "", Notes: "  "},
	} {
		if got := m.RankForOccasion(context.Background(), query, []domain.Outfit{coherentOutfit(1, []float64{1, 0})}, 3); len(got) != 0 {
			t.Errorf("expected empty result for blank query %+v, got %d outfits", query, len(got))
		}
	}
}

func TestRankForOccasionNoEmbedder(t *testing.T) {
	m := NewMatcher(nil, NewScorer(DefaultConfig()), DefaultConfig())

	got := m.RankForOccasion(context.Background(), domain.OccasionQuery{Name: "dinner"}, []domain.Outfit{coherentOutfit(1, []float64{1, 0})}, 3)
	if len(got) != 0 {
		t.Errorf("expected empty result without an embedder, got %d outfits", len(got))
	}
}

func TestRankForOccasionEmbedderError(t *testing.T) {
	m := NewMatcher(&stubEmbedder{err: errors.New("provider down")}, NewScorer(DefaultConfig()), DefaultConfig())

	got := m.RankForOccasion(context.Background(), domain.OccasionQuery{Name: "dinner"}, []domain.Outfit{coherentOutfit(1, []float64{1, 0})}, 3)
	if len(got) != 0 {
		t.Errorf("expected empty result on embedder failure, got %d outfits", len(got))
	}
}

func TestRankForOccasionFiltersIncoherentOutfits(t *testing.T) {
	m := NewMatcher(&stubEmbedder{vector: []float64{1, 0}}, NewScorer(DefaultConfig()), DefaultConfig())

	// Opposite embeddings and clashing saturated colors: cohesion well
	// below the 0.4 floor.
	incoherent := domain.Outfit{
		ID: 42,
		Items: []domain.Garment{
			{ID: 1, Category: "Tops", Embedding: []float64{1, 0}, Colors: []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF"}},
			{ID: 2, Category: "Bottoms", Embedding: []float64{-1, 0}, Colors: []string{"#884400"}},
		},
	}

	got := m.RankForOccasion(context.Background(), domain.OccasionQuery{Name: "office meeting"},
		[]domain.Outfit{incoherent, coherentOutfit(7, []float64{1, 0})}, 5)

	for _, outfit := range got {
		if outfit.ID == 42 {
			t.Error("incoherent outfit should be filtered, not ranked")
		}
	}
	if len(got) != 1 {
		t.Errorf("expected exactly the coherent outfit, got %d", len(got))
	}
}

func TestRankForOccasionOrdering(t *testing.T) {
	// The occasion vector points along [1,0]; outfit 1 matches it,
	// outfit 2 is orthogonal.
	m := NewMatcher(&stubEmbedder{vector: []float64{1, 0}}, NewScorer(DefaultConfig()), DefaultConfig())

	aligned := coherentOutfit(1, []float64{1, 0})
	orthogonal := coherentOutfit(2, []float64{0, 1})

	got := m.RankForOccasion(context.Background(), domain.OccasionQuery{Name: "business dinner"},
		[]domain.Outfit{orthogonal, aligned}, 3)

	if len(got) != 2 {
		t.Fatalf("expected 2 outfits, got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("expected aligned outfit first, got outfit %d", got[0].ID)
	}
}

func TestRankForOccasionTopN(t *testing.T) {
	m := NewMatcher(&stubEmbedder{vector: []float64{1, 0}}, NewScorer(DefaultConfig()), DefaultConfig())

	outfits := []domain.Outfit{
		coherentOutfit(1, []float64{1, 0}),
		coherentOutfit(2, []float64{0.9, 0.1}),
		coherentOutfit(3, []float64{0.8, 0.2}),
		coherentOutfit(4, []float64{0.7, 0.3}),
	}

	got := m.RankForOccasion(context.Background(), domain.OccasionQuery{Name: "dinner"}, outfits, 2)
	if len(got) != 2 {
		t.Errorf("expected top 2, got %d", len(got))
	}
}
