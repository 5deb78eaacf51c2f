package engine

import (
	"testing"

	"github.com/closetcraft/wardrobe-service/internal/domain"
)

func TestScoreNotEnoughItems(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	for _, items := range [][]domain.Garment{
		nil,
		{{ID: 1, Embedding: []float64{1, 0}, Colors: []string{"#FF0000"}}},
	} {
		result := scorer.Score(items)
		if result.Scored {
			t.Errorf("expected Scored=false for %d items", len(items))
		}
		if result.Overall != 0 || result.StyleCohesion != 0 || result.ColorHarmony != 0 {
			t.Errorf("expected zero scores, got %+v", result)
		}
	}
}

func TestScoreIdenticalItems(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	items := []domain.Garment{
		{ID: 1, Embedding: []float64{1, 0}, Colors: []string{"#FF0000"}},
		{ID: 2, Embedding: []float64{1, 0}, Colors: []string{"#FF0000"}},
	}

	result := scorer.Score(items)
	if !result.Scored {
		t.Fatal("expected Scored=true")
	}
	if result.StyleCohesion != 1.0 {
		t.Errorf("expected style cohesion 1.0, got %f", result.StyleCohesion)
	}
	if result.ColorHarmony != 1.0 {
		t.Errorf("expected color harmony 1.0 for a single color, got %f", result.ColorHarmony)
	}
	if result.Overall != 1.0 {
		t.Errorf("expected overall 1.0, got %f", result.Overall)
	}
}

func TestScoreOppositeEmbeddings(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	items := []domain.Garment{
		{ID: 1, Embedding: []float64{1, 0}, Colors: []string{"#FF0000"}},
		{ID: 2, Embedding: []float64{-1, 0}, Colors: []string{"#FF0000"}},
	}

	result := scorer.Score(items)
	if result.StyleCohesion != 0.0 {
		t.Errorf("expected style cohesion 0.0 for opposite vectors, got %f", result.StyleCohesion)
	}
}

func TestScoreMissingEmbeddingsFallsBackToNeutral(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	items := []domain.Garment{
		{ID: 1, Colors: []string{"#FF0000"}},
		{ID: 2, Colors: []string{"#FF0000"}},
	}

	result := scorer.Score(items)
	if result.StyleCohesion != 0.5 {
		t.Errorf("expected neutral 0.5 cohesion without embeddings, got %f", result.StyleCohesion)
	}
	if !result.Scored {
		t.Error("missing embeddings should still produce a scored result")
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer(DefaultConfig())

	items := []domain.Garment{
		{ID: 1, Embedding: []float64{0.3, -0.8, 0.1}, Colors: []string{"#112233", "#FFEE00"}},
		{ID: 2, Embedding: []float64{-0.5, 0.2, 0.9}, Colors: []string{"#AA00FF"}},
		{ID: 3, Embedding: []float64{0.7, 0.7, -0.3}, Colors: []string{"#00FF88", "#FF0000"}},
	}

	result := scorer.Score(items)
	if result.Overall < 0 || result.Overall > 1 {
		t.Errorf("overall %f out of [0,1]", result.Overall)
	}
	if result.StyleCohesion < 0 || result.StyleCohesion > 1 {
		t.Errorf("style cohesion %f out of [0,1]", result.StyleCohesion)
	}
	if result.ColorHarmony < 0 || result.ColorHarmony > 1 {
		t.Errorf("color harmony %f out of [0,1]", result.ColorHarmony)
	}
}
