package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/closetcraft/wardrobe-service/internal/cache"
	"github.com/closetcraft/wardrobe-service/internal/domain"
	"github.com/closetcraft/wardrobe-service/internal/engine"
	"github.com/closetcraft/wardrobe-service/internal/repository"
	"github.com/closetcraft/wardrobe-service/internal/weather"
)

const (
	defaultMaxIdeas = 5
	maxMaxIdeas     = 10
	defaultTopN     = 3
	maxTopN         = 10
)

type Service struct {
	repo    *repository.Repository
	cache   *cache.Cache
	weather *weather.Client
	scorer  *engine.Scorer
	matcher *engine.Matcher
	engCfg  engine.Config
}

func NewService(repo *repository.Repository, c *cache.Cache, wx *weather.Client, embedder engine.TextEmbedder, engCfg engine.Config) *Service {
	scorer := engine.NewScorer(engCfg)
	return &Service{
		repo:    repo,
		cache:   c,
		weather: wx,
		scorer:  scorer,
		matcher: engine.NewMatcher(embedder, scorer, engCfg),
		engCfg:  engCfg,
	}
}

// SuggestionResult is what GetWardrobeSuggestions hands to the HTTP layer.
type SuggestionResult struct {
	Bundle   domain.RecommendationBundle
	Weather  *domain.WeatherSnapshot
	CacheHit bool
}

// GetWardrobeSuggestions assembles outfit ideas and acquisition advice
// for a user's wardrobe. Coordinates are optional; without them the
// suggestions ignore weather.
func (s *Service) GetWardrobeSuggestions(ctx context.Context, userID int64, maxIdeas int, lat, lon *float64) (*SuggestionResult, error) {
	if maxIdeas <= 0 {
		maxIdeas = defaultMaxIdeas
	} else if maxIdeas > maxMaxIdeas {
		maxIdeas = maxMaxIdeas
	}

	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	// Weather lookup fails soft: a nil snapshot just skips filtering.
	var wx *domain.WeatherSnapshot
	if lat != nil && lon != nil {
		wx = s.weather.Current(ctx, *lat, *lon)
	}
	weatherKey := cache.WeatherKey(wx)

	// Check cache
	cached, found, err := s.cache.Get(ctx, userID, maxIdeas, weatherKey)
	if err != nil {
		log.Printf("[service] cache get error for user %d: %v", userID, err)
	}
	if found {
		return &SuggestionResult{
			Bundle:   cached,
			Weather:  wx,
			CacheHit: true,
		}, nil
	}

	// Cache miss -> generate suggestions
	garments, err := s.repo.GetGarmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch garments: %w", err)
	}

	recommender := engine.NewRecommender(s.scorer, nil, s.engCfg)
	bundle := recommender.Suggest(garments, wx, maxIdeas)

	if cacheErr := s.cache.Set(ctx, userID, maxIdeas, weatherKey, bundle); cacheErr != nil {
		log.Printf("[service] cache set error for user %d: %v", userID, cacheErr)
	}

	return &SuggestionResult{
		Bundle:   bundle,
		Weather:  wx,
		CacheHit: false,
	}, nil
}

// RankOutfitsForOccasion returns the user's saved outfits ordered
// best-first for the described occasion. An empty result means nothing
// matched (or no embedder is configured), not an error.
func (s *Service) RankOutfitsForOccasion(ctx context.Context, userID int64, query domain.OccasionQuery, topN int) ([]domain.Outfit, error) {
	if topN <= 0 {
		topN = defaultTopN
	} else if topN > maxTopN {
		topN = maxTopN
	}

	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	outfits, err := s.repo.GetOutfitsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch outfits: %w", err)
	}

	return s.matcher.RankForOccasion(ctx, query, outfits, topN), nil
}

// GetOutfitCompatibility scores a single saved outfit.
func (s *Service) GetOutfitCompatibility(ctx context.Context, outfitID int64) (domain.CompatibilityResult, error) {
	outfit, err := s.repo.GetOutfitByID(ctx, outfitID)
	if err != nil {
		if errors.Is(err, domain.ErrOutfitNotFound) {
			return domain.CompatibilityResult{}, err
		}
		return domain.CompatibilityResult{}, fmt.Errorf("fetch outfit: %w", err)
	}

	return s.scorer.Score(outfit.Items), nil
}

// GetWardrobeAnalysis summarizes the composition of a user's wardrobe.
func (s *Service) GetWardrobeAnalysis(ctx context.Context, userID int64) (domain.WardrobeAnalysis, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.WardrobeAnalysis{}, err
		}
		return domain.WardrobeAnalysis{}, fmt.Errorf("fetch user: %w", err)
	}

	garments, err := s.repo.GetGarmentsByUser(ctx, userID)
	if err != nil {
		return domain.WardrobeAnalysis{}, fmt.Errorf("fetch garments: %w", err)
	}

	return engine.AnalyzeWardrobe(garments), nil
}

// Add a garment to a user's wardrobe and clear the user's cache
func (s *Service) AddGarment(ctx context.Context, g domain.Garment) (int64, error) {
	if _, err := s.repo.GetUserByID(ctx, g.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("fetch user: %w", err)
	}

	id, err := s.repo.CreateGarment(ctx, g)
	if err != nil {
		return 0, fmt.Errorf("create garment: %w", err)
	}
	if err := s.cache.ClearUserCache(ctx, g.UserID); err != nil {
		log.Printf("[service] cache invalidation error for user %d: %v", g.UserID, err)
	}
	return id, nil
}

// DescribeOccasionSuitability is a stateless pass-through to the rule
// engine; it exists so handlers never import engine directly.
func (s *Service) DescribeOccasionSuitability(style string, colors, items []string) string {
	return engine.DescribeOccasionSuitability(style, colors, items, s.engCfg.SuitabilityThreshold)
}
