package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/business/scoring"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/logger"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/metrics"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindActive(ctx context.Context, limit int) ([]domain.Product, error)
	FindActiveByCategories(ctx context.Context, categories []string, limit int) ([]domain.Product, error)
	SearchText(ctx context.Context, query string, limit int) ([]domain.Product, error)
	SearchFuzzy(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

// UserRepository contract interface
type UserRepository interface {
	GetProfile(ctx context.Context, userID uint) (*domain.UserProfile, error)
}

type aiService struct {
	productRepo ProductRepository
	userRepo    UserRepository
	engine      *scoring.Engine
	now         func() time.Time
}

func NewAIService(productRepo ProductRepository, userRepo UserRepository, engine *scoring.Engine) *aiService {
	return &aiService{
		productRepo: productRepo,
		userRepo:    userRepo,
		engine:      engine,
		now:         time.Now,
	}
}

// Recommend resolves the user's profile and a candidate set, then ranks the
// candidates. An unknown user is not an error: it degrades to the cold-start
// branch over the popular catalog.
func (s *aiService) Recommend(ctx context.Context, userID uint, limit int) (*domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when building recommendations")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 10
	}

	var profile *domain.UserProfile
	if userID != 0 {
		p, err := s.userRepo.GetProfile(ctx, userID)
		if err != nil {
			logger.Warn("failed to load user profile, falling back to popular items", err)
		} else {
			profile = p
		}
	}

	candidates, err := s.candidatesFor(ctx, profile, limit)
	if err != nil {
		logger.Error("failed to load recommendation candidates", err)
		metrics.ScoringRequestsTotal.WithLabelValues("recommend", "error").Inc()
		return nil, err
	}

	result := s.engine.Recommend(profile, candidates, limit)
	metrics.ScoringRequestsTotal.WithLabelValues("recommend", "success").Inc()
	return &result, nil
}

// candidatesFor narrows the candidate pool to the user's purchased categories
// when history exists; otherwise the whole active catalog competes.
func (s *aiService) candidatesFor(ctx context.Context, profile *domain.UserProfile, limit int) ([]domain.Product, error) {
	// over-fetch so the affinity filter still has enough to choose from
	fetch := limit * 5
	if fetch < 50 {
		fetch = 50
	}

	if profile != nil && len(profile.PurchaseEvents) > 0 {
		affinity := scoring.CategoryAffinity(profile.PurchaseEvents)
		categories := make([]string, 0, len(affinity))
		for category := range affinity {
			categories = append(categories, category)
		}
		if len(categories) > 0 {
			return s.productRepo.FindActiveByCategories(ctx, categories, fetch)
		}
	}

	return s.productRepo.FindActive(ctx, fetch)
}

func (s *aiService) PredictPrice(ctx context.Context, productID uint64, market *domain.MarketConditions) (*domain.PricePrediction, error) {
	if productID == 0 {
		logger.Error("invalid product id")
		return nil, ErrProductNotFound
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when predicting price")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("failed to find product for price prediction", err)
		metrics.ScoringRequestsTotal.WithLabelValues("predict_price", "error").Inc()
		return nil, ErrProductNotFound
	}

	prediction := s.engine.PredictPrice(product, market)
	metrics.ScoringRequestsTotal.WithLabelValues("predict_price", "success").Inc()
	return &prediction, nil
}

func (s *aiService) DynamicPricing(ctx context.Context, productID uint64, market *domain.MarketConditions) (*domain.DynamicPrice, error) {
	if productID == 0 {
		logger.Error("invalid product id")
		return nil, ErrProductNotFound
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when adjusting price")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("failed to find product for dynamic pricing", err)
		metrics.ScoringRequestsTotal.WithLabelValues("dynamic_pricing", "error").Inc()
		return nil, ErrProductNotFound
	}

	price := s.engine.AdjustPriceDynamically(product, market, s.now())
	metrics.ScoringRequestsTotal.WithLabelValues("dynamic_pricing", "success").Inc()
	return &price, nil
}

func (s *aiService) AnalyzeSentiment(text string) (*domain.SentimentResult, error) {
	result, err := s.engine.ClassifySentiment(text)
	if err != nil {
		metrics.ScoringRequestsTotal.WithLabelValues("sentiment", "error").Inc()
		return nil, err
	}

	metrics.SentimentLabelsTotal.WithLabelValues(result.Sentiment).Inc()
	metrics.ScoringRequestsTotal.WithLabelValues("sentiment", "success").Inc()
	return &result, nil
}

// Search runs text matching first and falls back to fuzzy matching when the
// exact pass finds nothing. With a known user the matches are re-ranked by
// preferred categories.
func (s *aiService) Search(ctx context.Context, query string, userID uint, limit int) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Error("empty search query")
		return nil, errors.New("search query is required")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when searching products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}

	matches, err := s.productRepo.SearchText(ctx, query, limit)
	if err != nil {
		logger.Error("text search failed", err)
		metrics.ScoringRequestsTotal.WithLabelValues("search", "error").Inc()
		return nil, err
	}

	if len(matches) == 0 {
		matches, err = s.productRepo.SearchFuzzy(ctx, query, limit)
		if err != nil {
			logger.Error("fuzzy search failed", err)
			metrics.ScoringRequestsTotal.WithLabelValues("search", "error").Inc()
			return nil, err
		}
	}

	var profile *domain.UserProfile
	if userID != 0 {
		p, err := s.userRepo.GetProfile(ctx, userID)
		if err != nil {
			logger.Warn("failed to load user profile for search ranking", err)
		} else {
			profile = p
		}
	}

	ranked := s.engine.RankSearchResults(matches, profile)
	metrics.ScoringRequestsTotal.WithLabelValues("search", "success").Inc()

	return &domain.SearchResult{
		Products:     ranked,
		Query:        query,
		Total:        len(ranked),
		Personalized: profile != nil && len(profile.PreferredCategories) > 0,
	}, nil
}
