package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/business/ai"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/business/scoring"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/logger"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/metrics"
)

type AIService interface {
	Recommend(ctx context.Context, userID uint, limit int) (*domain.RecommendationResult, error)
	PredictPrice(ctx context.Context, productID uint64, market *domain.MarketConditions) (*domain.PricePrediction, error)
	DynamicPricing(ctx context.Context, productID uint64, market *domain.MarketConditions) (*domain.DynamicPrice, error)
	AnalyzeSentiment(text string) (*domain.SentimentResult, error)
	Search(ctx context.Context, query string, userID uint, limit int) (*domain.SearchResult, error)
}

type AIHandler struct {
	aiService AIService
	validator *validator.Validate
	timeout   time.Duration
}

func NewAIHandler(aiService AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
		validator: validator.New(),
		timeout:   10 * time.Second,
	}
}

type PricePredictionRequest struct {
	ProductID uint64                   `json:"product_id" validate:"required"`
	Market    *domain.MarketConditions `json:"market,omitempty"`
}

type SentimentRequest struct {
	Text string `json:"text" validate:"required"`
}

func observe(operation string) *prometheus.Timer {
	return prometheus.NewTimer(metrics.ScoringLatency.WithLabelValues(operation))
}

// GetRecommendations serves GET /ai/recommendations/:userId?limit=n
func (h *AIHandler) GetRecommendations(c echo.Context) error {
	defer observe("recommend").ObserveDuration()

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.aiService.Recommend(ctx, uint(userID), limit)
	if err != nil {
		logger.Error("Failed to build recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// PredictPrice serves POST /ai/price-prediction
func (h *AIHandler) PredictPrice(c echo.Context) error {
	defer observe("predict_price").ObserveDuration()

	var req PricePredictionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate price prediction request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	prediction, err := h.aiService.PredictPrice(ctx, req.ProductID, req.Market)
	if err != nil {
		if errors.Is(err, ai.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to predict price", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(prediction))
}

// DynamicPricing serves POST /ai/dynamic-pricing
func (h *AIHandler) DynamicPricing(c echo.Context) error {
	defer observe("dynamic_pricing").ObserveDuration()

	var req PricePredictionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate dynamic pricing request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	price, err := h.aiService.DynamicPricing(ctx, req.ProductID, req.Market)
	if err != nil {
		if errors.Is(err, ai.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to compute dynamic price", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(price))
}

// AnalyzeSentiment serves POST /ai/sentiment-analysis
func (h *AIHandler) AnalyzeSentiment(c echo.Context) error {
	defer observe("sentiment").ObserveDuration()

	var req SentimentRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	result, err := h.aiService.AnalyzeSentiment(req.Text)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to analyze sentiment", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// Search serves GET /ai/search?q=...&userId=...&limit=n
func (h *AIHandler) Search(c echo.Context) error {
	defer observe("search").ObserveDuration()

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "query parameter q is required"})
	}

	var userID uint64
	if raw := c.QueryParam("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
		}
		userID = parsed
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.aiService.Search(ctx, query, uint(userID), limit)
	if err != nil {
		logger.Error("Failed to search products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
