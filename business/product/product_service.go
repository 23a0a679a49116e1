package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/business/scoring"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindWithFilters(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error

	CreateReview(ctx context.Context, review *domain.Review) error
	FindReviews(ctx context.Context, productID uint64) ([]domain.Review, error)
	UpdateRating(ctx context.Context, productID uint64, summary domain.RatingSummary) error
}

// SentimentClassifier labels review comments. The AI engine satisfies it.
type SentimentClassifier interface {
	ClassifySentiment(text string) (domain.SentimentResult, error)
}

type productService struct {
	productRepo ProductRepository
	sentiment   SentimentClassifier
}

func NewProductService(productRepo ProductRepository, sentiment SentimentClassifier) *productService {
	return &productService{
		productRepo: productRepo,
		sentiment:   sentiment,
	}
}

func (s *productService) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing products")
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	if filter.Category != "" && !validCategory(filter.Category) {
		logger.Error("invalid product category filter", filter.Category)
		return nil, 0, errors.New("invalid category")
	}

	filter.Normalize()

	products, total, err := s.productRepo.FindWithFilters(ctx, filter)
	if err != nil {
		logger.Error("failed to list products", err)
		return nil, 0, err
	}

	return products, total, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err.Error())
		return nil, errors.New("product not found")
	}

	return &product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.Name == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if !validCategory(product.Category) {
		logger.Error("Invalid product data: unknown category", product.Category)
		return nil, errors.New("invalid category")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if product.Stock < 0 {
		logger.Error("Invalid product data: stock cannot be negative")
		return nil, errors.New("stock cannot be negative")
	}

	if product.OriginalPrice == 0 {
		product.OriginalPrice = product.Price
	}
	product.IsActive = true

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully")

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		logger.Error("Invalid product data: ID is required")
		return nil, errors.New("product ID is required")
	}

	if product.Name == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if !validCategory(product.Category) {
		logger.Error("Invalid product data: unknown category", product.Category)
		return nil, errors.New("invalid category")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	// Verify product exists
	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("product not found", err)
		return nil, errors.New("product not found")
	}

	// rating state is owned by the review flow
	product.RatingAverage = existing.RatingAverage
	product.RatingCount = existing.RatingCount

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated success")

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("Invalid product id when deleting product")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify product exists
	_, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("product not found", err)
		return errors.New("product not found")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted success")

	return nil
}

// AddReview stores the review with its sentiment label, then recomputes the
// product's denormalized rating from the full review set.
func (s *productService) AddReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when adding review")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if review.ProductID == 0 {
		logger.Error("invalid product id on review")
		return nil, errors.New("invalid product id")
	}

	if review.Rating < 1 || review.Rating > 5 {
		logger.Error("Invalid review data: rating out of range")
		return nil, errors.New("rating must be between 1 and 5")
	}

	_, err := s.productRepo.FindByID(ctx, review.ProductID)
	if err != nil {
		logger.Error("product not found", err)
		return nil, errors.New("product not found")
	}

	review.Sentiment = domain.SentimentNeutral
	if review.Comment != "" {
		result, err := s.sentiment.ClassifySentiment(review.Comment)
		if err != nil {
			logger.Warn("sentiment classification failed, keeping neutral", err)
		} else {
			review.Sentiment = result.Sentiment
		}
	}

	if err := s.productRepo.CreateReview(ctx, review); err != nil {
		logger.Error("failed to create review", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	reviews, err := s.productRepo.FindReviews(ctx, review.ProductID)
	if err != nil {
		logger.Error("failed to load reviews for rating refresh", err)
		return nil, fmt.Errorf("failed to refresh rating: %w", err)
	}

	summary := scoring.RecomputeRating(reviews)
	if err := s.productRepo.UpdateRating(ctx, review.ProductID, summary); err != nil {
		logger.Error("failed to update product rating", err)
		return nil, fmt.Errorf("failed to refresh rating: %w", err)
	}

	logger.Info("review added successfully")

	return review, nil
}

func (s *productService) GetReviews(ctx context.Context, productID uint64) ([]domain.Review, error) {
	if productID == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing reviews")
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.productRepo.FindReviews(ctx, productID)
	if err != nil {
		logger.Error("failed to list reviews", err)
		return nil, err
	}

	return reviews, nil
}

// GetCategories returns the fixed category enumeration.
func (s *productService) GetCategories() []string {
	return domain.Categories()
}

func validCategory(category string) bool {
	for _, c := range domain.Categories() {
		if c == category {
			return true
		}
	}
	return false
}
