package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

type fakeProductRepo struct {
	products map[uint64]domain.Product
	reviews  map[uint64][]domain.Review
	ratings  map[uint64]domain.RatingSummary
	nextID   uint64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[uint64]domain.Product{},
		reviews:  map[uint64][]domain.Review{},
		ratings:  map[uint64]domain.RatingSummary{},
		nextID:   1,
	}
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeProductRepo) FindWithFilters(_ context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	var out []domain.Product
	for _, p := range f.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint64) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) CreateReview(_ context.Context, review *domain.Review) error {
	review.ID = uint64(len(f.reviews[review.ProductID]) + 1)
	f.reviews[review.ProductID] = append(f.reviews[review.ProductID], *review)
	return nil
}

func (f *fakeProductRepo) FindReviews(_ context.Context, productID uint64) ([]domain.Review, error) {
	return f.reviews[productID], nil
}

func (f *fakeProductRepo) UpdateRating(_ context.Context, productID uint64, summary domain.RatingSummary) error {
	f.ratings[productID] = summary
	return nil
}

type fakeClassifier struct {
	result domain.SentimentResult
	err    error
}

func (f *fakeClassifier) ClassifySentiment(string) (domain.SentimentResult, error) {
	return f.result, f.err
}

func validProduct() *domain.Product {
	return &domain.Product{
		Name:     "Wireless Mouse",
		Category: domain.CategoryElectronics,
		Price:    29.99,
		Stock:    10,
	}
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeClassifier{})

	created, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, 29.99, created.OriginalPrice)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), &fakeClassifier{})

	cases := []struct {
		name   string
		mutate func(*domain.Product)
	}{
		{"missing name", func(p *domain.Product) { p.Name = "" }},
		{"unknown category", func(p *domain.Product) { p.Category = "gadgets" }},
		{"zero price", func(p *domain.Product) { p.Price = 0 }},
		{"negative stock", func(p *domain.Product) { p.Stock = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(p)
			_, err := svc.CreateProduct(context.Background(), p)
			assert.Error(t, err)
		})
	}
}

func TestGetProductsRejectsUnknownCategoryFilter(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), &fakeClassifier{})

	_, _, err := svc.GetProducts(context.Background(), domain.ProductFilter{Category: "gadgets"})
	assert.Error(t, err)
}

func TestUpdateProductKeepsRatingState(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeClassifier{})

	created, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)

	stored := repo.products[created.ID]
	stored.RatingAverage = 4.2
	stored.RatingCount = 12
	repo.products[created.ID] = stored

	update := validProduct()
	update.ID = created.ID
	update.Price = 24.99
	update.RatingAverage = 1.0 // must be ignored

	updated, err := svc.UpdateProduct(context.Background(), update)
	require.NoError(t, err)

	assert.Equal(t, 24.99, updated.Price)
	assert.Equal(t, 4.2, updated.RatingAverage)
	assert.Equal(t, 12, updated.RatingCount)
}

func TestAddReviewRefreshesRating(t *testing.T) {
	repo := newFakeProductRepo()
	classifier := &fakeClassifier{result: domain.SentimentResult{Sentiment: domain.SentimentPositive}}
	svc := NewProductService(repo, classifier)

	created, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)

	_, err = svc.AddReview(context.Background(), &domain.Review{
		ProductID: created.ID, UserID: 1, Rating: 5, Comment: "love it",
	})
	require.NoError(t, err)

	review, err := svc.AddReview(context.Background(), &domain.Review{
		ProductID: created.ID, UserID: 2, Rating: 4, Comment: "pretty good",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SentimentPositive, review.Sentiment)
	assert.Equal(t, domain.RatingSummary{Average: 4.5, Count: 2}, repo.ratings[created.ID])
}

func TestAddReviewWithoutCommentStaysNeutral(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeClassifier{result: domain.SentimentResult{Sentiment: domain.SentimentPositive}})

	created, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)

	review, err := svc.AddReview(context.Background(), &domain.Review{
		ProductID: created.ID, UserID: 1, Rating: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SentimentNeutral, review.Sentiment)
}

func TestAddReviewRatingOutOfRange(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, &fakeClassifier{})

	created, err := svc.CreateProduct(context.Background(), validProduct())
	require.NoError(t, err)

	_, err = svc.AddReview(context.Background(), &domain.Review{ProductID: created.ID, Rating: 6})
	assert.Error(t, err)

	_, err = svc.AddReview(context.Background(), &domain.Review{ProductID: created.ID, Rating: 0})
	assert.Error(t, err)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), &fakeClassifier{})

	err := svc.DeleteProduct(context.Background(), 42)
	assert.Error(t, err)
}

func TestGetCategories(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), &fakeClassifier{})

	categories := svc.GetCategories()
	assert.Contains(t, categories, domain.CategoryElectronics)
	assert.Len(t, categories, 8)
}
