package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product categories are a fixed enumeration; the scoring engine's category
// table is keyed by these values and unknown categories fall back to neutral.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryBooks       = "books"
	CategoryHome        = "home"
	CategorySports      = "sports"
	CategoryBeauty      = "beauty"
	CategoryToys        = "toys"
	CategoryOther       = "other"
)

// Categories returns the fixed category enumeration in a stable order.
func Categories() []string {
	return []string{
		CategoryElectronics,
		CategoryClothing,
		CategoryBooks,
		CategoryHome,
		CategorySports,
		CategoryBeauty,
		CategoryToys,
		CategoryOther,
	}
}

type Product struct {
	ID            uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string                      `gorm:"column:name;type:text;not null" json:"name"`
	Description   string                      `gorm:"column:description;type:text" json:"description"`
	Price         float64                     `gorm:"column:price;type:numeric;not null" json:"price"`
	OriginalPrice float64                     `gorm:"column:original_price;type:numeric" json:"original_price"`
	Category      string                      `gorm:"column:category;type:text;not null" json:"category"`
	Brand         string                      `gorm:"column:brand;type:text" json:"brand"`
	Images        datatypes.JSONSlice[string] `gorm:"column:images;type:jsonb" json:"images"`
	Stock         int                         `gorm:"column:stock;default:0" json:"stock"`
	Tags          datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb" json:"tags"`
	RatingAverage float64                     `gorm:"column:rating_average;type:numeric;default:0" json:"rating_average"`
	RatingCount   int                         `gorm:"column:rating_count;default:0" json:"rating_count"`

	// AI-derived features, refreshed offline. DemandScore is optional: nil
	// means the feature has not been computed yet and pricing treats it as
	// neutral.
	RecommendedPrice *float64 `gorm:"column:recommended_price;type:numeric" json:"recommended_price,omitempty"`
	DemandScore      *float64 `gorm:"column:demand_score;type:numeric" json:"demand_score,omitempty"`
	TrendScore       *float64 `gorm:"column:trend_score;type:numeric" json:"trend_score,omitempty"`

	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// DiscountPercentage mirrors the storefront "you save X%" badge.
func (p Product) DiscountPercentage() int {
	if p.OriginalPrice > p.Price && p.OriginalPrice > 0 {
		return int((p.OriginalPrice - p.Price) / p.OriginalPrice * 100)
	}
	return 0
}

// ProductFilter narrows and pages the catalog listing. Zero values mean
// "no constraint"; Normalize fills paging defaults.
type ProductFilter struct {
	Category  string   `json:"category"`
	Search    string   `json:"search"`
	MinPrice  *float64 `json:"min_price"`
	MaxPrice  *float64 `json:"max_price"`
	SortBy    string   `json:"sort_by"`
	SortOrder string   `json:"sort_order"`
	Page      int      `json:"page"`
	Limit     int      `json:"limit"`
}

func (f *ProductFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 12
	}
	switch f.SortBy {
	case "price", "rating_average", "created_at", "name":
	default:
		f.SortBy = "created_at"
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
}

func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Review struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint64    `gorm:"column:product_id;not null;index" json:"product_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	Sentiment string    `gorm:"column:sentiment;default:neutral" json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// RatingSummary is the denormalized rating state stored on the product row.
// It is recomputed as a whole from the review set, never mutated in place.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
