package domain

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FullName   string `gorm:"column:full_name;not null" json:"full_name"`
	Email      string `gorm:"column:email;unique;not null" json:"email"`
	IsVerified bool   `gorm:"column:is_verified;default:false" json:"is_verified"`
	Password   string `gorm:"column:password;not null" json:"-"`
	Role       string `gorm:"column:role;default:customer" json:"role"`

	// Stated preferences used by personalized search and, together with
	// recorded interactions, by the recommendation policy.
	PreferredCategories datatypes.JSONSlice[string] `gorm:"column:preferred_categories;type:jsonb" json:"preferred_categories"`
	PriceRangeMin       *float64                    `gorm:"column:price_range_min;type:numeric" json:"price_range_min,omitempty"`
	PriceRangeMax       *float64                    `gorm:"column:price_range_max;type:numeric" json:"price_range_max,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Interaction event types recorded against a user's AI profile.
const (
	InteractionPurchase = "purchase"
	InteractionBrowse   = "browse"
)

// UserInteraction is one purchase or browse event. The product category is
// denormalized onto the row so the affinity aggregation never needs a join.
type UserInteraction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID       uint64    `gorm:"column:product_id;not null" json:"product_id"`
	ProductCategory string    `gorm:"column:product_category;not null" json:"product_category"`
	EventType       string    `gorm:"column:event_type;not null" json:"event_type"`
	DurationSeconds int       `gorm:"column:duration_seconds;default:0" json:"duration_seconds"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserInteraction) TableName() string {
	return "user_interactions"
}
