package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Order statuses. Transitions are simple bookkeeping: any forward move is
// allowed, cancellation only while pending.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods and statuses.
const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
	PaymentMethodApple  = "apple"
	PaymentMethodBank   = "bank"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// OrderItem snapshots the product at purchase time so later catalog edits do
// not rewrite order history.
type OrderItem struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint64  `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint64  `gorm:"column:product_id;not null" json:"product_id"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
	Price     float64 `gorm:"column:price;type:numeric;not null" json:"price"`
	Name      string  `gorm:"column:name;type:text" json:"name"`
	Image     string  `gorm:"column:image;type:text" json:"image"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type ShippingAddress struct {
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
	Email     string `gorm:"column:email" json:"email"`
	Phone     string `gorm:"column:phone" json:"phone"`
	Address   string `gorm:"column:address" json:"address"`
	City      string `gorm:"column:city" json:"city"`
	State     string `gorm:"column:state" json:"state"`
	ZipCode   string `gorm:"column:zip_code" json:"zip_code"`
	Country   string `gorm:"column:country" json:"country"`
}

type PaymentInfo struct {
	Method        string `gorm:"column:method" json:"method"`
	Status        string `gorm:"column:status;default:pending" json:"status"`
	TransactionID string `gorm:"column:transaction_id" json:"transaction_id,omitempty"`
	CardLast4     string `gorm:"column:card_last4" json:"card_last4,omitempty"`
	CardBrand     string `gorm:"column:card_brand" json:"card_brand,omitempty"`
}

type OrderPricing struct {
	Subtotal float64 `gorm:"column:subtotal;type:numeric" json:"subtotal"`
	Tax      float64 `gorm:"column:tax;type:numeric" json:"tax"`
	Shipping float64 `gorm:"column:shipping;type:numeric" json:"shipping"`
	Total    float64 `gorm:"column:total;type:numeric" json:"total"`
}

type TrackingInfo struct {
	Number            string     `gorm:"column:number" json:"number,omitempty"`
	Carrier           string     `gorm:"column:carrier" json:"carrier,omitempty"`
	EstimatedDelivery *time.Time `gorm:"column:estimated_delivery" json:"estimated_delivery,omitempty"`
	ShippedDate       *time.Time `gorm:"column:shipped_date" json:"shipped_date,omitempty"`
	DeliveredDate     *time.Time `gorm:"column:delivered_date" json:"delivered_date,omitempty"`
}

type Order struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string          `gorm:"column:order_number;unique;not null" json:"order_number"`
	UserID      uint            `gorm:"column:user_id;index" json:"user_id"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	Shipping    ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping"`
	Payment     PaymentInfo     `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Pricing     OrderPricing    `gorm:"embedded;embeddedPrefix:pricing_" json:"pricing"`
	Status      string          `gorm:"column:status;default:pending" json:"status"`
	Tracking    TrackingInfo    `gorm:"embedded;embeddedPrefix:tracking_" json:"tracking"`
	Notes       string          `gorm:"column:notes;type:text" json:"notes,omitempty"`

	// Serving-time recommendation context kept for later analysis.
	AIInsights datatypes.JSONMap `gorm:"column:ai_insights;type:jsonb" json:"ai_insights,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderFilter pages and narrows order listings.
type OrderFilter struct {
	Status    string `json:"status"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
}

func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}
	switch f.SortBy {
	case "created_at", "status", "pricing_total":
	default:
		f.SortBy = "created_at"
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
}

func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// OrderStats is the admin dashboard summary.
type OrderStats struct {
	TotalOrders    int64            `json:"total_orders"`
	TotalRevenue   float64          `json:"total_revenue"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	RecentOrders   []Order          `json:"recent_orders"`
}
