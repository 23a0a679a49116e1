package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
	"github.com/talha-dycoders/Intelligent-ecommerce-app/pkg/logger"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint64) (domain.Order, error)
	FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error)
	FindByUser(ctx context.Context, userID uint, filter domain.OrderFilter) ([]domain.Order, int64, error)
	Update(ctx context.Context, order *domain.Order) error
	Count(ctx context.Context) (int64, error)
	RevenueByStatuses(ctx context.Context, statuses []string) (float64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Order, error)
}

// ProductReader resolves product snapshots for order items.
type ProductReader interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type ordersService struct {
	orderRepo   OrdersRepository
	productRepo ProductReader
	now         func() time.Time
}

func NewOrdersService(orderRepo OrdersRepository, productRepo ProductReader) *ordersService {
	return &ordersService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

const estimatedDeliveryWindow = 3 * 24 * time.Hour

var validStatuses = map[string]bool{
	domain.OrderStatusPending:    true,
	domain.OrderStatusConfirmed:  true,
	domain.OrderStatusProcessing: true,
	domain.OrderStatusShipped:    true,
	domain.OrderStatusDelivered:  true,
	domain.OrderStatusCancelled:  true,
}

// CreateOrder snapshots each product into the order items, numbers the order
// and stores it with a pending status. The user ID is optional: guest
// checkout keeps it at zero.
func (s *ordersService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating order")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(order.Items) == 0 {
		logger.Error("Invalid order data: no items")
		return nil, errors.New("order must contain at least one item")
	}

	if order.Payment.Method == "" {
		logger.Error("Invalid order data: payment method is required")
		return nil, errors.New("payment method is required")
	}

	subtotal := 0.0
	for i := range order.Items {
		item := &order.Items[i]
		if item.Quantity <= 0 {
			logger.Error("Invalid order data: item quantity must be positive")
			return nil, errors.New("item quantity must be positive")
		}

		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			logger.Error("product not found for order item", err)
			return nil, errors.New("product not found")
		}

		if product.Stock < item.Quantity {
			logger.Error("insufficient stock for order item", product.Name)
			return nil, errors.New("insufficient stock")
		}

		item.Price = product.Price
		item.Name = product.Name
		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}

		subtotal += product.Price * float64(item.Quantity)
	}

	order.Pricing.Subtotal = subtotal
	order.Pricing.Total = subtotal + order.Pricing.Tax + order.Pricing.Shipping
	order.Status = domain.OrderStatusPending
	order.Payment.Status = domain.PaymentStatusPending
	order.OrderNumber = s.nextOrderNumber(ctx)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		logger.Error("failed to create order", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logger.Info("order created", "order_number", order.OrderNumber)

	return order, nil
}

func (s *ordersService) nextOrderNumber(ctx context.Context) string {
	count, err := s.orderRepo.Count(ctx)
	if err != nil {
		logger.Warn("failed to count orders for numbering", err)
		count = 0
	}
	return fmt.Sprintf("ORD-%d-%04d", s.now().UnixMilli(), count+1)
}

func (s *ordersService) GetOrderByID(ctx context.Context, id uint64) (*domain.Order, error) {
	if id == 0 {
		logger.Error("invalid order id")
		return nil, errors.New("invalid order id")
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("order not found", err)
		return nil, errors.New("order not found")
	}

	return &order, nil
}

func (s *ordersService) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing orders")
		return nil, 0, fmt.Errorf("context error: %w", err)
	}

	if filter.Status != "" && !validStatuses[filter.Status] {
		logger.Error("invalid order status filter", filter.Status)
		return nil, 0, errors.New("invalid order status")
	}

	filter.Normalize()

	return s.orderRepo.FindAll(ctx, filter)
}

func (s *ordersService) GetOrdersByUser(ctx context.Context, userID uint, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	if userID == 0 {
		logger.Error("invalid user id")
		return nil, 0, errors.New("invalid user id")
	}

	if filter.Status != "" && !validStatuses[filter.Status] {
		logger.Error("invalid order status filter", filter.Status)
		return nil, 0, errors.New("invalid order status")
	}

	filter.Normalize()

	return s.orderRepo.FindByUser(ctx, userID, filter)
}

// UpdateStatus moves the order to a new status and stamps tracking dates on
// shipped and delivered transitions. Tracking details, when both number and
// carrier are present, set the estimated delivery three days out.
func (s *ordersService) UpdateStatus(ctx context.Context, id uint64, status string, tracking *domain.TrackingInfo) (*domain.Order, error) {
	if !validStatuses[status] {
		logger.Error("invalid order status", status)
		return nil, errors.New("invalid order status")
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("order not found", err)
		return nil, errors.New("order not found")
	}

	order.Status = status
	now := s.now()
	switch status {
	case domain.OrderStatusShipped:
		order.Tracking.ShippedDate = &now
	case domain.OrderStatusDelivered:
		order.Tracking.DeliveredDate = &now
	}

	if tracking != nil && tracking.Number != "" && tracking.Carrier != "" {
		estimated := now.Add(estimatedDeliveryWindow)
		order.Tracking.Number = tracking.Number
		order.Tracking.Carrier = tracking.Carrier
		order.Tracking.EstimatedDelivery = &estimated
	}

	if err := s.orderRepo.Update(ctx, &order); err != nil {
		logger.Error("failed to update order status", err)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &order, nil
}

// UpdatePayment patches the payment block. Empty detail fields are left
// untouched.
func (s *ordersService) UpdatePayment(ctx context.Context, id uint64, payment domain.PaymentInfo) (*domain.Order, error) {
	switch payment.Status {
	case domain.PaymentStatusPending, domain.PaymentStatusCompleted, domain.PaymentStatusFailed, domain.PaymentStatusRefunded:
	default:
		logger.Error("invalid payment status", payment.Status)
		return nil, errors.New("invalid payment status")
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("order not found", err)
		return nil, errors.New("order not found")
	}

	order.Payment.Status = payment.Status
	if payment.TransactionID != "" {
		order.Payment.TransactionID = payment.TransactionID
	}
	if payment.CardLast4 != "" {
		order.Payment.CardLast4 = payment.CardLast4
	}
	if payment.CardBrand != "" {
		order.Payment.CardBrand = payment.CardBrand
	}

	if err := s.orderRepo.Update(ctx, &order); err != nil {
		logger.Error("failed to update order payment", err)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &order, nil
}

// CancelOrder cancels a pending order. Anything past pending is already in
// fulfillment and must go through support.
func (s *ordersService) CancelOrder(ctx context.Context, id uint64) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("order not found", err)
		return errors.New("order not found")
	}

	if order.Status != domain.OrderStatusPending {
		logger.Error("attempted to cancel non-pending order", order.Status)
		return errors.New("only pending orders can be cancelled")
	}

	order.Status = domain.OrderStatusCancelled
	if err := s.orderRepo.Update(ctx, &order); err != nil {
		logger.Error("failed to cancel order", err)
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	logger.Info("order cancelled", "order_number", order.OrderNumber)

	return nil
}

// GetStats builds the admin dashboard summary. Revenue counts shipped and
// delivered orders only.
func (s *ordersService) GetStats(ctx context.Context) (*domain.OrderStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when building order stats")
		return nil, fmt.Errorf("context error: %w", err)
	}

	total, err := s.orderRepo.Count(ctx)
	if err != nil {
		logger.Error("failed to count orders", err)
		return nil, err
	}

	revenue, err := s.orderRepo.RevenueByStatuses(ctx, []string{domain.OrderStatusDelivered, domain.OrderStatusShipped})
	if err != nil {
		logger.Error("failed to sum revenue", err)
		return nil, err
	}

	byStatus, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		logger.Error("failed to count orders by status", err)
		return nil, err
	}

	recent, err := s.orderRepo.FindRecent(ctx, 5)
	if err != nil {
		logger.Error("failed to load recent orders", err)
		return nil, err
	}

	return &domain.OrderStats{
		TotalOrders:    total,
		TotalRevenue:   revenue,
		OrdersByStatus: byStatus,
		RecentOrders:   recent,
	}, nil
}
