package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, id uint64) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, errors.New("order not found")
		}
		return domain.Order{}, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

func (r *OrdersRepository) FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	query := r.DB.WithContext(ctx).Model(&domain.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []domain.Order
	order := fmt.Sprintf("%s %s", filter.SortBy, filter.SortOrder)
	err := query.Preload("Items").Order(order).Limit(filter.Limit).Offset(filter.Offset()).Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, total, nil
}

func (r *OrdersRepository) FindByUser(ctx context.Context, userID uint, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	query := r.DB.WithContext(ctx).Model(&domain.Order{}).Where("user_id = ?", userID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []domain.Order
	err := query.Preload("Items").Order("created_at DESC").Limit(filter.Limit).Offset(filter.Offset()).Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, total, nil
}

func (r *OrdersRepository) Update(ctx context.Context, order *domain.Order) error {
	row := r.DB.WithContext(ctx).Where("id = ?", order.ID).Updates(order)
	if row.Error != nil {
		return fmt.Errorf("failed to update order: %w", row.Error)
	}
	if row.RowsAffected == 0 {
		return errors.New("order not found")
	}

	return nil
}

func (r *OrdersRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

func (r *OrdersRepository) RevenueByStatuses(ctx context.Context, statuses []string) (float64, error) {
	var revenue float64
	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Where("status IN ?", statuses).
		Select("COALESCE(SUM(pricing_total), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return revenue, nil
}

func (r *OrdersRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}

	return out, nil
}

func (r *OrdersRepository) FindRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.DB.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recent orders: %w", err)
	}

	return orders, nil
}
