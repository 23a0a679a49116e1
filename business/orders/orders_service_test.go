package orders

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talha-dycoders/Intelligent-ecommerce-app/domain"
)

type fakeOrdersRepo struct {
	orders map[uint64]domain.Order
	nextID uint64
}

func newFakeOrdersRepo() *fakeOrdersRepo {
	return &fakeOrdersRepo{orders: map[uint64]domain.Order{}, nextID: 1}
}

func (f *fakeOrdersRepo) Create(_ context.Context, order *domain.Order) error {
	order.ID = f.nextID
	f.nextID++
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrdersRepo) FindByID(_ context.Context, id uint64) (domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, errors.New("record not found")
	}
	return o, nil
}

func (f *fakeOrdersRepo) FindAll(_ context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrdersRepo) FindByUser(_ context.Context, userID uint, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.UserID != userID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrdersRepo) Update(_ context.Context, order *domain.Order) error {
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrdersRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrdersRepo) RevenueByStatuses(_ context.Context, statuses []string) (float64, error) {
	allowed := map[string]bool{}
	for _, s := range statuses {
		allowed[s] = true
	}
	total := 0.0
	for _, o := range f.orders {
		if allowed[o.Status] {
			total += o.Pricing.Total
		}
	}
	return total, nil
}

func (f *fakeOrdersRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for _, o := range f.orders {
		out[o.Status]++
	}
	return out, nil
}

func (f *fakeOrdersRepo) FindRecent(_ context.Context, limit int) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		out = append(out, o)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeProductReader struct {
	products map[uint64]domain.Product
}

func (f *fakeProductReader) FindByID(_ context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("record not found")
	}
	return p, nil
}

func newTestService(repo *fakeOrdersRepo) *ordersService {
	products := &fakeProductReader{products: map[uint64]domain.Product{
		1: {ID: 1, Name: "Laptop", Price: 1200, Stock: 5, Images: []string{"laptop.jpg"}},
		2: {ID: 2, Name: "Novel", Price: 15, Stock: 100},
	}}
	svc := NewOrdersService(repo, products)
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func newOrder() *domain.Order {
	return &domain.Order{
		UserID: 7,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 2},
		},
		Payment: domain.PaymentInfo{Method: domain.PaymentMethodCard},
		Pricing: domain.OrderPricing{Tax: 10, Shipping: 5},
	}
}

func TestCreateOrderSnapshotsItems(t *testing.T) {
	repo := newFakeOrdersRepo()
	svc := newTestService(repo)

	created, err := svc.CreateOrder(context.Background(), newOrder())
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, created.Status)
	assert.Equal(t, domain.PaymentStatusPending, created.Payment.Status)
	assert.True(t, strings.HasPrefix(created.OrderNumber, "ORD-"))
	assert.True(t, strings.HasSuffix(created.OrderNumber, "-0001"))

	require.Len(t, created.Items, 2)
	assert.Equal(t, "Laptop", created.Items[0].Name)
	assert.Equal(t, 1200.0, created.Items[0].Price)
	assert.Equal(t, "laptop.jpg", created.Items[0].Image)

	assert.Equal(t, 1230.0, created.Pricing.Subtotal)
	assert.Equal(t, 1245.0, created.Pricing.Total)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newTestService(newFakeOrdersRepo())

	order := newOrder()
	order.Items = nil
	_, err := svc.CreateOrder(context.Background(), order)
	assert.EqualError(t, err, "order must contain at least one item")

	order = newOrder()
	order.Payment.Method = ""
	_, err = svc.CreateOrder(context.Background(), order)
	assert.EqualError(t, err, "payment method is required")

	order = newOrder()
	order.Items[0].Quantity = 0
	_, err = svc.CreateOrder(context.Background(), order)
	assert.EqualError(t, err, "item quantity must be positive")

	order = newOrder()
	order.Items[0].ProductID = 404
	_, err = svc.CreateOrder(context.Background(), order)
	assert.EqualError(t, err, "product not found")

	order = newOrder()
	order.Items[0].Quantity = 50 // only 5 in stock
	_, err = svc.CreateOrder(context.Background(), order)
	assert.EqualError(t, err, "insufficient stock")
}

func TestUpdateStatusStampsTrackingDates(t *testing.T) {
	repo := newFakeOrdersRepo()
	svc := newTestService(repo)

	created, err := svc.CreateOrder(context.Background(), newOrder())
	require.NoError(t, err)

	shipped, err := svc.UpdateStatus(context.Background(), created.ID, domain.OrderStatusShipped, &domain.TrackingInfo{
		Number: "TRK123", Carrier: "DHL",
	})
	require.NoError(t, err)

	require.NotNil(t, shipped.Tracking.ShippedDate)
	assert.Equal(t, "TRK123", shipped.Tracking.Number)
	require.NotNil(t, shipped.Tracking.EstimatedDelivery)
	assert.Equal(t, shipped.Tracking.ShippedDate.Add(72*time.Hour), *shipped.Tracking.EstimatedDelivery)

	delivered, err := svc.UpdateStatus(context.Background(), created.ID, domain.OrderStatusDelivered, nil)
	require.NoError(t, err)
	require.NotNil(t, delivered.Tracking.DeliveredDate)
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := newTestService(newFakeOrdersRepo())

	_, err := svc.UpdateStatus(context.Background(), 1, "lost", nil)
	assert.EqualError(t, err, "invalid order status")
}

func TestUpdatePayment(t *testing.T) {
	repo := newFakeOrdersRepo()
	svc := newTestService(repo)

	created, err := svc.CreateOrder(context.Background(), newOrder())
	require.NoError(t, err)

	updated, err := svc.UpdatePayment(context.Background(), created.ID, domain.PaymentInfo{
		Status: domain.PaymentStatusCompleted, TransactionID: "tx-1", CardLast4: "4242", CardBrand: "visa",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusCompleted, updated.Payment.Status)
	assert.Equal(t, "tx-1", updated.Payment.TransactionID)
	assert.Equal(t, domain.PaymentMethodCard, updated.Payment.Method)

	// empty detail fields leave existing values alone
	updated, err = svc.UpdatePayment(context.Background(), created.ID, domain.PaymentInfo{Status: domain.PaymentStatusRefunded})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", updated.Payment.TransactionID)
}

func TestCancelOrderOnlyWhilePending(t *testing.T) {
	repo := newFakeOrdersRepo()
	svc := newTestService(repo)

	created, err := svc.CreateOrder(context.Background(), newOrder())
	require.NoError(t, err)

	require.NoError(t, svc.CancelOrder(context.Background(), created.ID))
	assert.Equal(t, domain.OrderStatusCancelled, repo.orders[created.ID].Status)

	second, err := svc.CreateOrder(context.Background(), newOrder())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), second.ID, domain.OrderStatusShipped, nil)
	require.NoError(t, err)

	err = svc.CancelOrder(context.Background(), second.ID)
	assert.EqualError(t, err, "only pending orders can be cancelled")
}

func TestGetStats(t *testing.T) {
	repo := newFakeOrdersRepo()
	svc := newTestService(repo)

	first, err := svc.CreateOrder(context.Background(), newOrder())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), first.ID, domain.OrderStatusDelivered, nil)
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), newOrder())
	require.NoError(t, err)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, 1245.0, stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.OrdersByStatus[domain.OrderStatusPending])
	assert.Equal(t, int64(1), stats.OrdersByStatus[domain.OrderStatusDelivered])
}

func TestGetOrdersByUserRequiresUser(t *testing.T) {
	svc := newTestService(newFakeOrdersRepo())

	_, _, err := svc.GetOrdersByUser(context.Background(), 0, domain.OrderFilter{})
	assert.Error(t, err)
}
