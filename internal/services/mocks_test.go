package service_test

import (
	"context"

	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockCommerceClient struct {
	mock.Mock
}

func (m *MockCommerceClient) GetCart(ctx context.Context, token string) (*models.Cart, error) {
	args := m.Called(ctx, token)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCommerceClient) GetCartSummary(ctx context.Context, token string) (*models.CartSummary, error) {
	args := m.Called(ctx, token)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartSummary), args.Error(1)
}

func (m *MockCommerceClient) AddCartItem(ctx context.Context, token string, req *models.AddItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, token, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCommerceClient) UpdateCartItem(ctx context.Context, token string, req *models.UpdateQuantityRequest) (*models.CartItem, error) {
	args := m.Called(ctx, token, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCommerceClient) RemoveCartItem(ctx context.Context, token string, cartItemID string) error {
	args := m.Called(ctx, token, cartItemID)

	return args.Error(0)
}

func (m *MockCommerceClient) ClearCart(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *MockCommerceClient) ListOrders(ctx context.Context, token string, page, size int) (*models.OrderHistoryResponse, error) {
	args := m.Called(ctx, token, page, size)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.OrderHistoryResponse), args.Error(1)
}

func (m *MockCommerceClient) GetOrder(ctx context.Context, token string, orderID string) (*models.Order, error) {
	args := m.Called(ctx, token, orderID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockCommerceClient) CancelOrder(ctx context.Context, token string, orderID string) (*models.Order, error) {
	args := m.Called(ctx, token, orderID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockCommerceClient) UpdateOrderStatus(ctx context.Context, token string, orderID string, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, token, orderID, status)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockCommerceClient) UpdatePaymentStatus(ctx context.Context, token string, orderID string, status models.PaymentStatus) (*models.Order, error) {
	args := m.Called(ctx, token, orderID, status)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockCommerceClient) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCommerceClient) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	args := m.Called(ctx, page, size)

	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}

	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockCommerceClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	args := m.Called(ctx, userID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockSnapshotStore) Save(ctx context.Context, userID string, cart *models.Cart) error {
	args := m.Called(ctx, userID, cart)

	return args.Error(0)
}

func (m *MockSnapshotStore) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}
