package handlers_test

import (
	"context"

	"github.com/anishsharma/fashion-storefront-service/internal/models"
)

// stubClient satisfies the commerce client with overridable behaviors; the
// zero value answers every call with an empty result.
type stubClient struct {
	getCartFn        func(ctx context.Context, token string) (*models.Cart, error)
	getCartSummaryFn func(ctx context.Context, token string) (*models.CartSummary, error)
	addCartItemFn    func(ctx context.Context, token string, req *models.AddItemRequest) (*models.CartItem, error)
	updateCartItemFn func(ctx context.Context, token string, req *models.UpdateQuantityRequest) (*models.CartItem, error)
	removeCartItemFn func(ctx context.Context, token string, cartItemID string) error
	clearCartFn      func(ctx context.Context, token string) error
	listOrdersFn     func(ctx context.Context, token string, page, size int) (*models.OrderHistoryResponse, error)
	getOrderFn       func(ctx context.Context, token string, orderID string) (*models.Order, error)
	cancelOrderFn    func(ctx context.Context, token string, orderID string) (*models.Order, error)
	getProductFn     func(ctx context.Context, productID string) (*models.Product, error)
	listProductsFn   func(ctx context.Context, page, size int) ([]models.Product, int, error)
}

func (s *stubClient) GetCart(ctx context.Context, token string) (*models.Cart, error) {
	if s.getCartFn != nil {
		return s.getCartFn(ctx, token)
	}

	return &models.Cart{}, nil
}

func (s *stubClient) GetCartSummary(ctx context.Context, token string) (*models.CartSummary, error) {
	if s.getCartSummaryFn != nil {
		return s.getCartSummaryFn(ctx, token)
	}

	return &models.CartSummary{}, nil
}

func (s *stubClient) AddCartItem(ctx context.Context, token string, req *models.AddItemRequest) (*models.CartItem, error) {
	if s.addCartItemFn != nil {
		return s.addCartItemFn(ctx, token, req)
	}

	return &models.CartItem{}, nil
}

func (s *stubClient) UpdateCartItem(ctx context.Context, token string, req *models.UpdateQuantityRequest) (*models.CartItem, error) {
	if s.updateCartItemFn != nil {
		return s.updateCartItemFn(ctx, token, req)
	}

	return &models.CartItem{}, nil
}

func (s *stubClient) RemoveCartItem(ctx context.Context, token string, cartItemID string) error {
	if s.removeCartItemFn != nil {
		return s.removeCartItemFn(ctx, token, cartItemID)
	}

	return nil
}

func (s *stubClient) ClearCart(ctx context.Context, token string) error {
	if s.clearCartFn != nil {
		return s.clearCartFn(ctx, token)
	}

	return nil
}

func (s *stubClient) ListOrders(ctx context.Context, token string, page, size int) (*models.OrderHistoryResponse, error) {
	if s.listOrdersFn != nil {
		return s.listOrdersFn(ctx, token, page, size)
	}

	return &models.OrderHistoryResponse{}, nil
}

func (s *stubClient) GetOrder(ctx context.Context, token string, orderID string) (*models.Order, error) {
	if s.getOrderFn != nil {
		return s.getOrderFn(ctx, token, orderID)
	}

	return &models.Order{}, nil
}

func (s *stubClient) CancelOrder(ctx context.Context, token string, orderID string) (*models.Order, error) {
	if s.cancelOrderFn != nil {
		return s.cancelOrderFn(ctx, token, orderID)
	}

	return &models.Order{}, nil
}

func (s *stubClient) UpdateOrderStatus(ctx context.Context, token string, orderID string, status models.OrderStatus) (*models.Order, error) {
	return &models.Order{ID: orderID, Status: status}, nil
}

func (s *stubClient) UpdatePaymentStatus(ctx context.Context, token string, orderID string, status models.PaymentStatus) (*models.Order, error) {
	return &models.Order{ID: orderID, PaymentStatus: status}, nil
}

func (s *stubClient) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	if s.getProductFn != nil {
		return s.getProductFn(ctx, productID)
	}

	return &models.Product{ID: productID}, nil
}

func (s *stubClient) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	if s.listProductsFn != nil {
		return s.listProductsFn(ctx, page, size)
	}

	return nil, 0, nil
}

func (s *stubClient) Ping(ctx context.Context) error {
	return nil
}

// stubSnapshots is an always-empty snapshot store.
type stubSnapshots struct{}

func (stubSnapshots) Get(ctx context.Context, userID string) (*models.Cart, error) { return nil, nil }

func (stubSnapshots) Save(ctx context.Context, userID string, cart *models.Cart) error { return nil }

func (stubSnapshots) Clear(ctx context.Context, userID string) error { return nil }
