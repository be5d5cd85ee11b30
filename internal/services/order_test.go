package service_test

import (
	"context"
	"testing"

	appErrors "github.com/anishsharma/fashion-storefront-service/internal/errors"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	service "github.com/anishsharma/fashion-storefront-service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOrderTest() (*service.OrderService, *MockCommerceClient) {
	mockClient := &MockCommerceClient{}

	return service.NewOrderService(mockClient), mockClient
}

func adminSession() *models.Session {
	return &models.Session{UserID: "admin-1", Role: models.RoleAdmin, Token: "admin-token"}
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires authentication", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()

		_, err := orderService.ListOrders(ctx, nil, 1, 10)

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
		mockClient.AssertNotCalled(t, "ListOrders")
	})

	t.Run("Clamps page and size", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()

		mockClient.On("ListOrders", mock.Anything, "token-1", 1, 10).
			Return(&models.OrderHistoryResponse{}, nil).Once()

		_, err := orderService.ListOrders(ctx, testSession(), 0, 500)

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Returns orders from upstream", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()
		history := &models.OrderHistoryResponse{
			Orders: []models.Order{
				{ID: "o-1", Status: models.OrderStatusShipped, Items: []models.OrderItem{
					{ID: "oi-1", UnitPrice: 100, Quantity: 2, Subtotal: 200},
				}},
			},
			Total: 1,
		}

		mockClient.On("ListOrders", mock.Anything, "token-1", 1, 10).Return(history, nil).Once()

		got, err := orderService.ListOrders(ctx, testSession(), 1, 10)

		require.NoError(t, err)
		assert.Len(t, got.Orders, 1)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Decorates the order for display", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()
		order := &models.Order{ID: "o-1", Status: models.OrderStatusShipped, PaymentStatus: models.PaymentStatusPaid}

		mockClient.On("GetOrder", mock.Anything, "token-1", "o-1").Return(order, nil).Once()

		display, err := orderService.GetOrder(ctx, testSession(), "o-1")

		require.NoError(t, err)
		assert.Equal(t, order, display.Order)
		assert.Equal(t, 75, display.Progress)
		assert.True(t, display.Trackable)
		assert.False(t, display.Cancellable)
	})

	t.Run("Missing ID rejected", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()

		_, err := orderService.GetOrder(ctx, testSession(), "")

		require.Error(t, err)
		mockClient.AssertNotCalled(t, "GetOrder")
	})
}

func TestCancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancels a pending order", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()
		pending := &models.Order{ID: "o-1", Status: models.OrderStatusPending}
		cancelled := &models.Order{ID: "o-1", Status: models.OrderStatusCancelled}

		mockClient.On("GetOrder", mock.Anything, "token-1", "o-1").Return(pending, nil).Once()
		mockClient.On("CancelOrder", mock.Anything, "token-1", "o-1").Return(cancelled, nil).Once()

		display, err := orderService.CancelOrder(ctx, testSession(), "o-1")

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, display.Order.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Refuses a shipped order without calling upstream cancel", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()
		shipped := &models.Order{ID: "o-1", Status: models.OrderStatusShipped}

		mockClient.On("GetOrder", mock.Anything, "token-1", "o-1").Return(shipped, nil).Once()

		_, err := orderService.CancelOrder(ctx, testSession(), "o-1")

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockClient.AssertNotCalled(t, "CancelOrder")
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires admin role", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()

		_, err := orderService.UpdateOrderStatus(ctx, testSession(), "o-1", models.OrderStatusConfirmed)

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
		mockClient.AssertNotCalled(t, "UpdateOrderStatus")
	})

	t.Run("Admin updates status", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()
		updated := &models.Order{ID: "o-1", Status: models.OrderStatusConfirmed}

		mockClient.On("UpdateOrderStatus", mock.Anything, "admin-token", "o-1", models.OrderStatusConfirmed).
			Return(updated, nil).Once()

		display, err := orderService.UpdateOrderStatus(ctx, adminSession(), "o-1", models.OrderStatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, display.Order.Status)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires admin role", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()

		_, err := orderService.UpdatePaymentStatus(ctx, testSession(), "o-1", models.PaymentStatusPaid)

		require.Error(t, err)
		mockClient.AssertNotCalled(t, "UpdatePaymentStatus")
	})

	t.Run("Admin marks order refunded", func(t *testing.T) {
		orderService, mockClient := setupOrderTest()
		updated := &models.Order{ID: "o-1", Status: models.OrderStatusCancelled, PaymentStatus: models.PaymentStatusRefunded}

		mockClient.On("UpdatePaymentStatus", mock.Anything, "admin-token", "o-1", models.PaymentStatusRefunded).
			Return(updated, nil).Once()

		display, err := orderService.UpdatePaymentStatus(ctx, adminSession(), "o-1", models.PaymentStatusRefunded)

		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusRefunded, display.Order.PaymentStatus)
		assert.Equal(t, "gray", display.PaymentStatusColor)
	})
}
