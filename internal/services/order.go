package service

import (
	"context"
	"log/slog"
	"math"

	appErrors "github.com/anishsharma/fashion-storefront-service/internal/errors"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"github.com/anishsharma/fashion-storefront-service/internal/orders"
	"github.com/anishsharma/fashion-storefront-service/pkg/commerce"
)

// OrderService reads and classifies orders for the shopper and proxies the
// admin status mutations. The upstream remains authoritative for every state
// transition; this layer only refuses requests it can already tell are wrong.
type OrderService struct {
	client commerce.Client
}

func NewOrderService(client commerce.Client) *OrderService {
	return &OrderService{client: client}
}

func (s *OrderService) ListOrders(ctx context.Context, sess *models.Session, page, size int) (*models.OrderHistoryResponse, error) {

	if !sess.IsAuthenticated() {
		return nil, appErrors.UnauthorizedError("Sign in to view your orders")
	}

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 10
	}

	history, err := s.client.ListOrders(ctx, sess.Token, page, size)
	if err != nil {
		return nil, err
	}

	for i := range history.Orders {
		s.reconcileItemSubtotals(&history.Orders[i])
	}

	return history, nil
}

func (s *OrderService) GetOrder(ctx context.Context, sess *models.Session, orderID string) (*orders.Display, error) {

	if !sess.IsAuthenticated() {
		return nil, appErrors.UnauthorizedError("Sign in to view your orders")
	}

	if orderID == "" {
		return nil, appErrors.BadRequestError("An order ID is required")
	}

	order, err := s.client.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		return nil, err
	}

	s.reconcileItemSubtotals(order)

	display := orders.DisplayFor(order)

	return &display, nil
}

// CancelOrder refuses client-side when the order is past the cancellable
// states; the upstream enforces the same rule authoritatively.
func (s *OrderService) CancelOrder(ctx context.Context, sess *models.Session, orderID string) (*orders.Display, error) {

	if !sess.IsAuthenticated() {
		return nil, appErrors.UnauthorizedError("Sign in to manage your orders")
	}

	if orderID == "" {
		return nil, appErrors.BadRequestError("An order ID is required")
	}

	order, err := s.client.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		return nil, err
	}

	if !orders.IsCancellable(order) {
		return nil, appErrors.BadRequestError("This order can no longer be cancelled")
	}

	cancelled, err := s.client.CancelOrder(ctx, sess.Token, orderID)
	if err != nil {
		return nil, err
	}

	display := orders.DisplayFor(cancelled)

	return &display, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, sess *models.Session, orderID string, status models.OrderStatus) (*orders.Display, error) {

	if !sess.IsAdmin() {
		return nil, appErrors.ForbiddenError("Administrator access required")
	}

	if orderID == "" {
		return nil, appErrors.BadRequestError("An order ID is required")
	}

	order, err := s.client.UpdateOrderStatus(ctx, sess.Token, orderID, status)
	if err != nil {
		return nil, err
	}

	display := orders.DisplayFor(order)

	return &display, nil
}

// UpdatePaymentStatus has no cross-validation against the order status: the
// two enums are independent and any combination is representable. Enforcing a
// compatibility matrix is deferred to the upstream.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, sess *models.Session, orderID string, status models.PaymentStatus) (*orders.Display, error) {

	if !sess.IsAdmin() {
		return nil, appErrors.ForbiddenError("Administrator access required")
	}

	if orderID == "" {
		return nil, appErrors.BadRequestError("An order ID is required")
	}

	order, err := s.client.UpdatePaymentStatus(ctx, sess.Token, orderID, status)
	if err != nil {
		return nil, err
	}

	display := orders.DisplayFor(order)

	return &display, nil
}

// reconcileItemSubtotals checks the stored line subtotals against the
// snapshotted unit prices. Order history is immutable, so a disagreement is an
// upstream data problem worth logging, never something to repair here.
func (s *OrderService) reconcileItemSubtotals(order *models.Order) {
	for _, item := range order.Items {
		derived := orders.ItemSubtotal(item)

		if math.Abs(derived-item.Subtotal) > 0.01 {
			slog.Warn("Order item stored subtotal disagrees with unit price times quantity",
				slog.String("orderId", order.ID),
				slog.String("orderItemId", item.ID),
				slog.Float64("stored", item.Subtotal),
				slog.Float64("derived", derived))
		}
	}
}
