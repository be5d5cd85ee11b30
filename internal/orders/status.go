// Package orders classifies order and payment states for display. State
// mutation itself happens upstream; this layer only decides what the current
// state means for the shopper (cancellable, returnable, trackable) and how it
// is rendered. The happy path is pending → confirmed → processing → shipped →
// delivered; cancelled is terminal and reachable from pending or confirmed.
package orders

import "github.com/anishsharma/fashion-storefront-service/internal/models"

// IsCancellable reports whether the owning user may still cancel the order.
func IsCancellable(o *models.Order) bool {
	if o == nil {
		return false
	}

	return o.Status == models.OrderStatusPending || o.Status == models.OrderStatusConfirmed
}

// IsReturnable reports whether a return can be initiated.
func IsReturnable(o *models.Order) bool {
	return o != nil && o.Status == models.OrderStatusDelivered
}

// CanTrack reports whether the order has shipment progress worth showing.
func CanTrack(o *models.Order) bool {
	if o == nil {
		return false
	}

	switch o.Status {
	case models.OrderStatusConfirmed, models.OrderStatusProcessing, models.OrderStatusShipped:
		return true
	default:
		return false
	}
}

// Progress maps the status to a fixed progress-bar percentage. Purely
// presentational, not a completion guarantee.
func Progress(o *models.Order) int {
	if o == nil {
		return 0
	}

	switch o.Status {
	case models.OrderStatusPending:
		return 10
	case models.OrderStatusConfirmed:
		return 25
	case models.OrderStatusProcessing:
		return 50
	case models.OrderStatusShipped:
		return 75
	case models.OrderStatusDelivered:
		return 100
	default:
		return 0
	}
}

// StatusLabel is the display text for an order status.
func StatusLabel(s models.OrderStatus) string {
	switch s {
	case models.OrderStatusPending:
		return "Order placed"
	case models.OrderStatusConfirmed:
		return "Confirmed"
	case models.OrderStatusProcessing:
		return "Being prepared"
	case models.OrderStatusShipped:
		return "Shipped"
	case models.OrderStatusDelivered:
		return "Delivered"
	case models.OrderStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// StatusColor is the badge color class for an order status.
func StatusColor(s models.OrderStatus) string {
	switch s {
	case models.OrderStatusPending:
		return "yellow"
	case models.OrderStatusConfirmed:
		return "blue"
	case models.OrderStatusProcessing:
		return "indigo"
	case models.OrderStatusShipped:
		return "purple"
	case models.OrderStatusDelivered:
		return "green"
	case models.OrderStatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// PaymentStatusLabel is the display text for a payment status.
func PaymentStatusLabel(s models.PaymentStatus) string {
	switch s {
	case models.PaymentStatusPending:
		return "Awaiting payment"
	case models.PaymentStatusPaid:
		return "Paid"
	case models.PaymentStatusFailed:
		return "Payment failed"
	case models.PaymentStatusRefunded:
		return "Refunded"
	default:
		return string(s)
	}
}

// PaymentStatusColor is the badge color class for a payment status.
func PaymentStatusColor(s models.PaymentStatus) string {
	switch s {
	case models.PaymentStatusPaid:
		return "green"
	case models.PaymentStatusFailed:
		return "red"
	case models.PaymentStatusRefunded:
		return "gray"
	default:
		return "yellow"
	}
}

// ItemSubtotal re-derives the line subtotal from the snapshotted unit price.
// The stored Subtotal field is upstream-enforced; readers compare against this
// and log when they disagree rather than trusting the stored value.
func ItemSubtotal(item models.OrderItem) float64 {
	return item.UnitPrice * float64(item.Quantity)
}

// Display is the fully decorated order shape handed to the UI.
type Display struct {
	Order              *models.Order `json:"order"`
	StatusLabel        string        `json:"status_label"`
	StatusColor        string        `json:"status_color"`
	PaymentStatusLabel string        `json:"payment_status_label"`
	PaymentStatusColor string        `json:"payment_status_color"`
	Progress           int           `json:"progress"`
	Cancellable        bool          `json:"cancellable"`
	Returnable         bool          `json:"returnable"`
	Trackable          bool          `json:"trackable"`
}

// DisplayFor decorates an order with every derived display attribute.
func DisplayFor(o *models.Order) Display {
	d := Display{
		Order:       o,
		Progress:    Progress(o),
		Cancellable: IsCancellable(o),
		Returnable:  IsReturnable(o),
		Trackable:   CanTrack(o),
	}

	if o != nil {
		d.StatusLabel = StatusLabel(o.Status)
		d.StatusColor = StatusColor(o.Status)
		d.PaymentStatusLabel = PaymentStatusLabel(o.PaymentStatus)
		d.PaymentStatusColor = PaymentStatusColor(o.PaymentStatus)
	}

	return d
}
