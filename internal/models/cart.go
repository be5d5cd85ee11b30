package models

import "time"

// CartItem references a product by ID and carries an embedded snapshot of the
// product for display. The snapshot is refreshed on every cart fetch, so
// availability checks always see current stock, not add-time stock.
type CartItem struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	Size      string   `json:"size,omitempty"`
	Color     string   `json:"color,omitempty"`
}

// Cart is the current shopper's uncommitted selection. TotalAmount is the
// upstream's stored total and is display cache only: every computation in this
// service re-derives totals from the items (see internal/cart).
type Cart struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CartSummary is the server-computed aggregate view of a cart, fetched
// independently of the detailed item list as a fast display path.
type CartSummary struct {
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax,omitempty"`
	Shipping  float64 `json:"shipping,omitempty"`
	Total     float64 `json:"total"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,min=1,max=999"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type UpdateQuantityRequest struct {
	CartItemID string `json:"cart_item_id" validate:"required"`
	Quantity   int    `json:"quantity"     validate:"required,min=1,max=999"`
}

type RemoveItemRequest struct {
	CartItemID string `json:"cart_item_id" validate:"required"`
}
