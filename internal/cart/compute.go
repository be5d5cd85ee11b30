// Package cart implements the cart computation, validation and merge rules.
// Everything here is a pure function of its inputs: totals are always
// re-derived from item quantities and current product prices, never read from
// the cart's stored TotalAmount.
package cart

import (
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"github.com/anishsharma/fashion-storefront-service/internal/pricing"
)

// ItemTotal is the display price of the item's product times its quantity.
// Items without a product snapshot contribute nothing.
func ItemTotal(item models.CartItem) float64 {
	if item.Product == nil {
		return 0
	}

	return pricing.DisplayPrice(item.Product) * float64(item.Quantity)
}

// Subtotal sums ItemTotal over all items. Empty or nil cart is 0.
func Subtotal(c *models.Cart) float64 {
	if c == nil {
		return 0
	}

	var subtotal float64

	for _, item := range c.Items {
		subtotal += ItemTotal(item)
	}

	return subtotal
}

// Total equals Subtotal: tax and shipping are summary-level concerns computed
// upstream, never composed into the cart at this layer.
func Total(c *models.Cart) float64 {
	return Subtotal(c)
}

// TotalItemCount is the sum of quantities across items.
func TotalItemCount(c *models.Cart) int {
	if c == nil {
		return 0
	}

	var count int

	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// UniqueItemCount is the number of distinct cart lines.
func UniqueItemCount(c *models.Cart) int {
	if c == nil {
		return 0
	}

	return len(c.Items)
}

// DiscountAmount sums (price - sale price) * quantity over discounted items.
// It feeds the "you saved X" display only and is never used for settlement.
func DiscountAmount(c *models.Cart) float64 {
	if c == nil {
		return 0
	}

	var savings float64

	for _, item := range c.Items {
		if pricing.HasDiscount(item.Product) {
			savings += (item.Product.Price - *item.Product.SalePrice) * float64(item.Quantity)
		}
	}

	return savings
}
