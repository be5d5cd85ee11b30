// Package pricing holds the pure display-price and stock-status computations
// shared by the catalog, cart and order layers.
package pricing

import (
	"math"

	"github.com/anishsharma/fashion-storefront-service/internal/models"
)

type StockStatus string

const (
	StockStatusIn  StockStatus = "in-stock"
	StockStatusLow StockStatus = "low-stock"
	StockStatusOut StockStatus = "out-of-stock"
)

// DisplayPrice is the price shown and charged: the sale price when one is set
// and positive, otherwise the base price.
func DisplayPrice(p *models.Product) float64 {
	if p == nil {
		return 0
	}

	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}

	return p.Price
}

// HasDiscount reports whether a strictly cheaper sale price is set. The strict
// inequality also keeps DiscountPercentage away from a zero-price division:
// with Price == 0 no sale price can satisfy it.
func HasDiscount(p *models.Product) bool {
	if p == nil || p.SalePrice == nil {
		return false
	}

	return *p.SalePrice > 0 && *p.SalePrice < p.Price
}

// DiscountPercentage is the rounded percentage saved against the base price,
// 0 when the product is not discounted.
func DiscountPercentage(p *models.Product) int {
	if !HasDiscount(p) {
		return 0
	}

	return int(math.Round((p.Price - *p.SalePrice) / p.Price * 100))
}

// Status classifies stock three ways. Stock equal to the minimum threshold
// counts as low-stock, not in-stock.
func Status(p *models.Product) StockStatus {
	if p == nil || p.Stock == 0 {
		return StockStatusOut
	}

	if p.Stock <= p.MinStock {
		return StockStatusLow
	}

	return StockStatusIn
}
