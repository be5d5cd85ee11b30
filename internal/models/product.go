package models

import "time"

// Product is a read-only catalog record fetched from the commerce API.
// IDs are the upstream document identifiers (hex strings), not locally generated.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	SalePrice   *float64  `json:"sale_price,omitempty"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	IsActive    bool      `json:"is_active"`
	IsFeatured  bool      `json:"is_featured"`
	Images      []string  `json:"images,omitempty"`
	Sizes       []string  `json:"sizes,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductView is the storefront-facing product shape: the raw record plus the
// derived display fields the UI renders directly.
type ProductView struct {
	Product            *Product `json:"product"`
	DisplayPrice       float64  `json:"display_price"`
	HasDiscount        bool     `json:"has_discount"`
	DiscountPercentage int      `json:"discount_percentage"`
	StockStatus        string   `json:"stock_status"`
	MaxAddableQuantity int      `json:"max_addable_quantity"`
}

type ProductListResponse struct {
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}
