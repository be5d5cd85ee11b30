package cart_test

import (
	"testing"

	"github.com/anishsharma/fashion-storefront-service/internal/cart"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestIsItemAvailable(t *testing.T) {
	tests := []struct {
		name     string
		item     models.CartItem
		expected bool
	}{
		{"Active with stock", models.CartItem{Product: &models.Product{IsActive: true, Stock: 5}}, true},
		{"Inactive with stock", models.CartItem{Product: &models.Product{IsActive: false, Stock: 5}}, false},
		{"Active without stock", models.CartItem{Product: &models.Product{IsActive: true, Stock: 0}}, false},
		{"No product snapshot", models.CartItem{ProductID: "p1"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cart.IsItemAvailable(tc.item))
		})
	}
}

func TestValidationErrors(t *testing.T) {
	t.Run("Valid cart has no problems", func(t *testing.T) {
		c := &models.Cart{Items: []models.CartItem{
			{Product: &models.Product{Name: "Linen Shirt", IsActive: true, Stock: 10}, Quantity: 2},
		}}

		assert.Empty(t, cart.ValidationErrors(c))
		assert.True(t, cart.IsValid(c))
	})

	t.Run("Inactive and out of stock yields exactly two messages", func(t *testing.T) {
		// The quantity check compares against stock, but a zero-stock line is
		// already reported as out of stock and never as "only 0 available".
		c := &models.Cart{Items: []models.CartItem{
			{Product: &models.Product{Name: "Denim Jacket", IsActive: false, Stock: 0}, Quantity: 3},
		}}

		problems := cart.ValidationErrors(c)

		assert.Len(t, problems, 2)
		assert.Equal(t, "Denim Jacket is no longer available", problems[0])
		assert.Equal(t, "Denim Jacket is out of stock", problems[1])
		assert.False(t, cart.IsValid(c))
	})

	t.Run("Quantity above stock", func(t *testing.T) {
		c := &models.Cart{Items: []models.CartItem{
			{Product: &models.Product{Name: "Wool Scarf", IsActive: true, Stock: 3}, Quantity: 5},
		}}

		problems := cart.ValidationErrors(c)

		assert.Equal(t, []string{"only 3 of Wool Scarf available"}, problems)
	})

	t.Run("Inactive with stock and excess quantity fires two checks", func(t *testing.T) {
		c := &models.Cart{Items: []models.CartItem{
			{Product: &models.Product{Name: "Silk Tie", IsActive: false, Stock: 2}, Quantity: 5},
		}}

		problems := cart.ValidationErrors(c)

		assert.Len(t, problems, 2)
		assert.Equal(t, "Silk Tie is no longer available", problems[0])
		assert.Equal(t, "only 2 of Silk Tie available", problems[1])
	})

	t.Run("Problems reported in item order", func(t *testing.T) {
		c := &models.Cart{Items: []models.CartItem{
			{Product: &models.Product{Name: "First", IsActive: true, Stock: 0}, Quantity: 1},
			{Product: &models.Product{Name: "Second", IsActive: false, Stock: 10}, Quantity: 1},
		}}

		problems := cart.ValidationErrors(c)

		assert.Equal(t, []string{
			"First is out of stock",
			"Second is no longer available",
		}, problems)
	})

	t.Run("Missing snapshot reported as unavailable", func(t *testing.T) {
		c := &models.Cart{Items: []models.CartItem{
			{ProductID: "p1", Quantity: 1},
		}}

		assert.Equal(t, []string{"p1 is no longer available"}, cart.ValidationErrors(c))
	})

	t.Run("Nil cart is valid", func(t *testing.T) {
		assert.Nil(t, cart.ValidationErrors(nil))
		assert.True(t, cart.IsValid(nil))
	})
}

func TestMaxAddableQuantity(t *testing.T) {
	tests := []struct {
		name     string
		product  *models.Product
		expected int
	}{
		{"Inactive regardless of stock", &models.Product{IsActive: false, Stock: 50}, 0},
		{"Out of stock regardless of active", &models.Product{IsActive: true, Stock: 0}, 0},
		{"Inactive and out of stock", &models.Product{IsActive: false, Stock: 0}, 0},
		{"Stock below ceiling", &models.Product{IsActive: true, Stock: 50}, 50},
		{"Stock at ceiling", &models.Product{IsActive: true, Stock: 999}, 999},
		{"Stock above ceiling", &models.Product{IsActive: true, Stock: 5000}, 999},
		{"Nil product", nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cart.MaxAddableQuantity(tc.product))
		})
	}
}
