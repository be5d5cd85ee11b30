package cart

import (
	"fmt"

	"github.com/anishsharma/fashion-storefront-service/internal/models"
)

// MaxQuantityPerItem is a business ceiling on a single cart line, not a
// technical constraint.
const MaxQuantityPerItem = 999

// IsItemAvailable reports whether the item's product is active and has any
// stock at all. Whether the requested quantity fits the stock is a separate
// check, see ValidationErrors.
func IsItemAvailable(item models.CartItem) bool {
	return item.Product != nil && item.Product.IsActive && item.Product.Stock > 0
}

// ValidationErrors lists human-readable violations in item order. The three
// checks per item are independent and not mutually exclusive: an inactive,
// out-of-stock line yields two messages. The "only N available" message fires
// only when there is stock to offer, so a zero-stock line reports out of stock
// rather than "only 0 available".
func ValidationErrors(c *models.Cart) []string {
	if c == nil {
		return nil
	}

	var problems []string

	for _, item := range c.Items {
		name := item.ProductID
		if item.Product != nil {
			name = item.Product.Name
		}

		if item.Product == nil || !item.Product.IsActive {
			problems = append(problems, fmt.Sprintf("%s is no longer available", name))
		}

		if item.Product != nil && item.Product.Stock == 0 {
			problems = append(problems, fmt.Sprintf("%s is out of stock", name))
		}

		if item.Product != nil && item.Product.Stock > 0 && item.Quantity > item.Product.Stock {
			problems = append(problems, fmt.Sprintf("only %d of %s available", item.Product.Stock, name))
		}
	}

	return problems
}

// IsValid reports whether the cart has no violations.
func IsValid(c *models.Cart) bool {
	return len(ValidationErrors(c)) == 0
}

// MaxAddableQuantity is how many units of a product may be put in a cart:
// 0 when the product is inactive or out of stock, otherwise the stock count
// capped at MaxQuantityPerItem.
func MaxAddableQuantity(p *models.Product) int {
	if p == nil || !p.IsActive || p.Stock == 0 {
		return 0
	}

	if p.Stock > MaxQuantityPerItem {
		return MaxQuantityPerItem
	}

	return p.Stock
}
