package cart

import "github.com/anishsharma/fashion-storefront-service/internal/models"

// Merge reconciles a locally cached cart into a server-fetched one. Server
// items seed the result keyed by product ID; local quantities are added to
// matching lines and unmatched local lines are appended. The result keeps the
// server cart's identity (ID, user, stored total). Item order is unspecified.
//
// Quantities are combined additively with no clamp against MaxAddableQuantity
// and no conflict detection: an "added one more on another device" and a stale
// duplicate sync are indistinguishable here. Clamping post-merge is a pending
// product decision, so the unclamped behavior is locked by test instead.
func Merge(local, server *models.Cart) *models.Cart {
	if server == nil {
		server = &models.Cart{}
	}

	merged := *server
	merged.Items = make([]models.CartItem, len(server.Items))
	copy(merged.Items, server.Items)

	index := make(map[string]int, len(merged.Items))
	for i, item := range merged.Items {
		index[item.ProductID] = i
	}

	if local == nil {
		return &merged
	}

	for _, item := range local.Items {
		if i, ok := index[item.ProductID]; ok {
			merged.Items[i].Quantity += item.Quantity
		} else {
			index[item.ProductID] = len(merged.Items)
			merged.Items = append(merged.Items, item)
		}
	}

	return &merged
}
