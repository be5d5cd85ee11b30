package service

import (
	"context"

	cartutil "github.com/anishsharma/fashion-storefront-service/internal/cart"
	appErrors "github.com/anishsharma/fashion-storefront-service/internal/errors"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"github.com/anishsharma/fashion-storefront-service/internal/pricing"
	"github.com/anishsharma/fashion-storefront-service/pkg/commerce"
	"github.com/microcosm-cc/bluemonday"
)

// CatalogService reads products from the commerce API and decorates them with
// the derived display fields. Product descriptions arrive as HTML authored in
// the admin back-office and are sanitized before they reach a browser.
type CatalogService struct {
	client commerce.Client
	policy *bluemonday.Policy
}

func NewCatalogService(client commerce.Client) *CatalogService {
	return &CatalogService{
		client: client,
		policy: bluemonday.UGCPolicy(),
	}
}

func (s *CatalogService) GetProduct(ctx context.Context, productID string) (*models.ProductView, error) {

	if productID == "" {
		return nil, appErrors.BadRequestError("A product ID is required")
	}

	product, err := s.client.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	view := s.decorate(product)

	return &view, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, page, size int) (*models.ProductListResponse, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 20
	}

	products, total, err := s.client.ListProducts(ctx, page, size)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProductView, 0, len(products))

	for i := range products {
		views = append(views, s.decorate(&products[i]))
	}

	return &models.ProductListResponse{
		Products: views,
		Total:    total,
		Page:     page,
		PageSize: size,
	}, nil
}

func (s *CatalogService) decorate(p *models.Product) models.ProductView {
	p.Description = s.policy.Sanitize(p.Description)

	return models.ProductView{
		Product:            p,
		DisplayPrice:       pricing.DisplayPrice(p),
		HasDiscount:        pricing.HasDiscount(p),
		DiscountPercentage: pricing.DiscountPercentage(p),
		StockStatus:        string(pricing.Status(p)),
		MaxAddableQuantity: cartutil.MaxAddableQuantity(p),
	}
}
