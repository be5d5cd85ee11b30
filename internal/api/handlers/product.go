package handlers

import (
	"net/http"
	"strconv"

	service "github.com/anishsharma/fashion-storefront-service/internal/services"
	"github.com/anishsharma/fashion-storefront-service/internal/utils/response"
)

type ProductHandler struct {
	catalogService *service.CatalogService
}

func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		view, err := h.catalogService.GetProduct(r.Context(), r.PathValue("id"))

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)

	}
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))

		list, err := h.catalogService.ListProducts(r.Context(), page, size)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, list)

	}
}
