package handlers

import (
	"net/http"

	"github.com/anishsharma/fashion-storefront-service/internal/api/middleware"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	service "github.com/anishsharma/fashion-storefront-service/internal/services"
	"github.com/anishsharma/fashion-storefront-service/internal/utils"
	"github.com/anishsharma/fashion-storefront-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		state := h.cartService.Load(r.Context(), sess)

		response.Success(w, http.StatusOK, state.View())

	}
}

// writeResult renders a mutation outcome. Mutations resolve rather than fail:
// a failed one is still a 200 envelope with success=false and a message the
// UI shows inline.
func writeResult(w http.ResponseWriter, state *service.CartState, result service.OperationResult) {

	if !result.Success {
		response.WriteJson(w, http.StatusOK, response.APIResponse{Success: false, Message: result.Message})
		return
	}

	response.Success(w, http.StatusOK, state.View())
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		state, result := h.cartService.AddItem(r.Context(), sess, &req)

		writeResult(w, state, result)

	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		state, result := h.cartService.UpdateQuantity(r.Context(), sess, &req)

		writeResult(w, state, result)

	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		cartItemID := r.PathValue("id")

		state, result := h.cartService.RemoveItem(r.Context(), sess, cartItemID)

		writeResult(w, state, result)

	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		state, result := h.cartService.Clear(r.Context(), sess)

		writeResult(w, state, result)

	}
}

func (h *CartHandler) MergeCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		state, result := h.cartService.MergeCached(r.Context(), sess)

		writeResult(w, state, result)

	}
}
