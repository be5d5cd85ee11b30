package handlers

import (
	"net/http"
	"strconv"

	"github.com/anishsharma/fashion-storefront-service/internal/api/middleware"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	service "github.com/anishsharma/fashion-storefront-service/internal/services"
	"github.com/anishsharma/fashion-storefront-service/internal/utils"
	"github.com/anishsharma/fashion-storefront-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService *service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator.New(),
	}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))

		history, err := h.orderService.ListOrders(r.Context(), sess, page, size)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, history)

	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		display, err := h.orderService.GetOrder(r.Context(), sess, r.PathValue("id"))

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, display)

	}
}

func (h *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		display, err := h.orderService.CancelOrder(r.Context(), sess, r.PathValue("id"))

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, display)

	}
}

func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		display, err := h.orderService.UpdateOrderStatus(r.Context(), sess, r.PathValue("id"), req.Status)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, display)

	}
}

func (h *OrderHandler) UpdatePaymentStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess := middleware.SessionFromContext(r.Context())

		var req models.UpdatePaymentStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		display, err := h.orderService.UpdatePaymentStatus(r.Context(), sess, r.PathValue("id"), req.PaymentStatus)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, display)

	}
}
