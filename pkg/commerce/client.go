// Package commerce is the HTTP client for the commerce REST API, the opaque
// boundary this storefront fronts. Every response follows the envelope
// {success, message?, data}; callers of this package get decoded models or an
// AppError, never the raw envelope.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/anishsharma/fashion-storefront-service/internal/errors"
	"github.com/anishsharma/fashion-storefront-service/internal/metrics"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client defines the commerce API operations the storefront consumes.
type Client interface {
	GetCart(ctx context.Context, token string) (*models.Cart, error)
	GetCartSummary(ctx context.Context, token string) (*models.CartSummary, error)
	AddCartItem(ctx context.Context, token string, req *models.AddItemRequest) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, token string, req *models.UpdateQuantityRequest) (*models.CartItem, error)
	RemoveCartItem(ctx context.Context, token string, cartItemID string) error
	ClearCart(ctx context.Context, token string) error

	ListOrders(ctx context.Context, token string, page, size int) (*models.OrderHistoryResponse, error)
	GetOrder(ctx context.Context, token string, orderID string) (*models.Order, error)
	CancelOrder(ctx context.Context, token string, orderID string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID string, status models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, token string, orderID string, status models.PaymentStatus) (*models.Order, error)

	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error)

	Ping(ctx context.Context) error
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// do performs one request and decodes the envelope's data into out (when out
// is non-nil). The label is the stable path shape used for metrics, without
// embedded IDs.
func (c *httpClient) do(ctx context.Context, method, path, label, token string, body, out any) error {
	start := time.Now()

	var reqBody io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.InternalError("Failed to encode request").WithError(err)
		}

		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.InternalError("Failed to build request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveUpstreamRequest(method, label, "transport_error", time.Since(start))

		return errors.NetworkError("Unable to reach the store service").WithError(err)
	}
	defer resp.Body.Close()

	metrics.ObserveUpstreamRequest(method, label, strconv.Itoa(resp.StatusCode), time.Since(start))

	var env envelope

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.UpstreamError("Invalid response from the store service", resp.StatusCode).WithError(err)
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = "The store service rejected the request"
		}

		if resp.StatusCode == http.StatusNotFound {
			return errors.NotFoundError(message)
		}

		return errors.UpstreamError(message, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.UpstreamError("Invalid response payload from the store service", resp.StatusCode).WithError(err)
	}

	return nil
}

func (c *httpClient) GetCart(ctx context.Context, token string) (*models.Cart, error) {
	cart := &models.Cart{}

	if err := c.do(ctx, http.MethodGet, "/carts/user", "/carts/user", token, nil, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

func (c *httpClient) GetCartSummary(ctx context.Context, token string) (*models.CartSummary, error) {
	summary := &models.CartSummary{}

	if err := c.do(ctx, http.MethodGet, "/carts/user/summary", "/carts/user/summary", token, nil, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func (c *httpClient) AddCartItem(ctx context.Context, token string, req *models.AddItemRequest) (*models.CartItem, error) {
	item := &models.CartItem{}

	if err := c.do(ctx, http.MethodPost, "/carts/user/add", "/carts/user/add", token, req, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (c *httpClient) UpdateCartItem(ctx context.Context, token string, req *models.UpdateQuantityRequest) (*models.CartItem, error) {
	item := &models.CartItem{}

	if err := c.do(ctx, http.MethodPut, "/carts/user/update", "/carts/user/update", token, req, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (c *httpClient) RemoveCartItem(ctx context.Context, token string, cartItemID string) error {
	body := models.RemoveItemRequest{CartItemID: cartItemID}

	return c.do(ctx, http.MethodDelete, "/carts/user/remove", "/carts/user/remove", token, body, nil)
}

func (c *httpClient) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/carts/user/clear", "/carts/user/clear", token, nil, nil)
}

func (c *httpClient) ListOrders(ctx context.Context, token string, page, size int) (*models.OrderHistoryResponse, error) {
	history := &models.OrderHistoryResponse{}
	path := fmt.Sprintf("/orders/user?page=%d&size=%d", page, size)

	if err := c.do(ctx, http.MethodGet, path, "/orders/user", token, nil, history); err != nil {
		return nil, err
	}

	return history, nil
}

func (c *httpClient) GetOrder(ctx context.Context, token string, orderID string) (*models.Order, error) {
	order := &models.Order{}

	if err := c.do(ctx, http.MethodGet, "/orders/user/"+orderID, "/orders/user/{id}", token, nil, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *httpClient) CancelOrder(ctx context.Context, token string, orderID string) (*models.Order, error) {
	order := &models.Order{}

	if err := c.do(ctx, http.MethodPost, "/orders/user/"+orderID+"/cancel", "/orders/user/{id}/cancel", token, nil, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *httpClient) UpdateOrderStatus(ctx context.Context, token string, orderID string, status models.OrderStatus) (*models.Order, error) {
	order := &models.Order{}
	body := models.UpdateOrderStatusRequest{Status: status}

	if err := c.do(ctx, http.MethodPatch, "/orders/admin/"+orderID+"/status", "/orders/admin/{id}/status", token, body, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *httpClient) UpdatePaymentStatus(ctx context.Context, token string, orderID string, status models.PaymentStatus) (*models.Order, error) {
	order := &models.Order{}
	body := models.UpdatePaymentStatusRequest{PaymentStatus: status}

	if err := c.do(ctx, http.MethodPatch, "/orders/admin/"+orderID+"/payment-status", "/orders/admin/{id}/payment-status", token, body, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *httpClient) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	product := &models.Product{}

	if err := c.do(ctx, http.MethodGet, "/products/"+productID, "/products/{id}", "", nil, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (c *httpClient) ListProducts(ctx context.Context, page, size int) ([]models.Product, int, error) {
	var data struct {
		Products []models.Product `json:"products"`
		Total    int              `json:"total"`
	}

	path := fmt.Sprintf("/products?page=%d&size=%d", page, size)

	if err := c.do(ctx, http.MethodGet, path, "/products", "", nil, &data); err != nil {
		return nil, 0, err
	}

	return data.Products, data.Total, nil
}

// Ping is used by the health endpoint; any decodable success envelope counts.
func (c *httpClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "/health", "", nil, nil)
}
