package service

import (
	"context"
	"log/slog"
	"math"
	"sync"

	cartutil "github.com/anishsharma/fashion-storefront-service/internal/cart"
	"github.com/anishsharma/fashion-storefront-service/internal/cache"
	appErrors "github.com/anishsharma/fashion-storefront-service/internal/errors"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"github.com/anishsharma/fashion-storefront-service/pkg/commerce"
)

const signInMessage = "Please sign in to manage your cart"

// OperationResult is what every cart mutation resolves to. Mutations never
// return a Go error to their caller: validation failures, unauthenticated
// access and upstream failures all land here as a message, so the UI renders
// inline errors without branching on error types.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func failure(message string) OperationResult {
	return OperationResult{Success: false, Message: message}
}

// CartState is the loaded cart and its server-computed summary. Either slot
// may be nil when its fetch failed or the caller is unauthenticated; all
// selectors tolerate that.
type CartState struct {
	Cart    *models.Cart        `json:"cart"`
	Summary *models.CartSummary `json:"summary"`
}

// IsItemInCart reports whether the loaded cart holds the product.
func (st *CartState) IsItemInCart(productID string) bool {
	return st.ItemQuantity(productID) > 0
}

// ItemQuantity returns the quantity of the product in the loaded cart, 0 when
// no cart is loaded.
func (st *CartState) ItemQuantity(productID string) int {
	if st == nil || st.Cart == nil {
		return 0
	}

	for _, item := range st.Cart.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}

	return 0
}

// Problems lists the current availability violations, see cart.ValidationErrors.
func (st *CartState) Problems() []string {
	if st == nil {
		return nil
	}

	return cartutil.ValidationErrors(st.Cart)
}

func (st *CartState) IsValid() bool {
	return len(st.Problems()) == 0
}

// CartView is the fully derived cart shape handed to the UI: the loaded state
// plus every computed aggregate, re-derived here regardless of what the
// stored cart or summary claim.
type CartView struct {
	Cart        *models.Cart        `json:"cart"`
	Summary     *models.CartSummary `json:"summary"`
	Subtotal    float64             `json:"subtotal"`
	Total       float64             `json:"total"`
	ItemCount   int                 `json:"item_count"`
	UniqueItems int                 `json:"unique_items"`
	Savings     float64             `json:"savings"`
	Valid       bool                `json:"valid"`
	Problems    []string            `json:"problems,omitempty"`
}

// View computes the display aggregates for the loaded state.
func (st *CartState) View() CartView {
	view := CartView{Valid: true}

	if st == nil {
		return view
	}

	view.Cart = st.Cart
	view.Summary = st.Summary
	view.Subtotal = cartutil.Subtotal(st.Cart)
	view.Total = cartutil.Total(st.Cart)
	view.ItemCount = cartutil.TotalItemCount(st.Cart)
	view.UniqueItems = cartutil.UniqueItemCount(st.Cart)
	view.Savings = cartutil.DiscountAmount(st.Cart)
	view.Problems = st.Problems()
	view.Valid = len(view.Problems) == 0

	return view
}

// CartService mediates every cart mutation through the commerce API and then
// refetches, rather than patching local state optimistically. A failed
// mutation leaves whatever the caller loaded before untouched.
type CartService struct {
	client    commerce.Client
	snapshots cache.SnapshotStore
}

func NewCartService(client commerce.Client, snapshots cache.SnapshotStore) *CartService {
	return &CartService{client: client, snapshots: snapshots}
}

// Load fetches the cart and its summary concurrently. Unauthenticated callers
// get an empty state without a network call. Either fetch may fail
// independently; the failure is logged and the slot stays nil.
func (s *CartService) Load(ctx context.Context, sess *models.Session) *CartState {

	state := &CartState{}

	if !sess.IsAuthenticated() {
		return state
	}

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		cart, err := s.client.GetCart(ctx, sess.Token)
		if err != nil {
			slog.Warn("Failed to load cart", slog.String("userId", sess.UserID), slog.String("error", err.Error()))

			return
		}

		state.Cart = cart
	}()

	go func() {
		defer wg.Done()

		summary, err := s.client.GetCartSummary(ctx, sess.Token)
		if err != nil {
			slog.Warn("Failed to load cart summary", slog.String("userId", sess.UserID), slog.String("error", err.Error()))

			return
		}

		state.Summary = summary
	}()

	wg.Wait()

	if state.Cart != nil {
		s.reconcileStoredTotal(sess, state.Cart)
		s.saveSnapshot(ctx, sess, state.Cart)
	}

	return state
}

// reconcileStoredTotal compares the upstream's stored total against the
// re-derived one. The stored value is display cache only; a mismatch is
// logged, never propagated.
func (s *CartService) reconcileStoredTotal(sess *models.Session, c *models.Cart) {
	derived := cartutil.Total(c)

	if math.Abs(derived-c.TotalAmount) > 0.01 {
		slog.Warn("Cart stored total disagrees with derived total",
			slog.String("userId", sess.UserID),
			slog.String("cartId", c.ID),
			slog.Float64("stored", c.TotalAmount),
			slog.Float64("derived", derived))
	}
}

func (s *CartService) saveSnapshot(ctx context.Context, sess *models.Session, c *models.Cart) {
	if err := s.snapshots.Save(ctx, sess.UserID, c); err != nil {
		slog.Warn("Failed to cache cart snapshot", slog.String("userId", sess.UserID), slog.String("error", err.Error()))
	}
}

// AddItem validates the request, performs exactly one upstream call and
// refetches on success. The returned state is nil when the result is a
// failure.
func (s *CartService) AddItem(ctx context.Context, sess *models.Session, req *models.AddItemRequest) (*CartState, OperationResult) {

	if req == nil || req.ProductID == "" {
		return nil, failure("A product is required")
	}

	if result, ok := checkQuantity(req.Quantity); !ok {
		return nil, result
	}

	if !sess.IsAuthenticated() {
		return nil, failure(signInMessage)
	}

	if _, err := s.client.AddCartItem(ctx, sess.Token, req); err != nil {
		slog.Warn("Add to cart failed", slog.String("userId", sess.UserID), slog.String("productId", req.ProductID), slog.String("error", err.Error()))

		return nil, failure(appErrors.Message(err))
	}

	return s.Load(ctx, sess), OperationResult{Success: true}
}

// UpdateQuantity follows the same contract as AddItem.
func (s *CartService) UpdateQuantity(ctx context.Context, sess *models.Session, req *models.UpdateQuantityRequest) (*CartState, OperationResult) {

	if req == nil || req.CartItemID == "" {
		return nil, failure("A cart item is required")
	}

	if result, ok := checkQuantity(req.Quantity); !ok {
		return nil, result
	}

	if !sess.IsAuthenticated() {
		return nil, failure(signInMessage)
	}

	if _, err := s.client.UpdateCartItem(ctx, sess.Token, req); err != nil {
		slog.Warn("Cart update failed", slog.String("userId", sess.UserID), slog.String("cartItemId", req.CartItemID), slog.String("error", err.Error()))

		return nil, failure(appErrors.Message(err))
	}

	return s.Load(ctx, sess), OperationResult{Success: true}
}

// RemoveItem removes a single cart line.
func (s *CartService) RemoveItem(ctx context.Context, sess *models.Session, cartItemID string) (*CartState, OperationResult) {

	if cartItemID == "" {
		return nil, failure("A cart item is required")
	}

	if !sess.IsAuthenticated() {
		return nil, failure(signInMessage)
	}

	if err := s.client.RemoveCartItem(ctx, sess.Token, cartItemID); err != nil {
		slog.Warn("Cart remove failed", slog.String("userId", sess.UserID), slog.String("cartItemId", cartItemID), slog.String("error", err.Error()))

		return nil, failure(appErrors.Message(err))
	}

	return s.Load(ctx, sess), OperationResult{Success: true}
}

// Clear empties the cart. Clearing an already empty cart succeeds.
func (s *CartService) Clear(ctx context.Context, sess *models.Session) (*CartState, OperationResult) {

	if !sess.IsAuthenticated() {
		return nil, failure(signInMessage)
	}

	if err := s.client.ClearCart(ctx, sess.Token); err != nil {
		slog.Warn("Cart clear failed", slog.String("userId", sess.UserID), slog.String("error", err.Error()))

		return nil, failure(appErrors.Message(err))
	}

	return s.Load(ctx, sess), OperationResult{Success: true}
}

// MergeCached reconciles the cached snapshot into the server cart after a
// fresh login. The snapshot mirrors the last cart this service saw, so most of
// it already exists upstream; only the amount by which a snapshot line exceeds
// the server cart is pushed. Merging against an unchanged server cart is a
// no-op, and the snapshot is kept on failure so a retry can finish the job.
func (s *CartService) MergeCached(ctx context.Context, sess *models.Session) (*CartState, OperationResult) {

	if !sess.IsAuthenticated() {
		return nil, failure(signInMessage)
	}

	snapshot, err := s.snapshots.Get(ctx, sess.UserID)
	if err != nil {
		slog.Warn("Failed to read cart snapshot", slog.String("userId", sess.UserID), slog.String("error", err.Error()))
	}

	if snapshot == nil || len(snapshot.Items) == 0 {
		return s.Load(ctx, sess), OperationResult{Success: true}
	}

	serverCart, err := s.client.GetCart(ctx, sess.Token)
	if err != nil {
		return nil, failure(appErrors.Message(err))
	}

	delta := snapshotDelta(snapshot, serverCart)

	if len(delta.Items) == 0 {
		return s.Load(ctx, sess), OperationResult{Success: true}
	}

	expected := cartutil.Merge(delta, serverCart)

	for _, item := range delta.Items {
		req := &models.AddItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}

		if _, err := s.client.AddCartItem(ctx, sess.Token, req); err != nil {
			slog.Warn("Cart merge push failed", slog.String("userId", sess.UserID), slog.String("productId", item.ProductID), slog.String("error", err.Error()))

			return nil, failure(appErrors.Message(err))
		}
	}

	if err := s.snapshots.Clear(ctx, sess.UserID); err != nil {
		slog.Warn("Failed to clear cart snapshot after merge", slog.String("userId", sess.UserID), slog.String("error", err.Error()))
	}

	state := s.Load(ctx, sess)

	if state.Cart != nil && cartutil.TotalItemCount(state.Cart) != cartutil.TotalItemCount(expected) {
		slog.Warn("Merged cart disagrees with expected merge result",
			slog.String("userId", sess.UserID),
			slog.Int("expectedItems", cartutil.TotalItemCount(expected)),
			slog.Int("actualItems", cartutil.TotalItemCount(state.Cart)))
	}

	return state, OperationResult{Success: true}
}

// snapshotDelta returns the snapshot lines, reduced by whatever quantity the
// server cart already holds for the same product. Lines fully covered by the
// server are dropped.
func snapshotDelta(snapshot, server *models.Cart) *models.Cart {
	serverQty := make(map[string]int, len(server.Items))
	for _, item := range server.Items {
		serverQty[item.ProductID] += item.Quantity
	}

	delta := &models.Cart{}

	for _, item := range snapshot.Items {
		extra := item.Quantity - serverQty[item.ProductID]
		if extra <= 0 {
			continue
		}

		line := item
		line.Quantity = extra
		delta.Items = append(delta.Items, line)
	}

	return delta
}

func checkQuantity(quantity int) (OperationResult, bool) {
	if quantity <= 0 {
		return failure("Quantity must be at least 1"), false
	}

	if quantity > cartutil.MaxQuantityPerItem {
		return failure("Quantity cannot exceed 999"), false
	}

	return OperationResult{}, true
}
