package transport

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/pricing"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AddItemRequest represents the add-to-cart payload
type AddItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
	Quantity  int `json:"quantity"`
}

// UpdateCartRequest represents the bulk quantity update payload, keyed by
// product id
type UpdateCartRequest struct {
	Quantities map[int]int `json:"quantities" validate:"required"`
}

// CartLineView is one cart row with its tax-inclusive display total
type CartLineView struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse is the cart read view returned by every cart endpoint
type CartResponse struct {
	Lines  []CartLineView `json:"lines"`
	Totals domain.Totals  `json:"totals"`
}

// CartHandler handles HTTP requests for cart operations
type CartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/items", h.AddItem)
		r.Put("/", h.Update)
		r.Delete("/", h.Clear)
	})
}

// Get returns the current cart view
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Missing session in request context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondCart(w, sess)
}

// AddItem adds a product to the cart. Unknown products leave the cart
// unchanged; the response is the post-op cart view either way.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Missing session in request context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.cartService.AddToCart(sess, req.ProductID, req.Quantity)
	h.respondCart(w, sess)
}

// Update applies new quantities keyed by product id; zero removes a line
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Cart update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Missing session in request context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.cartService.UpdateQuantities(sess, req.Quantities)
	h.respondCart(w, sess)
}

// Clear empties the cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Missing session in request context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.cartService.ClearCart(sess)
	h.respondCart(w, sess)
}

func (h *CartHandler) respondCart(w http.ResponseWriter, sess *domain.Session) {
	lines := make([]CartLineView, 0, len(sess.Cart))
	for _, line := range sess.Cart {
		lines = append(lines, CartLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: pricing.LineTotal(line.Price, line.Quantity),
		})
	}

	middleware.RespondWithJSON(w, http.StatusOK, CartResponse{
		Lines:  lines,
		Totals: h.cartService.Totals(sess),
	})
}
