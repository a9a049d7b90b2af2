package transport

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductDetailResponse represents the product detail view
type ProductDetailResponse struct {
	Product         domain.Product  `json:"product"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Reviews         []ReviewView    `json:"reviews"`
}

// ReviewView represents a review rendered for display. Author and text are
// HTML-escaped here, at read time.
type ReviewView struct {
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Stars     string    `json:"stars"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newReviewView(r domain.Review) ReviewView {
	return ReviewView{
		Author:    r.DisplayAuthor(),
		Rating:    r.Rating,
		Stars:     service.RenderStars(r.Rating),
		Text:      r.DisplayText(),
		CreatedAt: r.CreatedAt,
	}
}

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	catalog       *catalog.Catalog
	reviewService service.ReviewService
	logger        *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(cat *catalog.Catalog, reviewService service.ReviewService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog:       cat,
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers all catalog routes, mounting the review routes
// under each product.
func (h *ProductHandler) RegisterRoutes(r chi.Router, reviews *ReviewHandler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/discounted", h.ListDiscounted)

		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", h.Detail)
			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", reviews.List)
				r.Post("/", reviews.Create)
			})
		})
	})
}

// List returns the catalog sorted ascending by price
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.List())
}

// ListDiscounted returns the catalog with category discounts applied
func (h *ProductHandler) ListDiscounted(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.ListDiscounted())
}

// Detail returns a single product with its discounted price and the
// session's reviews for it
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := productIDParam(r)

	product, err := h.catalog.FindByID(id)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Missing session in request context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	reviews := h.reviewService.Reviews(sess, id)
	views := make([]ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, newReviewView(review))
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductDetailResponse{
		Product:         product,
		DiscountedPrice: catalog.DiscountedPrice(product),
		Reviews:         views,
	})
}

// productIDParam parses the product id path parameter. A non-numeric id
// yields 0, which no product carries.
func productIDParam(r *http.Request) int {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		return 0
	}
	return id
}
