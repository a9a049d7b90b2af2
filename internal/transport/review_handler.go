package transport

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/service"

	"go.uber.org/zap"
)

// CreateReviewRequest represents the review submission payload. No fields
// are required at the transport level: the review store clamps the rating
// and silently drops blank submissions.
type CreateReviewRequest struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// ReviewListResponse represents the reviews for one product
type ReviewListResponse struct {
	ProductID int          `json:"product_id"`
	Reviews   []ReviewView `json:"reviews"`
}

// ReviewHandler handles HTTP requests for product reviews
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// List returns the session's reviews for a product
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSession(r.Context()); !ok {
		h.logger.Error("Missing session in request context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.respondReviews(w, r, productIDParam(r))
}

// Create appends a review and responds with the post-submit review list.
// Rejected submissions (unknown or zero product id, blank text) still get a
// 200 with the unchanged list; the store never surfaces them as errors.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Review submission decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		h.logger.Error("Missing session in request context")
		middleware.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	id := productIDParam(r)
	if added := h.reviewService.AddReview(sess, id, req.Author, req.Rating, req.Text); added {
		h.logger.Info("Review added",
			zap.Int("product_id", id),
			zap.String("session_id", sess.ID),
		)
	}

	h.respondReviews(w, r, id)
}

func (h *ReviewHandler) respondReviews(w http.ResponseWriter, r *http.Request, productID int) {
	sess, _ := middleware.GetSession(r.Context())

	reviews := h.reviewService.Reviews(sess, productID)
	views := make([]ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, newReviewView(review))
	}

	middleware.RespondWithJSON(w, http.StatusOK, ReviewListResponse{
		ProductID: productID,
		Reviews:   views,
	})
}
