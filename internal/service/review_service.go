package service

import (
	"strings"
	"time"

	"storefront/internal/domain"

	"go.uber.org/zap"
)

const anonymousAuthor = "Anonymous"

// ReviewService manages the per-session product reviews. Reviews are
// append-only; there is no edit or delete.
type ReviewService interface {
	AddReview(sess *domain.Session, productID int, author string, rating int, text string) bool
	Reviews(sess *domain.Session, productID int) []domain.Review
}

type reviewService struct {
	logger *zap.Logger
}

// NewReviewService creates a new instance of ReviewService.
func NewReviewService(logger *zap.Logger) ReviewService {
	return &reviewService{logger: logger}
}

// AddReview appends a review for the product and reports whether it was
// stored. Submissions with a non-positive product id or blank text are
// dropped. A blank author defaults to Anonymous and the rating is clamped
// to [1,5]. The raw author and text are stored; escaping happens at render
// time via the domain.Review display accessors.
func (s *reviewService) AddReview(sess *domain.Session, productID int, author string, rating int, text string) bool {
	text = strings.TrimSpace(text)
	if productID <= 0 || text == "" {
		s.logger.Debug("Dropping review submission",
			zap.Int("product_id", productID),
			zap.String("session_id", sess.ID),
		)
		return false
	}

	author = strings.TrimSpace(author)
	if author == "" {
		author = anonymousAuthor
	}
	rating = clampRating(rating, 1, 5)

	if sess.Reviews == nil {
		sess.Reviews = make(map[int][]domain.Review)
	}
	sess.Reviews[productID] = append(sess.Reviews[productID], domain.Review{
		Author:    author,
		Rating:    rating,
		Text:      text,
		CreatedAt: time.Now(),
	})
	return true
}

// Reviews returns the reviews for a product in insertion order.
func (s *reviewService) Reviews(sess *domain.Session, productID int) []domain.Review {
	reviews := sess.Reviews[productID]
	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	return out
}

// RenderStars renders a rating as filled stars followed by empty stars,
// clamping the rating to [0,5].
func RenderStars(rating int) string {
	rating = clampRating(rating, 0, 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func clampRating(rating, min, max int) int {
	if rating < min {
		return min
	}
	if rating > max {
		return max
	}
	return rating
}
