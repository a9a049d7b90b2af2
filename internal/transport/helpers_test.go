package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/service"
	"storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Product{
		{ID: 101, Name: "Headphones", Category: "Electronics", Price: decimal.RequireFromString("10.00")},
		{ID: 102, Name: "Mug", Category: "Kitchen", Price: decimal.RequireFromString("5.00")},
		{ID: 103, Name: "Tote", Category: "Accessories", Price: decimal.RequireFromString("18.50")},
	})
}

// newTestRouter wires the handlers behind the session middleware the same
// way the server does, backed by a memory session store.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	logger := zap.NewNop()
	store := session.NewMemoryStore(0)

	cat := testCatalog()
	cartService := service.NewCartService(cat, logger)
	reviewService := service.NewReviewService(logger)

	productHandler := NewProductHandler(cat, reviewService, logger)
	reviewHandler := NewReviewHandler(reviewService, logger)
	cartHandler := NewCartHandler(cartService, logger)

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(store, middleware.SessionConfig{
			CookieName: "storefront_session",
			TTL:        time.Hour,
		}, logger))
		productHandler.RegisterRoutes(r, reviewHandler)
		cartHandler.RegisterRoutes(r)
	})

	return router
}

// client carries the session cookie between requests like a browser would.
type client struct {
	t       *testing.T
	router  chi.Router
	cookies []*http.Cookie
}

func newClient(t *testing.T, router chi.Router) *client {
	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
