package server

import (
	"fmt"
	"net/http"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/config"
	custommiddleware "storefront/internal/middleware"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config   *config.Config
	logger   *zap.Logger
	sessions session.Store
	redis    *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Redis is needed by the redis session backend and the rate limiter
	var redisClient *redis.Client
	if cfg.Session.Backend == "redis" || cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// Initialize session store
	var sessions session.Store
	if cfg.Session.Backend == "redis" {
		sessions = session.NewRedisStore(redisClient, "storefront:session")
	} else {
		sessions = session.NewMemoryStore(time.Minute)
	}

	// Initialize catalog and services
	cat := catalog.New(catalog.DefaultSeed())
	cartService := service.NewCartService(cat, logger)
	reviewService := service.NewReviewService(logger)

	// Initialize handlers
	productHandler := transport.NewProductHandler(cat, reviewService, logger)
	reviewHandler := transport.NewReviewHandler(reviewService, logger)
	cartHandler := transport.NewCartHandler(cartService, logger)

	sessionConfig := custommiddleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL(),
		Secure:     cfg.Server.Env == "production",
	}

	// Register API routes behind the session middleware. The rate limiter
	// keys on the session id, so it sits inside the session group.
	router.Group(func(r chi.Router) {
		r.Use(custommiddleware.SessionMiddleware(sessions, sessionConfig, logger))

		if cfg.RateLimit.Enabled {
			r.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
				RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
				Window:            cfg.RateLimit.Window(),
				KeyPrefix:         "storefront:ratelimit",
			}, logger))
		}

		productHandler.RegisterRoutes(r, reviewHandler)
		cartHandler.RegisterRoutes(r)
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:   cfg,
		logger:   logger,
		sessions: sessions,
		redis:    redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if store, ok := s.sessions.(*session.MemoryStore); ok {
		store.Close()
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
