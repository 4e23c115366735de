package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"techmart-assistant/internal/ai"
	"techmart-assistant/internal/catalog"
	"techmart-assistant/internal/config"
	custommiddleware "techmart-assistant/internal/middleware"
	"techmart-assistant/internal/repository"
	"techmart-assistant/internal/service"
	"techmart-assistant/internal/transport"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
	redis  *redis.Client
}

// NewServer wires the assistant: catalog, session store, AI clients,
// dialogue service and HTTP transport. db and redisClient may be nil; the
// server then runs fully in-process.
func NewServer(cfg *config.Config, logger *zap.Logger, cat *catalog.Catalog, db *sql.DB, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	// Basic middleware stack
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env != "production"))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	if redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: 60,
			Window:            time.Minute,
			KeyPrefix:         "rate_limit",
		}, logger))
	}

	// External AI clients: nil means the capability runs in demo mode.
	// The choice is made once here, never at call sites.
	var textGen ai.TextGenerator
	if cfg.OpenAIConfigured() {
		textGen = ai.NewOpenAIGenerator(cfg.AI.OpenAIEndpoint, cfg.AI.OpenAIKey, cfg.AI.OpenAIDeployment)
		logger.Info("Text generation service configured")
	}

	var vision ai.VisionAnalyzer
	if cfg.VisionConfigured() {
		vision = ai.NewVisionClient(cfg.AI.VisionEndpoint, cfg.AI.VisionKey)
		logger.Info("Vision service configured")
	}

	var speech ai.SpeechTranscriber
	if cfg.SpeechConfigured() {
		speech = ai.NewSpeechClient(cfg.AI.SpeechRegion, cfg.AI.SpeechKey)
		logger.Info("Speech service configured")
	}

	// Session store: Redis-backed when available, in-memory otherwise
	var sessions repository.SessionRepository
	if redisClient != nil {
		sessions = repository.NewRedisSessionRepository(redisClient)
		logger.Info("Using Redis session store")
	} else {
		sessions = repository.NewMemorySessionRepository()
		logger.Info("Using in-memory session store")
	}

	responder := service.NewResponder(cat, textGen, logger)
	dialog := service.NewDialogService(sessions, responder, cat, vision, speech, logger)

	status := transport.HealthStatus{
		Status:      "healthy",
		BotReady:    true,
		Environment: cfg.Server.Env,
		ServicesConfigured: transport.ServicesSummary{
			OpenAI: cfg.OpenAIConfigured(),
			Speech: cfg.SpeechConfigured(),
			Vision: cfg.VisionConfigured(),
		},
	}

	handler := transport.NewChatHandler(dialog, status, logger)
	handler.RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
