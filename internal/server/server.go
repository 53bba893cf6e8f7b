// Package server wires the catalog, playground and supporting stores
// into the gin router.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jsrefhub/backend/internal/catalog"
	"github.com/jsrefhub/backend/internal/config"
	"github.com/jsrefhub/backend/internal/drafts"
	httphandlers "github.com/jsrefhub/backend/internal/http"
	"github.com/jsrefhub/backend/internal/logging"
	"github.com/jsrefhub/backend/internal/middleware"
	"github.com/jsrefhub/backend/internal/monitoring"
	"github.com/jsrefhub/backend/internal/pagecache"
	"github.com/jsrefhub/backend/internal/playground"
	"github.com/jsrefhub/backend/internal/render"
	"github.com/jsrefhub/backend/internal/sandbox"
	"github.com/jsrefhub/backend/internal/ws"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router *gin.Engine
	pool   *sandbox.Pool
	log    *logging.Logger
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	metrics := monitoring.NewMetrics()

	// Content catalog
	cat := catalog.NewManager()
	seeder := catalog.NewSeeder(cat, cfg.Content.Dir, log.Named("seeder"))
	if err := seeder.SeedPages(); err != nil {
		return nil, err
	}
	if err := seeder.SeedDefaults(); err != nil {
		return nil, err
	}
	metrics.PagesRegistered.Set(float64(cat.Count()))

	// Sandboxed code runner
	sandboxCfg := sandbox.Config{
		Timeout:       cfg.Sandbox.Timeout,
		MaxCallStack:  1024,
		EnableConsole: true,
	}
	pool, err := sandbox.NewPool(sandboxCfg, cfg.Sandbox.PoolSize)
	if err != nil {
		return nil, err
	}

	pg := playground.NewService(pool, cfg.Sandbox.HistorySize, metrics, log.Named("playground"))

	// Draft persistence and offline page cache
	draftStore, err := drafts.NewStore(cfg.Content.DraftsDir)
	if err != nil {
		pool.Close()
		return nil, err
	}
	cache := pagecache.New()
	renderer := render.New()

	handlers := httphandlers.NewHandlers(cat, pg, draftStore, cache, renderer, metrics, log.Named("http"))
	wsHandler := ws.NewHandler(pg, metrics, log.Named("ws"))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(middleware.Metrics(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Catalog
	router.GET("/pages", handlers.ListPages)
	router.GET("/pages/:id", handlers.GetPage)
	router.GET("/pages/:id/html", handlers.PageHTML)
	router.GET("/pages/:id/reset", handlers.ResetExample)
	router.GET("/search", handlers.Search)

	// Playground
	router.POST("/execute", handlers.Execute)
	router.GET("/runs", handlers.ListRuns)

	// Drafts
	router.GET("/drafts", handlers.ListDrafts)
	router.GET("/drafts/:id", handlers.GetDraft)
	router.PUT("/drafts/:id", handlers.SaveDraft)
	router.DELETE("/drafts/:id", handlers.DeleteDraft)

	// Observability
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		metrics.Registry(), promhttp.HandlerOpts{})))

	// WebSocket
	router.GET("/stream", wsHandler.HandleConnection)

	return &Server{
		router: router,
		pool:   pool,
		log:    log,
	}, nil
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	s.log.Info("starting jsref backend", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close releases the sandbox pool.
func (s *Server) Close() error {
	return s.pool.Close()
}
