package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ytget/yt-fetch/internal/download"
	"github.com/ytget/yt-fetch/internal/platform"
)

// config holds internal HTTP server configuration
type config struct {
	addr    string
	workDir string
	version string
	logger  *slog.Logger
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithWorkDir sets the directory that holds per-request download folders
func WithWorkDir(dir string) Option {
	return func(c *config) {
		c.workDir = dir
	}
}

// WithVersion sets the version reported by /health
func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

// WithLogger sets the request logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates the HTTP API in front of downloader
func NewServer(downloader download.Downloader, opts ...Option) (*Server, error) {
	cfg := &config{
		addr:    "localhost:8080",
		version: "dev",
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.workDir != "" {
		if err := platform.EnsureDir(cfg.workDir); err != nil {
			return nil, goerr.Wrap(err, "failed to create work directory", goerr.V("path", cfg.workDir))
		}
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(cfg.logger))
	router.Use(middleware.Recoverer)

	router.Get("/health", healthHandler(cfg.version))

	downloadHandler := NewDownloadHandler(downloader, cfg.workDir, cfg.logger)
	router.Post("/api/download", downloadHandler.Handle)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
