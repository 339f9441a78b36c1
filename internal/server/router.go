package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/export"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/service"
)

// Deps are the collaborators the router needs beyond configuration.
type Deps struct {
	Logger  *slog.Logger
	Checker service.Checker
	Clock   func() time.Time
}

// NewRouter wires services, handlers and middleware into a chi router.
func NewRouter(cfg config.Config, deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService())
	breachHandler := handler.NewBreachHandler(service.NewBreachService(deps.Checker))
	exportHandler := handler.NewExportHandler(service.NewExportService(export.New(deps.Clock)))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/generate", genHandler.HandleGenerate)
	r.Post("/strength", genHandler.HandleStrength)
	r.Post("/check-breach", breachHandler.HandleCheckBreach)
	r.Post("/export", exportHandler.HandleExport)

	mountStatic(r, cfg.StaticDir, logger)

	return r
}

// mountStatic serves the companion front-end when its directory exists.
func mountStatic(r chi.Router, dir string, logger *slog.Logger) {
	if dir == "" {
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Info("static directory not found, front-end disabled", "dir", dir)
		return
	}

	index := filepath.Join(dir, "index.html")
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, index)
	})
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
}
