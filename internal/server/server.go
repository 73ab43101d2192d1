package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"recipeblog/internal/config"
	"recipeblog/internal/database"
	"recipeblog/internal/flash"
	"recipeblog/internal/repositories"
	"recipeblog/internal/services"
	"recipeblog/internal/storage"
	"recipeblog/internal/views"
)

type Server struct {
	port            int
	publicDir       string
	uploadDir       string
	httpServer      *http.Server
	db              database.Service
	views           *views.Renderer
	flashes         *flash.Store
	registry        prometheus.Registerer
	gatherer        prometheus.Gatherer
	homeService     services.HomeService
	categoryService services.CategoryService
	recipeService   services.RecipeService
}

func NewServer(cfg *config.Config, db database.Service) (*Server, error) {
	return newServer(cfg, db, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func newServer(cfg *config.Config, db database.Service, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Server, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	images, err := storage.NewDiskImageStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	categoryRepo := repositories.NewCategoryRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)

	s := &Server{
		port:            cfg.Port,
		publicDir:       cfg.PublicDir,
		uploadDir:       cfg.UploadDir,
		db:              db,
		views:           renderer,
		flashes:         flash.NewStore(cfg.SessionKey, cfg.CookieSecure),
		registry:        reg,
		gatherer:        gatherer,
		homeService:     services.NewHomeService(categoryRepo, recipeRepo),
		categoryService: services.NewCategoryService(categoryRepo),
		recipeService:   services.NewRecipeService(recipeRepo, images, services.NewSubmissionNotifier(cfg.SMTP)),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s, nil
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}
	if err := s.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Error disconnecting from MongoDB")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
