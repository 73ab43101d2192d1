package server

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"recipeblog/internal/handlers"
	"recipeblog/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.RequestLogger(log.Logger))
	r.Use(middlewares.NewPrometheusMiddleware(s.registry).Instrument)

	ch := handlers.NewCommonHandler(s.db, s.views)
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET")
	r.HandleFunc("/contact", ch.Contact).Methods("GET")
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods("GET")

	s.registerRecipeRoutes(r)
	s.registerStaticRoutes(r)

	return r
}

func (s *Server) registerRecipeRoutes(r *mux.Router) {
	hh := handlers.NewHomeHandler(s.homeService, s.views)
	ch := handlers.NewCategoryHandler(s.categoryService, s.recipeService, s.views)
	rh := handlers.NewRecipeHandler(s.recipeService, s.views)
	sh := handlers.NewSubmitHandler(s.recipeService, s.flashes, s.views)

	r.HandleFunc("/", hh.Homepage).Methods("GET")
	r.HandleFunc("/categories", ch.ExploreCategories).Methods("GET")
	r.HandleFunc("/category/{id}", ch.ExploreCategoryByID).Methods("GET")
	r.HandleFunc("/recipes/{id}", rh.ExploreRecipe).Methods("GET")
	r.HandleFunc("/search", rh.SearchRecipe).Methods("POST")
	r.HandleFunc("/explore-latest", rh.ExploreLatest).Methods("GET")
	r.HandleFunc("/explore-random", rh.ExploreRandom).Methods("GET")
	r.HandleFunc("/submit-recipe", sh.SubmitRecipe).Methods("GET")
	r.HandleFunc("/submit-recipe", sh.SubmitRecipeOnPost).Methods("POST")
}

// registerStaticRoutes serves category images, uploads and stylesheets from
// the public directory.
func (s *Server) registerStaticRoutes(r *mux.Router) {
	dirs := map[string]string{
		"/img/":     filepath.Join(s.publicDir, "img"),
		"/css/":     filepath.Join(s.publicDir, "css"),
		"/uploads/": s.uploadDir,
	}
	for prefix, dir := range dirs {
		fs := http.FileServer(http.Dir(dir))
		r.PathPrefix(prefix).Handler(http.StripPrefix(prefix, fs)).Methods("GET", "HEAD")
	}
}
