package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/realtor/pkg/domain"
	"github.com/umputun/realtor/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/listings.go -pkg mocks -skip-ensure -fmt goimports . ListingService
//go:generate moq -out mocks/favorites.go -pkg mocks -skip-ensure -fmt goimports . FavoritesService
//go:generate moq -out mocks/leads.go -pkg mocks -skip-ensure -fmt goimports . LeadService

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	listings  ListingService
	favorites FavoritesService
	leads     LeadService
	feeds     *feed.Generator
	templates *template.Template
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ListingService provides listings, never fails
type ListingService interface {
	FetchFeatured(ctx context.Context) []domain.Listing
	Search(ctx context.Context, criteria domain.FilterCriteria) []domain.Listing
}

// FavoritesService manages the favorites set
type FavoritesService interface {
	Toggle(ctx context.Context, id int64) []int64
	IsFavorite(id int64) bool
	Count() int
	IDs() []int64
}

// LeadService submits forms to the CRM
type LeadService interface {
	SubmitLead(ctx context.Context, fields map[string]string) domain.SubmitResult
	Subscribe(ctx context.Context, email string, filters domain.FilterCriteria) domain.SubmitResult
	ScheduleViewing(ctx context.Context, v domain.Viewing) domain.SubmitResult
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// Params holds services used by the server
type Params struct {
	Listings  ListingService
	Favorites FavoritesService
	Leads     LeadService
	Version   string
	Debug     bool
}

// New initializes a new server instance
func New(cfg ConfigProvider, p Params) *Server {
	s := &Server{
		config:    cfg,
		listings:  p.Listings,
		favorites: p.Favorites,
		leads:     p.Leads,
		feeds:     feed.NewGenerator(cfg.GetBaseURL()),
		templates: template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")),
		version:   p.Version,
		debug:     p.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("realtor", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /listings/featured", s.featuredHandler)
		r.HandleFunc("GET /listings/search", s.searchQueryHandler)
		r.HandleFunc("POST /listings/search", s.searchHandler)

		r.HandleFunc("GET /favorites", s.favoritesHandler)
		r.HandleFunc("GET /favorites/{id}", s.isFavoriteHandler)
		r.HandleFunc("POST /favorites/{id}", s.toggleFavoriteHandler)

		r.HandleFunc("POST /leads", s.leadHandler)
		r.HandleFunc("POST /viewings", s.viewingHandler)
		r.HandleFunc("POST /newsletter", s.newsletterHandler)
	})

	// presentation routes
	s.router.HandleFunc("GET /featured", s.featuredCardsHandler)
	s.router.HandleFunc("GET /rss/featured", s.featuredRSSHandler)
	s.router.HandleFunc("GET /rss/search", s.searchRSSHandler)
}
