package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Aayushkhairnar2101/Billing-system/config"
	"github.com/Aayushkhairnar2101/Billing-system/internal/handlers"
	"github.com/Aayushkhairnar2101/Billing-system/internal/services"
	"github.com/Aayushkhairnar2101/Billing-system/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxRequestBytes caps request bodies at 50 MiB, matching the limit the
// frontend relies on for inline product images.
const maxRequestBytes = 50 << 20

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// New constructs a Server with basic middleware and defaults, opening the
// flat-file store and seeding the default admin account.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	db, err := store.Open(cfg.DataDir, slog.Default())
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(db)
	productRepo := store.NewProductRepository(db)
	invoiceRepo := store.NewInvoiceRepository(db)

	identityService := services.NewIdentityService(userRepo)
	catalogService := services.NewCatalogService(productRepo)
	billingService := services.NewBillingService(invoiceRepo)

	if err := identityService.SeedAdmin(ctx); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	port := cfg.ServerPort
	if port == 0 {
		port = 5000
	}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
		middleware.RequestSize(maxRequestBytes),
	)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	router.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health(port))
		handlers.AuthRouter(r, identityService)
		r.Route("/products", func(r chi.Router) {
			handlers.ProductRouter(r, catalogService)
		})
		r.Route("/invoices", func(r chi.Router) {
			handlers.InvoiceRouter(r, billingService)
		})
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	return s.httpServer.Close()
}
