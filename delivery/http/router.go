package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
	"github.com/eggmansigma/zuckmyeggs/pkg/metrics"
)

type Router struct {
	RFQHandler      *RFQHandler
	QuoteHandler    *QuoteHandler
	MatchHandler    *MatchHandler
	CompareHandler  *CompareHandler
	ShareHandler    *ShareHandler
	SupplierHandler *SupplierHandler
	DeckHandler     *DeckHandler
	HealthHandler   *HealthHandler
	Metrics         *metrics.HTTPMetrics
	DeckToken       string
	AppLogger       logger.LoggerInterface
}

func NewRouter(
	rfqHandler *RFQHandler,
	quoteHandler *QuoteHandler,
	matchHandler *MatchHandler,
	compareHandler *CompareHandler,
	shareHandler *ShareHandler,
	supplierHandler *SupplierHandler,
	deckHandler *DeckHandler,
	healthHandler *HealthHandler,
	appMetrics *metrics.HTTPMetrics,
	deckToken string,
	appLogger logger.LoggerInterface,
) *Router {
	return &Router{
		RFQHandler:      rfqHandler,
		QuoteHandler:    quoteHandler,
		MatchHandler:    matchHandler,
		CompareHandler:  compareHandler,
		ShareHandler:    shareHandler,
		SupplierHandler: supplierHandler,
		DeckHandler:     deckHandler,
		HealthHandler:   healthHandler,
		Metrics:         appMetrics,
		DeckToken:       deckToken,
		AppLogger:       appLogger,
	}
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	// Add middleware
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(RequestLoggerMiddleware(r.AppLogger))
	router.Use(r.Metrics.Middleware)

	// Health check and metrics endpoints
	router.Get("/health", r.HealthHandler.HealthCheckHandler)
	router.Method(http.MethodGet, "/metrics", r.Metrics.Handler())

	router.Route("/api/v1", func(api chi.Router) {
		// RFQ routes
		api.Route("/rfqs", func(rfqs chi.Router) {
			rfqs.Post("/", r.RFQHandler.CreateHandler)
			rfqs.Post("/draft", r.RFQHandler.DraftHandler)
			rfqs.Get("/{id}", r.RFQHandler.GetByIDHandler)
			rfqs.Get("/{id}/export", r.RFQHandler.ExportCSVHandler)
			rfqs.Get("/{id}/matches", r.MatchHandler.ShortlistHandler)
			rfqs.Get("/{id}/comparison", r.CompareHandler.ComparisonHandler)
			rfqs.Post("/{id}/quotes", r.QuoteHandler.AddHandler)
			rfqs.Get("/{id}/quotes", r.QuoteHandler.ListHandler)
		})
		// Supplier routes
		api.Route("/suppliers", func(suppliers chi.Router) {
			suppliers.Post("/", r.SupplierHandler.CreateHandler)
			suppliers.Get("/", r.SupplierHandler.ListHandler)
			suppliers.Get("/export", r.SupplierHandler.ExportCSVHandler)
			suppliers.Post("/import", r.SupplierHandler.ImportCSVHandler)
			suppliers.Get("/{id}", r.SupplierHandler.GetByIDHandler)
			suppliers.Put("/{id}", r.SupplierHandler.UpdateHandler)
		})
		// Deck routes - require the X-Deck-Token header
		api.Route("/deck", func(deck chi.Router) {
			deck.Use(DeckTokenMiddleware(r.DeckToken, r.AppLogger))
			deck.Get("/", r.DeckHandler.GetHandler)
			deck.Post("/facts", r.DeckHandler.AddFactHandler)
			deck.Put("/progress", r.DeckHandler.SetProgressHandler)
		})
	})

	// Public client share view - authenticated by the share token in the path
	router.Get("/share/{id}/{token}", r.ShareHandler.SharedViewHandler)

	return router
}
