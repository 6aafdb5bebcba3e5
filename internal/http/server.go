// README: API gateway; builds the gin engine and delegates to module services.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"

	"gocab/internal/http/handlers"
	"gocab/internal/http/middleware"
	"gocab/internal/modules/booking"
	"gocab/internal/modules/catalog"
	"gocab/internal/modules/pricing"
)

type ServerDeps struct {
	Catalog      *catalog.Catalog
	Pricing      *pricing.Service
	Booking      *booking.Service
	Places       handlers.PlaceFinder
	QuoteTimeout time.Duration

	// RateCounter may be nil to disable rate limiting.
	RateCounter middleware.RateCounter
	RateLimit   int
	RateWindow  time.Duration

	NewRelic *newrelic.Application
	Logger   logrus.FieldLogger
}

type Server struct {
	catalog *handlers.CatalogHandler
	quotes  *handlers.QuoteHandler
	booking *handlers.BookingHandler
	places  *handlers.PlacesHandler

	rateLimit gin.HandlerFunc
	nrApp     *newrelic.Application
	log       logrus.FieldLogger
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		catalog:   handlers.NewCatalogHandler(deps.Catalog),
		quotes:    handlers.NewQuoteHandler(deps.Pricing, deps.QuoteTimeout),
		booking:   handlers.NewBookingHandler(deps.Booking),
		places:    handlers.NewPlacesHandler(deps.Places),
		rateLimit: middleware.RateLimit(deps.RateCounter, deps.RateLimit, deps.RateWindow, log),
		nrApp:     deps.NewRelic,
		log:       log,
	}
}

// Routes returns the engine with global middleware and all routes.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(s.log))
	r.Use(middleware.Logging(s.log))
	if s.nrApp != nil {
		r.Use(nrgin.Middleware(s.nrApp))
	}
	s.registerRoutes(r)
	return r
}
