// README: Entry point; loads config, wires services, serves the HTTP API and shuts down gracefully.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"gocab/internal/config"
	httptransport "gocab/internal/http"
	"gocab/internal/http/middleware"
	"gocab/internal/infra"
	"gocab/internal/maps"
	"gocab/internal/modules/booking"
	"gocab/internal/modules/catalog"
	"gocab/internal/modules/pricing"
	internalredis "gocab/internal/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	infra.ConfigureLogger(log.StandardLogger(), cfg.Log.Level, cfg.Log.Format)
	logger := log.StandardLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	nrApp, err := infra.NewNewRelic(cfg.NewRelic)
	if err != nil {
		log.WithError(err).Warn("new relic disabled")
	}

	cat := catalog.Default()
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.WithError(err).Fatal("connect postgres")
		}
		cat, err = catalog.Load(ctx, catalog.NewStore(dbPool))
		dbPool.Close()
		if err != nil {
			log.WithError(err).Fatal("load catalog rates")
		}
		log.Info("catalog rates loaded from postgres")
	}

	var rateCounter middleware.RateCounter
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr, nrApp)
		if err != nil {
			log.WithError(err).Fatal("connect redis")
		}
		defer redisClient.Close()
		rateCounter = internalredis.NewRateLimitStore(redisClient)
	}

	if cfg.Maps.APIKey == "" {
		log.Warn("GOCAB_MAPS_KEY is empty; outstation quotes and places will be unavailable")
	}
	mapsHandle := maps.NewHandle(cfg.Maps.APIKey)
	routeSvc := maps.NewRouteService(mapsHandle, cfg.Maps.Region, cfg.Maps.Language)
	placesSvc := maps.NewPlacesService(mapsHandle, cfg.Maps.Region, cfg.Maps.Language)

	pricingSvc := pricing.NewService(cat, routeSvc)
	bookingSvc := booking.NewService(cat, booking.DefaultCoupons(), logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Catalog:      cat,
		Pricing:      pricingSvc,
		Booking:      bookingSvc,
		Places:       placesSvc,
		QuoteTimeout: cfg.QuoteTimeout,
		RateCounter:  rateCounter,
		RateLimit:    cfg.RateLimit.Limit,
		RateWindow:   cfg.RateLimit.Window,
		NewRelic:     nrApp,
		Logger:       logger,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.HTTP.Addr).Info("gocab api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}
}
