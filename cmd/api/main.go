package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smontoya/kickstore-backend/api/controllers"
	"github.com/smontoya/kickstore-backend/api/routes"
	cartsvc "github.com/smontoya/kickstore-backend/internal/cart"
	"github.com/smontoya/kickstore-backend/internal/checkout"
	"github.com/smontoya/kickstore-backend/internal/products"
	"github.com/smontoya/kickstore-backend/internal/seo"
	"github.com/smontoya/kickstore-backend/pkg/config"
	"github.com/smontoya/kickstore-backend/pkg/db"
	"github.com/smontoya/kickstore-backend/pkg/logger"
	"github.com/smontoya/kickstore-backend/pkg/metrics"
	"github.com/smontoya/kickstore-backend/pkg/migrate"
	"github.com/smontoya/kickstore-backend/pkg/redis"
	"github.com/smontoya/kickstore-backend/pkg/storage/uploads"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	uploadsClient, err := uploads.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap uploads client", err)
		os.Exit(1)
	}

	cartStore, err := cartsvc.NewRedisStore(redisClient, cfg.Cart.SnapshotTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	cartManager, err := cartsvc.NewManager(cartStore, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart manager", err)
		os.Exit(1)
	}

	checkoutBuilder, err := checkout.NewLinkBuilder(cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout builder", err)
		os.Exit(1)
	}

	productRepo, err := products.NewRepository(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create product repository", err)
		os.Exit(1)
	}
	productService, err := products.NewService(productRepo, uploadsClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create product service", err)
		os.Exit(1)
	}

	sitemapBuilder, err := seo.NewSitemapBuilder(cfg.Site)
	if err != nil {
		logg.Error(context.Background(), "failed to create sitemap builder", err)
		os.Exit(1)
	}
	metaBuilder, err := seo.NewMetaBuilder(cfg.Site, cfg.Analytics)
	if err != nil {
		logg.Error(context.Background(), "failed to create meta builder", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config: cfg,
			Logger: logg,
			Redis:  redisClient,
			Pingers: map[string]controllers.Pinger{
				"database": dbClient,
				"redis":    redisClient,
				"storage":  uploadsClient,
			},
			Metrics:         httpMetrics,
			Registry:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			CartManager:     cartManager,
			CheckoutBuilder: checkoutBuilder,
			ProductService:  productService,
			SitemapBuilder:  sitemapBuilder,
			MetaBuilder:     metaBuilder,
			UploadSigner:    uploadsClient,
			UploadExpiry:    cfg.GCS.UploadURLExpiry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
