package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/smontoya/kickstore-backend/api/controllers"
	"github.com/smontoya/kickstore-backend/api/middleware"
	cartsvc "github.com/smontoya/kickstore-backend/internal/cart"
	"github.com/smontoya/kickstore-backend/internal/checkout"
	"github.com/smontoya/kickstore-backend/internal/products"
	"github.com/smontoya/kickstore-backend/internal/seo"
	"github.com/smontoya/kickstore-backend/pkg/config"
	"github.com/smontoya/kickstore-backend/pkg/logger"
	"github.com/smontoya/kickstore-backend/pkg/metrics"
	"github.com/smontoya/kickstore-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Redis    *redis.Client
	Pingers  map[string]controllers.Pinger
	Metrics  *metrics.HTTPMetrics
	Registry http.Handler

	CartManager     *cartsvc.Manager
	CheckoutBuilder *checkout.LinkBuilder
	ProductService  products.Service
	SitemapBuilder  *seo.SitemapBuilder
	MetaBuilder     *seo.MetaBuilder
	UploadSigner    controllers.UploadSigner
	UploadExpiry    time.Duration
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Pingers))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", deps.Registry)
	}

	r.Get("/sitemap.xml", controllers.Sitemap(deps.SitemapBuilder, deps.ProductService, logg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(deps.ProductService, logg))
		r.Get("/filters/{family}", controllers.FamilyFilters(deps.ProductService, logg))
		r.Get("/meta", controllers.PageMeta(deps.MetaBuilder, deps.ProductService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(logg))
			r.Get("/", controllers.CartFetch(deps.CartManager, logg))
			r.Delete("/", controllers.CartClear(deps.CartManager, logg))
			r.Post("/items", controllers.CartAddItem(deps.CartManager, deps.ProductService, logg))
			r.Post("/items/{productId}/increment", controllers.CartIncrementItem(deps.CartManager, logg))
			r.Post("/items/{productId}/decrement", controllers.CartDecrementItem(deps.CartManager, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.CartManager, logg))
			r.Get("/checkout-link", controllers.CheckoutLink(deps.CartManager, deps.CheckoutBuilder, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		loginPolicy := middleware.NewLoginRateLimitPolicy(cfg.Admin.LoginWindow, cfg.Admin.LoginIPLimit)
		r.With(middleware.LoginRateLimit(loginPolicy, deps.Redis, logg)).
			Post("/login", controllers.AdminLogin(cfg.Admin, cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, logg))
			r.Get("/products", controllers.AdminListProducts(deps.ProductService, logg))
			r.Post("/products", controllers.AdminCreateProduct(deps.ProductService, logg))
			r.Patch("/products/{productId}", controllers.AdminUpdateProduct(deps.ProductService, logg))
			r.Delete("/products/{productId}", controllers.AdminDeleteProduct(deps.ProductService, logg))
			r.Post("/uploads/presign", controllers.UploadsPresign(deps.UploadSigner, deps.UploadExpiry, logg))
		})
	})

	return r
}
