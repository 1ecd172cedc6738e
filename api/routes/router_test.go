package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smontoya/kickstore-backend/api/controllers"
	cartsvc "github.com/smontoya/kickstore-backend/internal/cart"
	"github.com/smontoya/kickstore-backend/internal/catalog"
	"github.com/smontoya/kickstore-backend/internal/checkout"
	"github.com/smontoya/kickstore-backend/internal/products"
	"github.com/smontoya/kickstore-backend/internal/seo"
	pkgauth "github.com/smontoya/kickstore-backend/pkg/auth"
	"github.com/smontoya/kickstore-backend/pkg/config"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubProductService struct{}

func (stubProductService) Create(ctx context.Context, input products.CreateInput) (catalog.Product, error) {
	return catalog.Product{}, nil
}

func (stubProductService) Update(ctx context.Context, productID string, input products.UpdateInput) (catalog.Product, error) {
	return catalog.Product{}, nil
}

func (stubProductService) Delete(ctx context.Context, productID string, hard bool) error {
	return nil
}

func (stubProductService) Get(ctx context.Context, productID string) (catalog.Product, error) {
	return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (stubProductService) List(ctx context.Context, input products.ListInput) ([]catalog.Product, error) {
	return []catalog.Product{
		{ID: "00000000-0000-0000-0000-000000000001", Name: "Jordan 1 Chicago", Price: decimal.NewFromInt(550000)},
	}, nil
}

type stubSigner struct{}

func (stubSigner) SignUploadURL(objectPath, contentType string, expiry time.Duration) (string, error) {
	return "https://storage.example.com/signed/" + objectPath, nil
}

func (stubSigner) PublicURL(objectPath string) string {
	return "https://storage.example.com/" + objectPath
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "issuer",
			ExpirationMinutes: 60,
		},
		Admin: config.AdminConfig{
			Email:        "admin@kickstore.co",
			PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			LoginWindow:  0,
			LoginIPLimit: 0,
		},
		Checkout: config.CheckoutConfig{WhatsAppPhone: "+57 300 123 4567", StoreName: "KickStore"},
		Site:     config.SiteConfig{BaseURL: "https://kickstore.co", Name: "KickStore"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})

	manager, err := cartsvc.NewManager(cartsvc.NewMemoryStore(), logg)
	if err != nil {
		t.Fatalf("cart manager: %v", err)
	}
	builder, err := checkout.NewLinkBuilder(cfg.Checkout)
	if err != nil {
		t.Fatalf("link builder: %v", err)
	}
	sitemap, err := seo.NewSitemapBuilder(cfg.Site)
	if err != nil {
		t.Fatalf("sitemap builder: %v", err)
	}
	meta, err := seo.NewMetaBuilder(cfg.Site, cfg.Analytics)
	if err != nil {
		t.Fatalf("meta builder: %v", err)
	}

	return NewRouter(Deps{
		Config:          cfg,
		Logger:          logg,
		Pingers:         map[string]controllers.Pinger{"database": stubPinger{}},
		CartManager:     manager,
		CheckoutBuilder: builder,
		ProductService:  stubProductService{},
		SitemapBuilder:  sitemap,
		MetaBuilder:     meta,
		UploadSigner:    stubSigner{},
		UploadExpiry:    15 * time.Minute,
	})
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness got %d", resp.Code)
	}
}

func TestSitemapServesXML(t *testing.T) {
	router := newTestRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for sitemap got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.Contains(ct, "xml") {
		t.Fatalf("expected xml content type got %q", ct)
	}
	if !strings.Contains(resp.Body.String(), "https://kickstore.co/jordan") {
		t.Fatalf("expected storefront route in sitemap, body=%s", resp.Body.String())
	}
}

func TestCartFetchMintsSession(t *testing.T) {
	router := newTestRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for cart fetch got %d", resp.Code)
	}
	if resp.Header().Get("X-Cart-Session") == "" {
		t.Fatalf("expected a minted cart session header")
	}
}

func TestAdminGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestAdminGroupAcceptsValidJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin list got %d", resp.Code)
	}
}

func TestAdminLoginRejectsBadJSON(t *testing.T) {
	router := newTestRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestUploadsPresignRequiresAuth(t *testing.T) {
	router := newTestRouter(t, testConfig())
	body := `{"filename":"shoe.jpg","contentType":"image/jpeg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/uploads/presign", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAdminToken(cfg.JWT, time.Now(), pkgauth.AdminTokenPayload{
		Email: cfg.Admin.Email,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}
