package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Cart         CartConfig
	Checkout     CheckoutConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Admin        AdminConfig
	GCP          GCPConfig
	GCS          GCSConfig
	Site         SiteConfig
	Analytics    AnalyticsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KICKSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"KICKSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"KICKSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KICKSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"KICKSTORE_DB_DSN"`
	Driver string `envconfig:"KICKSTORE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"KICKSTORE_DB_HOST"`
	LegacyPort     int    `envconfig:"KICKSTORE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"KICKSTORE_DB_USER"`
	LegacyPassword string `envconfig:"KICKSTORE_DB_PASSWORD"`
	LegacyName     string `envconfig:"KICKSTORE_DB_NAME"`
	LegacySSLMode  string `envconfig:"KICKSTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"KICKSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KICKSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KICKSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KICKSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"KICKSTORE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"KICKSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"KICKSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"KICKSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KICKSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KICKSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KICKSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KICKSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KICKSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CartConfig controls the session cart snapshot store.
type CartConfig struct {
	SnapshotTTL time.Duration `envconfig:"KICKSTORE_CART_SNAPSHOT_TTL" default:"720h"`
}

// CheckoutConfig carries the WhatsApp hand-off settings.
type CheckoutConfig struct {
	WhatsAppPhone string `envconfig:"KICKSTORE_CHECKOUT_WHATSAPP_PHONE" required:"true"`
	StoreName     string `envconfig:"KICKSTORE_CHECKOUT_STORE_NAME" default:"KickStore"`
}

// Phone returns the configured number stripped down to digits.
func (c CheckoutConfig) Phone() string {
	var b strings.Builder
	for _, r := range c.WhatsAppPhone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type JWTConfig struct {
	Secret            string `envconfig:"KICKSTORE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"KICKSTORE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"KICKSTORE_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KICKSTORE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KICKSTORE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KICKSTORE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KICKSTORE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KICKSTORE_ARGON_KEY_LEN" default:"32"`
}

// AdminConfig carries the single back-office credential.
type AdminConfig struct {
	Email        string `envconfig:"KICKSTORE_ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"KICKSTORE_ADMIN_PASSWORD_HASH" required:"true"`

	LoginWindow  time.Duration `envconfig:"KICKSTORE_ADMIN_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit int           `envconfig:"KICKSTORE_ADMIN_LOGIN_IP_LIMIT" default:"10"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"KICKSTORE_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"KICKSTORE_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"KICKSTORE_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName      string        `envconfig:"KICKSTORE_GCS_BUCKET_NAME" required:"true"`
	UploadURLExpiry time.Duration `envconfig:"KICKSTORE_GCS_UPLOAD_URL_EXPIRY" default:"15m"`
	PublicBaseURL   string        `envconfig:"KICKSTORE_GCS_PUBLIC_BASE_URL"`
}

// SiteConfig describes the storefront itself, fed to the SEO builders.
type SiteConfig struct {
	BaseURL     string `envconfig:"KICKSTORE_SITE_BASE_URL" required:"true"`
	Name        string `envconfig:"KICKSTORE_SITE_NAME" default:"KickStore"`
	Description string `envconfig:"KICKSTORE_SITE_DESCRIPTION" default:"Calzado deportivo y casual"`
}

// AnalyticsConfig is handed to the SEO meta builder; nothing reads it globally.
type AnalyticsConfig struct {
	GAMeasurementID string `envconfig:"KICKSTORE_GA_MEASUREMENT_ID"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KICKSTORE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
