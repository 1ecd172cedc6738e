package config

// EnvPrefix is passed to envconfig; variables carry the prefix explicitly in
// their struct tags so it stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv        = "KICKSTORE_APP_ENV"
	EnvPort          = "KICKSTORE_APP_PORT"
	EnvDBDSN         = "KICKSTORE_DB_DSN"
	EnvDBHost        = "KICKSTORE_DB_HOST"
	EnvDBUser        = "KICKSTORE_DB_USER"
	EnvDBName        = "KICKSTORE_DB_NAME"
	EnvRedisURL      = "KICKSTORE_REDIS_URL"
	EnvJWTSecret     = "KICKSTORE_JWT_SECRET"
	EnvJWTIssuer     = "KICKSTORE_JWT_ISSUER"
	EnvCheckoutPhone = "KICKSTORE_CHECKOUT_WHATSAPP_PHONE"
	EnvAdminEmail    = "KICKSTORE_ADMIN_EMAIL"
	EnvAdminPwdHash  = "KICKSTORE_ADMIN_PASSWORD_HASH"
	EnvGCSBucket     = "KICKSTORE_GCS_BUCKET_NAME"
	EnvSiteBaseURL   = "KICKSTORE_SITE_BASE_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
