package constants

// viper configuration keys
const (
	ViperListenAddr   = "listen_addr"
	ViperDatabaseDSN  = "database_dsn"
	ViperSecretKey    = "admin_secret"
	ViperJWTKey       = "jwt_signing_key"
	ViperTaxonomyPath = "taxonomy_path"
	ViperDebug        = "debug"
)

const (
	CookieKeySecretToken = "secret_token"

	HeaderRequestID = "X-Request-Id"
	CtxKeyRequestID = "request_id"
)
