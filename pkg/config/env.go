package config

// EnvPrefix is the envconfig prefix shared by every binary.
const EnvPrefix = "exclusive"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv                 = "EXCLUSIVE_APP_ENV"
	EnvPort                   = "EXCLUSIVE_APP_PORT"
	EnvDBDSN                  = "EXCLUSIVE_DB_DSN"
	EnvDBHost                 = "EXCLUSIVE_DB_HOST"
	EnvDBUser                 = "EXCLUSIVE_DB_USER"
	EnvDBName                 = "EXCLUSIVE_DB_NAME"
	EnvRedisURL               = "EXCLUSIVE_REDIS_URL"
	EnvJWTSecret              = "EXCLUSIVE_JWT_SECRET"
	EnvJWTIssuer              = "EXCLUSIVE_JWT_ISSUER"
	EnvJWTExpMins             = "EXCLUSIVE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "EXCLUSIVE_REFRESH_TOKEN_TTL_MINUTES"
	EnvGCPProjectID           = "EXCLUSIVE_GCP_PROJECT_ID"
	EnvPubSubOrdersTopic      = "EXCLUSIVE_PUBSUB_ORDERS_TOPIC"
	EnvPubSubOrdersSub        = "EXCLUSIVE_PUBSUB_ORDERS_SUBSCRIPTION"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
