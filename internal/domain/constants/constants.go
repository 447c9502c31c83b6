package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Real-time event sink providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderRedis  = "redis"
)

// Persistence drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID     = "userID"
	ContextKeyGuestToken = "guestToken"
)

// HeaderGuestToken carries the guest token on requests and the renewed token on responses.
const HeaderGuestToken = "X-Guest-Token"
