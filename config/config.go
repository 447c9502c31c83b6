package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the persistence driver: "postgres" (default) or "memory" for local runs
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
		Guest  string `json:"guest" yaml:"guest"`
	} `json:"secretKey" yaml:"secretKey"`

	// GuestToken configuration for phone-bound guest sessions
	GuestToken *GuestTokenConfig `json:"guestToken" yaml:"guestToken"`

	// Engine configuration for discovery, ranking and store timeouts
	Engine *EngineConfig `json:"engine" yaml:"engine"`

	// Entitlements configuration for quotas, boost catalog and membership plans
	Entitlements *EntitlementsConfig `json:"entitlements" yaml:"entitlements"`

	// Geocoding configuration for the address provider
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Payment configuration for card payment verification
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// PubSub configuration for real-time event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis configuration for the redis real-time provider
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for venue check-in codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Metrics configuration for the prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects the persistence driver
type StoreConfig struct {
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates extensions and tables on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold marks queries logged as slow; 0 keeps the default
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// GuestTokenConfig defines guest token lifetime
type GuestTokenConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// EngineConfig defines discovery and ranking behaviour
type EngineConfig struct {
	// Bound on every backing-store call
	StoreTimeout time.Duration `json:"storeTimeout" yaml:"storeTimeout"`

	// Maximum number of ranked candidates returned by discovery
	RankingLimit int `json:"rankingLimit" yaml:"rankingLimit"`

	// Distance floor in miles applied before dividing the boost factor
	DistanceEpsilonMiles float64 `json:"distanceEpsilonMiles" yaml:"distanceEpsilonMiles"`

	// Radius within which a same-named venue counts as a duplicate
	VenueDedupRadiusMiles float64 `json:"venueDedupRadiusMiles" yaml:"venueDedupRadiusMiles"`

	// Radius used to list venues near an updated location
	NearbyVenueRadiusMiles float64 `json:"nearbyVenueRadiusMiles" yaml:"nearbyVenueRadiusMiles"`

	// Maximum number of venues listed near an updated location
	NearbyVenueLimit int `json:"nearbyVenueLimit" yaml:"nearbyVenueLimit"`

	// Default and maximum discovery radius in miles
	DefaultRadiusMiles float64 `json:"defaultRadiusMiles" yaml:"defaultRadiusMiles"`
	MaxRadiusMiles     float64 `json:"maxRadiusMiles" yaml:"maxRadiusMiles"`

	// Timeout for fire-and-forget real-time notifications
	NotifyTimeout time.Duration `json:"notifyTimeout" yaml:"notifyTimeout"`
}

// QuotaConfig defines the base allowance of one feature
type QuotaConfig struct {
	Limit  int    `json:"limit" yaml:"limit"`
	Period string `json:"period" yaml:"period"`
}

// BoostTypeConfig defines one purchasable boost
type BoostTypeConfig struct {
	Name            string  `json:"name" yaml:"name"`
	Factor          float64 `json:"factor" yaml:"factor"`
	DurationMinutes int     `json:"durationMinutes" yaml:"durationMinutes"`
	PointCost       int     `json:"pointCost" yaml:"pointCost"`

	// Card price in the currency's minor unit, checked against captured payments
	PriceCents int64  `json:"priceCents" yaml:"priceCents"`
	Currency   string `json:"currency" yaml:"currency"`
}

// MembershipPlanConfig defines one purchasable membership plan
type MembershipPlanConfig struct {
	Type                string  `json:"type" yaml:"type"`
	DurationDays        int     `json:"durationDays" yaml:"durationDays"`
	PointCost           int     `json:"pointCost" yaml:"pointCost"`
	UnlimitedLikes      bool    `json:"unlimitedLikes" yaml:"unlimitedLikes"`
	UnlimitedSuperLikes bool    `json:"unlimitedSuperLikes" yaml:"unlimitedSuperLikes"`
	UnlimitedRekindles  bool    `json:"unlimitedRekindles" yaml:"unlimitedRekindles"`
	AdvancedFilters     bool    `json:"advancedFilters" yaml:"advancedFilters"`
	ProfileBoostFactor  float64 `json:"profileBoostFactor" yaml:"profileBoostFactor"`
}

// EntitlementsConfig defines quotas and the premium catalog
type EntitlementsConfig struct {
	Quotas map[string]QuotaConfig `json:"quotas" yaml:"quotas"`

	BoostTypes []BoostTypeConfig `json:"boostTypes" yaml:"boostTypes"`

	// Duration of the boost installed by a membership
	MembershipBoostMinutes int `json:"membershipBoostMinutes" yaml:"membershipBoostMinutes"`

	MembershipPlans []MembershipPlanConfig `json:"membershipPlans" yaml:"membershipPlans"`

	// Point price of a super-like once the free quota is spent
	SuperLikePointCost int `json:"superLikePointCost" yaml:"superLikePointCost"`
}

// GeocodingConfig defines the geocoding provider client
type GeocodingConfig struct {
	// Nominatim-compatible base URL; empty disables geocoding
	Endpoint  string        `json:"endpoint" yaml:"endpoint"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`

	// Requests per second allowed towards the provider
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int     `json:"burst" yaml:"burst"`

	// Consecutive failures before the breaker opens, and how long it stays open
	BreakerFailures uint32        `json:"breakerFailures" yaml:"breakerFailures"`
	BreakerTimeout  time.Duration `json:"breakerTimeout" yaml:"breakerTimeout"`
}

// PaymentConfig defines card payment verification
type PaymentConfig struct {
	StripeSecretKey string        `json:"stripeSecretKey" yaml:"stripeSecretKey"`
	StripeBaseURL   string        `json:"stripeBaseUrl" yaml:"stripeBaseUrl"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "redis" for a redis channel
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RedisConfig defines the redis connection used by the redis provider
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Channel  string `json:"channel" yaml:"channel"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// MetricsConfig defines the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
