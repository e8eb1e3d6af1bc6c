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
	"parceltrack/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "6MB"
	defaultPollInterval       = time.Second
	defaultAccessTokenTTL     = time.Hour
	defaultResetTokenTTL      = 30 * time.Minute

	// EnvPrefix is stripped from environment overrides before matching YAML keys.
	EnvPrefix = "PARCELTRACK_"
)

// Store drivers.
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
)

// Identity providers.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"
)

// Maps providers.
const (
	MapsProviderGoogle = "google"
	MapsProviderTiles  = "tiles"
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
			// WriteTimeout is left at zero when live streams are served.
			WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout  time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker is the Pub/Sub push endpoint served by cmd/notifier.
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Store StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Storage holds profile pictures.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Maps *MapsConfig `json:"maps" yaml:"maps"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects the document store backing parcels, shares and users.
type StoreConfig struct {
	// Driver is "firestore" or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	// PollInterval drives live queries on the postgres driver
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`

	// Migrate runs embedded migrations on start (postgres only)
	Migrate bool `json:"migrate" yaml:"migrate"`

	// SlowQueryThreshold logs slower SQL at warn level (postgres only)
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// FirebaseConfig defines the Firebase project used for Firestore, Auth and FCM
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// WebAPIKey is required to send password reset emails
	WebAPIKey string `json:"webApiKey" yaml:"webApiKey"`
}

// AuthConfig defines how callers are authenticated
type AuthConfig struct {
	// Provider is "firebase" (ID tokens) or "local" (bcrypt + JWT)
	Provider string `json:"provider" yaml:"provider"`

	JWTSecret      string        `json:"jwtSecret" yaml:"jwtSecret"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	ResetTokenTTL  time.Duration `json:"resetTokenTtl" yaml:"resetTokenTtl"`
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// PubSubConfig defines how parcel notifications reach the notifier
type PubSubConfig struct {
	// Provider type: "google", "local" (HTTP push to the worker) or "direct" (in-process)
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience enables OIDC verification of push requests on the worker
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushSecret authenticates local provider pushes. Required outside develop.
	PushSecret string `json:"pushSecret" yaml:"pushSecret"`
}

// StorageConfig defines the blob bucket for avatars
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL, e.g. gs://bucket or file:///var/lib/parceltrack
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL prefixes object keys to build photo URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// MapsConfig defines the directions and geocoding backend
type MapsConfig struct {
	// Provider selects the backend: google (default) or tiles
	Provider string `json:"provider" yaml:"provider"`

	APIKey string `json:"apiKey" yaml:"apiKey"`

	// BaseURL overrides the API host (tests, proxies)
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	Tiles *TilesConfig `json:"tiles" yaml:"tiles"`
}

// TilesConfig defines offline routing over a PMTiles road archive
type TilesConfig struct {
	// Source is a local path, file:// or https:// URL of the .pmtiles archive
	Source string `json:"source" yaml:"source"`

	// Road layer name in the MVT tiles
	RoadLayer string `json:"roadLayer" yaml:"roadLayer"`

	ZoomLevel int `json:"zoomLevel" yaml:"zoomLevel"`

	// CacheSize is the number of decoded tiles kept in memory
	CacheSize int `json:"cacheSize" yaml:"cacheSize"`
}

// QRCodeConfig defines parcel label QR generation
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// PARCELTRACK_STORE_POLLINTERVAL -> store.pollInterval
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config", "/etc/parceltrack")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverFirestore
	}
	if cfg.Store.PollInterval <= 0 {
		cfg.Store.PollInterval = defaultPollInterval
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = AuthProviderFirebase
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.ResetTokenTTL <= 0 {
		cfg.Auth.ResetTokenTTL = defaultResetTokenTTL
	}
}

// Validate reports combinations of settings that cannot be wired.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverFirestore:
		if c.Firebase == nil {
			return errors.New("store.driver firestore requires the firebase section")
		}
	case StoreDriverPostgres:
		if c.Postgres == nil {
			return errors.New("store.driver postgres requires the postgres section")
		}
	default:
		return errors.Errorf("unknown store.driver %q", c.Store.Driver)
	}

	switch c.Auth.Provider {
	case AuthProviderFirebase:
		if c.Firebase == nil {
			return errors.New("auth.provider firebase requires the firebase section")
		}
	case AuthProviderLocal:
		if c.Store.Driver != StoreDriverPostgres {
			return errors.New("auth.provider local requires store.driver postgres")
		}
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.provider local requires auth.jwtSecret")
		}
	default:
		return errors.Errorf("unknown auth.provider %q", c.Auth.Provider)
	}

	if c.PubSub != nil && c.PubSub.Provider == constants.PubSubProviderLocal &&
		c.Env.Env != constants.EnvDevelop && c.PubSub.PushSecret == "" {
		return errors.New("pubsub.provider local requires pubsub.pushSecret outside develop")
	}

	if c.Maps != nil {
		switch c.Maps.Provider {
		case "", MapsProviderGoogle:
		case MapsProviderTiles:
			if c.Maps.Tiles == nil || c.Maps.Tiles.Source == "" {
				return errors.New("maps.provider tiles requires maps.tiles.source")
			}
		default:
			return errors.Errorf("unknown maps.provider %q", c.Maps.Provider)
		}
	}

	return nil
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

// buildReplicasFromEnv reads PARCELTRACK_POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := EnvPrefix + "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
