package config

import (
	"os"
	"strings"
	"time"

	"todolist/internal/errors"

	"github.com/joho/godotenv"
	"github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultHTTPPort           = 8000
	defaultAccessTokenTTL     = 30 * time.Minute
	defaultAlgorithm          = "HS256"
	defaultSQLitePath         = "todolist.db"
	defaultEnvFile            = ".env"
)

// Database drivers understood by the persistence layer.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Event publisher providers.
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
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

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// DatabaseConfig selects the storage engine.
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string `json:"driver" yaml:"driver"`

	// SQLitePath is a file path or a "file::memory:" DSN, used by the sqlite driver.
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// AutoMigrate creates the schema at startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// AuthConfig tunes password hashing and access tokens.
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	Algorithm      string        `json:"algorithm" yaml:"algorithm"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig picks where todo events go. An empty Provider drops them.
type PubSubConfig struct {
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// New reads config.yaml from the working directory or a nearby config/
// directory, overlays the environment (a .env file included) and checks the result.
func New() (*Config, error) {
	// A missing .env is fine; deployments set the environment directly.
	_ = godotenv.Load(defaultEnvFile)

	cfg, err := Load[Config]("config", ".", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
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
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Database.Driver == DriverSQLite && cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = defaultSQLitePath
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.Algorithm == "" {
		cfg.Auth.Algorithm = defaultAlgorithm
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

// Validate rejects configurations the service cannot start with.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access is required")
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		return errors.Errorf("auth.accessTokenTTL must be positive, got %s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return errors.Errorf("auth.bcryptCost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.Auth.BcryptCost)
	}

	switch cfg.Database.Driver {
	case DriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres driver")
		}
	case DriverSQLite:
	default:
		return errors.Errorf("unknown database.driver: %q", cfg.Database.Driver)
	}

	if cfg.PubSub != nil {
		switch cfg.PubSub.Provider {
		case PubSubProviderNone:
		case PubSubProviderLocal:
			if cfg.PubSub.LocalEndpoint == "" {
				return errors.New("pubsub.localEndpoint is required for the local provider")
			}
		case PubSubProviderGoogle:
			if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
				return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
			}
		default:
			return errors.Errorf("unknown pubsub.provider: %q", cfg.PubSub.Provider)
		}
	}

	return nil
}

