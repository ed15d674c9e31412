// Package config loads the service configuration from a per-environment
// YAML file with environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "config"

// Config is the root configuration structure.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres is optional. When absent the service runs on the in-memory
	// store; when present but unreachable at startup the service falls back
	// to the in-memory store for the process lifetime.
	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Discovery configures the proximity query radii.
	Discovery *DiscoveryConfig `json:"discovery" yaml:"discovery"`
}

// Log defines logging configuration.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PostgresConfig defines the relational backing store connection.
type PostgresConfig struct {
	Host           string        `json:"host" yaml:"host"`
	Port           int           `json:"port" yaml:"port"`
	User           string        `json:"user" yaml:"user"`
	Password       string        `json:"password" yaml:"password"`
	DBName         string        `json:"dbName" yaml:"dbName"`
	SSLMode        string        `json:"sslMode" yaml:"sslMode"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	MaxOpenConns   int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns   int           `json:"maxIdleConns" yaml:"maxIdleConns"`
}

// AuthConfig defines authentication-related configuration.
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

// DiscoveryConfig defines the proximity query configuration.
type DiscoveryConfig struct {
	// DefaultRadiusMeters is used when a nearby-offers query omits the radius.
	DefaultRadiusMeters float64 `json:"defaultRadiusMeters" yaml:"defaultRadiusMeters"`
	// MaxRadiusMeters caps the radius a client may request.
	MaxRadiusMeters float64 `json:"maxRadiusMeters" yaml:"maxRadiusMeters"`
	// NearRadiusMeters is the default "is a user near this business" radius.
	NearRadiusMeters float64 `json:"nearRadiusMeters" yaml:"nearRadiusMeters"`
}

// New loads the configuration for the environment named by CONFIG_ENV
// (default "local") from the config directory.
func New() (*Config, error) {
	currEnv := os.Getenv("CONFIG_ENV")
	if currEnv == "" {
		currEnv = "local"
	}

	return LoadWithEnv(currEnv, defaultPath)
}

// LoadWithEnv loads the {env}.yaml file through koanf and then applies
// environment-variable overrides, e.g. HTTP_PORT=8080 sets http.port.
func LoadWithEnv(currEnv string, configPath string) (*Config, error) {
	cfg := new(Config)
	koanfInstance := koanf.New(".")

	configFile := filepath.Join(configPath, currEnv+".yaml")
	if _, err := os.Stat(configFile); err != nil {
		return nil, errors.Wrapf(err, "config file %s not found", configFile)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Environment variables override file values:
	// SECRETKEY_ACCESS -> secretkey.access (matched case-insensitively below).
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
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
				// Case-insensitive matching so env var overrides land on the
				// same fields as their camelCase YAML keys.
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}

	if cfg.Discovery == nil {
		cfg.Discovery = &DiscoveryConfig{}
	}
	if cfg.Discovery.DefaultRadiusMeters == 0 {
		cfg.Discovery.DefaultRadiusMeters = 1000
	}
	if cfg.Discovery.MaxRadiusMeters == 0 {
		cfg.Discovery.MaxRadiusMeters = 50000
	}
	if cfg.Discovery.NearRadiusMeters == 0 {
		cfg.Discovery.NearRadiusMeters = 100
	}

	if cfg.Postgres != nil && cfg.Postgres.ConnectTimeout == 0 {
		cfg.Postgres.ConnectTimeout = 10 * time.Second
	}
}
