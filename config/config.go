package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	// configFileEnv points at a config file outside the search directories.
	configFileEnv  = "CONFIG_FILE"
	configFileName = "config.yaml"

	defaultMaxRequestBodySize = "100KB"
	defaultBcryptCost         = 10
	defaultPasswordMinLength  = 6
	defaultAccessTokenTTL     = 15 * time.Minute
	defaultRefreshTokenTTL    = 7 * 24 * time.Hour
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
	defaultTopicID            = "farm-events"
)

//nolint:gochecknoglobals
var searchDirs = []string{".", "config", "../config", "../../config"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName" validate:"required"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"min=1,max=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"-"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Admin seeds a single admin account at startup when its email is set.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// PubSub selects where farm events go. An empty provider disables them.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// SecretKeyConfig holds the HMAC secrets for access and refresh tokens.
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access" validate:"required"`
	Refresh string `json:"refresh" yaml:"refresh" validate:"required,nefield=Access"`
}

// DatabaseConfig controls schema management and query logging.
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	// SlowQueryThreshold marks statements logged at warn level. Zero uses 200ms.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig covers password hashing and token lifetimes.
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost" validate:"min=4,max=31"`
	PasswordMinLength int           `json:"passwordMinLength" yaml:"passwordMinLength" validate:"min=1"`
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL" validate:"gtfield=AccessTokenTTL"`
}

// AdminConfig is the bootstrap admin account.
type AdminConfig struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email" validate:"omitempty,email"`
	Password string `json:"password" yaml:"password" validate:"required_with=Email"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// PubSubConfig selects the farm event transport.
type PubSubConfig struct {
	// Provider is "local" (HTTP push to LocalEndpoint) or "google".
	Provider      string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`
	ProjectID     string `json:"projectId" yaml:"projectId" validate:"required_if=Provider google"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint" validate:"required_if=Provider local"`
}

// QRCodeConfig shapes plot signage QR codes.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size" validate:"min=64,max=2048"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"oneof=L M Q H"`
	// BaseURL prefixes the plot link encoded in each code.
	BaseURL string `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path" validate:"omitempty,startswith=/"`
}

// New locates config.yaml (or $CONFIG_FILE), overlays environment variables,
// fills farm defaults and validates the result.
func New() (*Config, error) {
	path, err := locate(os.Getenv(configFileEnv), searchDirs)
	if err != nil {
		return nil, err
	}

	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func locate(override string, dirs []string) (string, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", errors.Wrapf(err, "%s=%s", configFileEnv, override)
		}

		return override, nil
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %v", configFileName, dirs)
}

// load reads the yaml file, then lets environment variables override any key.
// POSTGRES_SSLMODE lands on postgres.sslMode because env segments are matched
// against the keys the file already defines.
func load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fileKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.PasswordMinLength == 0 {
		cfg.Auth.PasswordMinLength = defaultPasswordMinLength
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.RefreshTokenTTL == 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size == 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)
	}

	if cfg.PubSub != nil && cfg.PubSub.Provider != "" && cfg.PubSub.TopicID == "" {
		cfg.PubSub.TopicID = defaultTopicID
	}
}

func (cfg *Config) validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			problems := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				problems = append(problems, fe.Namespace()+" fails "+fe.Tag())
			}

			return errors.Errorf("invalid config: %s", strings.Join(problems, "; "))
		}

		return errors.Wrap(err, "invalid config")
	}

	return nil
}

// canonicalizeEnvKey maps ENV_VAR_NAME onto the dotted yaml path, reusing the
// spelling of keys that exist in the file (camelCase included).
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	path := make([]string, 0, len(segments))
	level := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey finds segment among the keys of level, ignoring case and
// punctuation. Unknown segments are kept as given and end the descent.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	needle := alnumLower(segment)
	for key, value := range level {
		if alnumLower(key) == needle {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func alnumLower(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
