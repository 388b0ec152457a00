package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/photos"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyAPIBaseURL     = "api.base_url"
	KeyAPITimeout     = "api.timeout"
	KeyAPIRateLimit   = "api.rate_limit"
	KeyAPIMaxAttempts = "api.max_attempts"
	KeyUserID         = "user.id"
	KeyPhotosEndpoint = "photos.endpoint"
	KeyPhotosAccess   = "photos.access_key"
	KeyPhotosSecret   = "photos.secret_key"
	KeyPhotosBucket   = "photos.bucket"
	KeyPhotosSSL      = "photos.use_ssl"
	KeyPhotosPublic   = "photos.public_base_url"
	KeyUITheme        = "ui.theme"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
)

// Settings is the typed view of the configuration.
type Settings struct {
	Logging LoggingSettings
	UI      UISettings
	Photos  photos.Config
	API     APISettings
	UserID  int
}

// APISettings configures the backend client.
type APISettings struct {
	BaseURL     string
	Timeout     time.Duration
	RateLimit   float64
	MaxAttempts int
}

// UISettings configures the terminal UI.
type UISettings struct {
	Theme string
}

// LoggingSettings configures slog.
type LoggingSettings struct {
	Level  string
	Format string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIBaseURL, "http://localhost:8087")
	v.SetDefault(KeyAPITimeout, 15*time.Second)
	v.SetDefault(KeyAPIRateLimit, 5.0)
	v.SetDefault(KeyAPIMaxAttempts, 3)
	v.SetDefault(KeyPhotosBucket, AppName)
	v.SetDefault(KeyPhotosSSL, false)
	v.SetDefault(KeyUITheme, "default")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// ConfigureEnv makes every key readable from ETUGON_SECTION_KEY variables.
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads Settings from v. Photo credentials fall back to the MINIO_*
// variables other tooling already exports.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		API: APISettings{
			BaseURL:     strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
			Timeout:     v.GetDuration(KeyAPITimeout),
			RateLimit:   v.GetFloat64(KeyAPIRateLimit),
			MaxAttempts: v.GetInt(KeyAPIMaxAttempts),
		},
		UserID: v.GetInt(KeyUserID),
		Photos: photos.Config{
			Endpoint:      v.GetString(KeyPhotosEndpoint),
			AccessKey:     v.GetString(KeyPhotosAccess),
			SecretKey:     v.GetString(KeyPhotosSecret),
			Bucket:        v.GetString(KeyPhotosBucket),
			UseSSL:        v.GetBool(KeyPhotosSSL),
			PublicBaseURL: v.GetString(KeyPhotosPublic),
		},
		UI:      UISettings{Theme: v.GetString(KeyUITheme)},
		Logging: LoggingSettings{Level: v.GetString(KeyLogLevel), Format: v.GetString(KeyLogFormat)},
	}

	if s.Photos.AccessKey == "" {
		s.Photos.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	}
	if s.Photos.SecretKey == "" {
		s.Photos.SecretKey = os.Getenv("MINIO_SECRET_KEY")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects settings the client cannot run with.
func (s *Settings) Validate() error {
	if s.API.BaseURL == "" {
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyAPIBaseURL)
	}
	if s.API.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", common.ErrInvalidConfig, KeyAPITimeout, s.API.Timeout)
	}
	if s.API.MaxAttempts < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", common.ErrInvalidConfig, KeyAPIMaxAttempts, s.API.MaxAttempts)
	}
	if s.API.RateLimit < 0 {
		return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyAPIRateLimit)
	}
	if s.UserID < 0 {
		return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyUserID)
	}
	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s must be console or json, got %q", common.ErrInvalidConfig, KeyLogFormat, s.Logging.Format)
	}
	return nil
}

// SaveUserID stores the logged-in user id in the config file at path,
// creating the file and its directory when needed.
func SaveUserID(v *viper.Viper, path string, id int) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v.Set(KeyUserID, id)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
