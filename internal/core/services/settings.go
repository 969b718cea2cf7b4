package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyServerHost         = "server.host"
	KeyServerPort         = "server.port"
	KeyServerTemplatesDir = "server.templates_dir"
	KeyServerRateLimit    = "server.rate_limit"
	KeyServerRateBurst    = "server.rate_burst"
	KeySessionBackend     = "session.backend"
	KeySessionTTL         = "session.ttl_minutes"
	KeyRedisAddress       = "redis.address"
	KeyRedisDB            = "redis.db"
	KeyReceiptsBackend    = "receipts.backend"
	KeyLogLevel           = "log.level"
	KeyLogFormat          = "log.format"
)

var intKeys = map[string]bool{
	KeyServerPort:      true,
	KeyServerRateLimit: true,
	KeyServerRateBurst: true,
	KeySessionTTL:      true,
	KeyRedisDB:         true,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Server: domain.ServerSettings{
			Host:         s.getString(KeyServerHost, defaults.Server.Host),
			Port:         s.getInt(KeyServerPort, defaults.Server.Port),
			TemplatesDir: s.configStore.GetString(KeyServerTemplatesDir),
			RateLimit:    s.getInt(KeyServerRateLimit, defaults.Server.RateLimit),
			RateBurst:    s.getInt(KeyServerRateBurst, defaults.Server.RateBurst),
		},
		Session: domain.SessionSettings{
			Backend:    s.getSessionBackend(defaults.Session.Backend),
			TTLMinutes: s.getInt(KeySessionTTL, defaults.Session.TTLMinutes),
		},
		Redis: domain.RedisSettings{
			Address: s.getString(KeyRedisAddress, defaults.Redis.Address),
			DB:      s.configStore.GetInt(KeyRedisDB),
		},
		Receipts: domain.ReceiptSettings{
			Backend: s.getReceiptBackend(defaults.Receipts.Backend),
		},
		Log: domain.LogSettings{
			Level:  s.getString(KeyLogLevel, defaults.Log.Level),
			Format: s.getString(KeyLogFormat, defaults.Log.Format),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeyServerHost, settings.Server.Host},
		{KeyServerPort, settings.Server.Port},
		{KeyServerTemplatesDir, settings.Server.TemplatesDir},
		{KeyServerRateLimit, settings.Server.RateLimit},
		{KeyServerRateBurst, settings.Server.RateBurst},
		{KeySessionBackend, settings.Session.Backend.String()},
		{KeySessionTTL, settings.Session.TTLMinutes},
		{KeyRedisAddress, settings.Redis.Address},
		{KeyRedisDB, settings.Redis.DB},
		{KeyReceiptsBackend, settings.Receipts.Backend.String()},
		{KeyLogLevel, settings.Log.Level},
		{KeyLogFormat, settings.Log.Format},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting. Integer keys are parsed and enum keys
// are checked before anything is written.
func (s *SettingsService) Set(key, value string) error {
	var stored any = value

	switch key {
	case KeySessionBackend:
		if !domain.SessionBackend(value).IsValid() {
			return fmt.Errorf("invalid session backend %q: %w", value, domain.ErrInvalidInput)
		}
	case KeyReceiptsBackend:
		if !domain.ReceiptBackend(value).IsValid() {
			return fmt.Errorf("invalid receipts backend %q: %w", value, domain.ErrInvalidInput)
		}
	case KeyLogLevel:
		if !domain.IsValidLogLevel(value) {
			return fmt.Errorf("invalid log level %q: %w", value, domain.ErrInvalidInput)
		}
	case KeyLogFormat:
		if !domain.IsValidLogFormat(value) {
			return fmt.Errorf("invalid log format %q: %w", value, domain.ErrInvalidInput)
		}
	case KeyServerHost, KeyServerTemplatesDir, KeyRedisAddress:
	default:
		if !intKeys[key] {
			return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("setting %s expects a non-negative integer: %w", key, domain.ErrInvalidInput)
		}
		stored = n
	}

	return s.configStore.Set(key, stored)
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyServerHost,
		KeyServerPort,
		KeyServerTemplatesDir,
		KeyServerRateLimit,
		KeyServerRateBurst,
		KeySessionBackend,
		KeySessionTTL,
		KeyRedisAddress,
		KeyRedisDB,
		KeyReceiptsBackend,
		KeyLogLevel,
		KeyLogFormat,
	}
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Server.Port < 1 || settings.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", settings.Server.Port)
	}
	if settings.Server.RateLimit <= 0 || settings.Server.RateBurst <= 0 {
		return fmt.Errorf("rate limit and burst must be positive")
	}
	if settings.Session.Backend == domain.SessionBackendRedis && settings.Redis.Address == "" {
		return fmt.Errorf("session backend %q requires redis.address", settings.Session.Backend)
	}
	if !domain.IsValidLogLevel(settings.Log.Level) {
		return fmt.Errorf("invalid log level: %s", settings.Log.Level)
	}
	if !domain.IsValidLogFormat(settings.Log.Format) {
		return fmt.Errorf("invalid log format: %s", settings.Log.Format)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSessionBackend(defaultVal domain.SessionBackend) domain.SessionBackend {
	backend := domain.SessionBackend(s.configStore.GetString(KeySessionBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getReceiptBackend(defaultVal domain.ReceiptBackend) domain.ReceiptBackend {
	backend := domain.ReceiptBackend(s.configStore.GetString(KeyReceiptsBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
