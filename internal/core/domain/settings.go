package domain

import "fmt"

const unknownDescription = "Unknown"

// SessionBackend selects where wizard sessions are kept.
type SessionBackend string

// Available session backends.
const (
	// SessionBackendMemory keeps sessions in process memory.
	SessionBackendMemory SessionBackend = "memory"

	// SessionBackendRedis shares sessions between instances via Redis.
	SessionBackendRedis SessionBackend = "redis"
)

// IsValid returns true if the session backend is recognised.
func (b SessionBackend) IsValid() bool {
	switch b {
	case SessionBackendMemory, SessionBackendRedis:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b SessionBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b SessionBackend) Description() string {
	switch b {
	case SessionBackendMemory:
		return "In-memory (single instance)"
	case SessionBackendRedis:
		return "Redis (shared)"
	default:
		return unknownDescription
	}
}

// ReceiptBackend selects where submission receipts are recorded.
type ReceiptBackend string

// Available receipt backends.
const (
	ReceiptBackendMemory ReceiptBackend = "memory"
	ReceiptBackendSQLite ReceiptBackend = "sqlite"
)

// IsValid returns true if the receipt backend is recognised.
func (b ReceiptBackend) IsValid() bool {
	switch b {
	case ReceiptBackendMemory, ReceiptBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b ReceiptBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b ReceiptBackend) Description() string {
	switch b {
	case ReceiptBackendMemory:
		return "In-memory (lost on restart)"
	case ReceiptBackendSQLite:
		return "SQLite database"
	default:
		return unknownDescription
	}
}

// ServerSettings holds HTTP server configuration.
type ServerSettings struct {
	// Host is the interface to bind.
	Host string

	// Port is the TCP port to listen on.
	Port int

	// TemplatesDir overrides the embedded templates when set.
	// Templates in this directory are reloaded on change.
	TemplatesDir string

	// RateLimit is the sustained requests per second allowed per client.
	RateLimit int

	// RateBurst is the burst size per client.
	RateBurst int
}

// Address returns host:port.
func (s ServerSettings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SessionSettings holds wizard session configuration.
type SessionSettings struct {
	Backend    SessionBackend
	TTLMinutes int
}

// RedisSettings holds Redis connection configuration.
type RedisSettings struct {
	Address string
	DB      int
}

// ReceiptSettings holds receipt persistence configuration.
type ReceiptSettings struct {
	Backend ReceiptBackend
}

// LogSettings holds logger configuration.
type LogSettings struct {
	// Level is one of debug, info, warn, error.
	Level string

	// Format is console or json.
	Format string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Server   ServerSettings
	Session  SessionSettings
	Redis    RedisSettings
	Receipts ReceiptSettings
	Log      LogSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Host:      "0.0.0.0",
			Port:      12000,
			RateLimit: 20,
			RateBurst: 40,
		},
		Session: SessionSettings{
			Backend:    SessionBackendMemory,
			TTLMinutes: 30,
		},
		Redis: RedisSettings{
			Address: "localhost:6379",
		},
		Receipts: ReceiptSettings{
			Backend: ReceiptBackendMemory,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// AllSessionBackends returns all available session backends.
func AllSessionBackends() []SessionBackend {
	return []SessionBackend{SessionBackendMemory, SessionBackendRedis}
}

// AllReceiptBackends returns all available receipt backends.
func AllReceiptBackends() []ReceiptBackend {
	return []ReceiptBackend{ReceiptBackendMemory, ReceiptBackendSQLite}
}

// IsValidLogLevel returns true for levels the logger understands.
func IsValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// IsValidLogFormat returns true for supported log encodings.
func IsValidLogFormat(format string) bool {
	return format == "console" || format == "json"
}
