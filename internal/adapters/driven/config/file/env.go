package file

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driven/config"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
)

// Ensure EnvOverlay implements the interface.
var _ driven.ConfigStore = (*EnvOverlay)(nil)

// EnvPrefix is prepended to environment variable names.
const EnvPrefix = "PORTAL"

// EnvOverlay reads PORTAL_<KEY> environment variables in front of a backing
// store. "server.port" is overridden by PORTAL_SERVER_PORT. Writes go to the
// backing store only.
type EnvOverlay struct {
	store driven.ConfigStore
	env   *viper.Viper
}

// NewEnvOverlay wraps store with environment overrides.
func NewEnvOverlay(store driven.ConfigStore) *EnvOverlay {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	return &EnvOverlay{store: store, env: v}
}

// Get retrieves a value, preferring the environment.
func (o *EnvOverlay) Get(key string) (any, bool) {
	if o.env.IsSet(key) {
		return o.env.Get(key), true
	}
	return o.store.Get(key)
}

// GetString retrieves a string value.
func (o *EnvOverlay) GetString(key string) string {
	return config.String(o.Get(key))
}

// GetInt retrieves an integer value. Unparseable overrides read as 0.
func (o *EnvOverlay) GetInt(key string) int {
	return config.Int(o.Get(key))
}

// GetBool retrieves a boolean value.
func (o *EnvOverlay) GetBool(key string) bool {
	return config.Bool(o.Get(key))
}

// GetStringSlice retrieves a string slice. Overrides are comma separated.
func (o *EnvOverlay) GetStringSlice(key string) []string {
	return config.StringSlice(o.Get(key))
}

// Set writes to the backing store.
func (o *EnvOverlay) Set(key string, value any) error {
	return o.store.Set(key, value)
}

// Save persists the backing store.
func (o *EnvOverlay) Save() error {
	return o.store.Save()
}

// Load reloads the backing store.
func (o *EnvOverlay) Load() error {
	return o.store.Load()
}

// Path returns the backing store's path.
func (o *EnvOverlay) Path() string {
	return o.store.Path()
}
