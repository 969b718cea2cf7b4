package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultDirName, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("server.host", "127.0.0.1"))

	val, ok := store.Get("server.host")
	assert.True(t, ok)
	assert.Equal(t, "127.0.0.1", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing.key"))
	assert.Zero(t, store.GetInt("missing.key"))
	assert.False(t, store.GetBool("missing.key"))
	assert.Nil(t, store.GetStringSlice("missing.key"))
}

func TestConfigStore_Persistence_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set("server.port", 8080))
	require.NoError(t, store.Set("session.backend", "redis"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[server]")
	assert.Contains(t, string(raw), "[session]")

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 8080, reopened.GetInt("server.port"))
	assert.Equal(t, "redis", reopened.GetString("session.backend"))
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[server]
host = "127.0.0.1"
port = 9000

[log]
level = "debug"
format = "json"

[features]
enabled = true
tags = ["a", "b"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", store.GetString("server.host"))
	assert.Equal(t, 9000, store.GetInt("server.port"))
	assert.Equal(t, "debug", store.GetString("log.level"))
	assert.True(t, store.GetBool("features.enabled"))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("features.tags"))
}

func TestConfigStore_GetInt_String(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("server.port", "8081"))
	require.NoError(t, store.Set("server.rate_limit", "lots"))

	assert.Equal(t, 8081, store.GetInt("server.port"))
	assert.Zero(t, store.GetInt("server.rate_limit"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(""), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("server.port")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("redis.address", "localhost:6379"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_Explicit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Save())

	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[server\nport ="), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, err := NewConfigStore(filepath.Join(blocker, "sub"))
	assert.Error(t, err)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("server.port", 8000+i)
		}()
		go func() {
			defer wg.Done()
			_ = store.GetInt("server.port")
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, store.GetInt("server.port"), 8000)
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"server": map[string]any{"host": "0.0.0.0", "port": int64(12000)},
		"log":    map[string]any{"level": "info"},
		"top":    "value",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"server.host": "0.0.0.0",
		"server.port": int64(12000),
		"log.level":   "info",
		"top":         "value",
	}, flat)

	assert.Equal(t, nested, nestMap(flat))
}
