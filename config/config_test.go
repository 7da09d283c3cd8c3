package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "clover", cfg.AppName)
	assert.Equal(t, "sqlserver", cfg.LegacyDBDriver)
	assert.Equal(t, 30*time.Second, cfg.LegacyDBQueryTimeout)
	assert.Equal(t, StoreBackendMongo, cfg.StoreBackend)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("MIGRATION_LOCK_TTL", "2m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 2*time.Minute, cfg.MigrationLockTTL)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("MONGO_DATABASE=legacy_copy\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MONGO_DATABASE") })

	cfg, err := Load(file, filepath.Join(dir, ".env.local"))
	require.NoError(t, err)
	assert.Equal(t, "legacy_copy", cfg.MongoDatabase)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported STORE_BACKEND")
}
