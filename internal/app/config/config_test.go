package config

import (
	"odontocare-client/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := NewInternalConfig()

	assert.Equal(t, constvars.DefaultAPIBaseURL, cfg.API.BaseUrl)
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)
	assert.Equal(t, constvars.SessionStorageDriverFile, cfg.Session.StorageDriver)
	assert.Equal(t, constvars.DefaultSessionNamespace, cfg.Session.Namespace)
	assert.Contains(t, cfg.Session.FilePath, ".odontocare")
}

func TestNewInternalConfig_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://clinic.local/api")
	t.Setenv("SESSION_STORAGE_DRIVER", constvars.SessionStorageDriverRedis)
	t.Setenv("REDIS_DB", "3")

	internalConfig := NewInternalConfig()
	driverConfig := NewDriverConfig()

	assert.Equal(t, "http://clinic.local/api", internalConfig.API.BaseUrl)
	assert.Equal(t, constvars.SessionStorageDriverRedis, internalConfig.Session.StorageDriver)
	assert.Equal(t, 3, driverConfig.Redis.DB)
}
