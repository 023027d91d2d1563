package logger

import (
	"odontocare-client/internal/app/config"
	"odontocare-client/internal/pkg/constvars"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	driverConfig := &config.DriverConfig{
		Logger: config.Logger{
			Level:               "debug",
			OutputFileName:      filepath.Join(dir, "logs", "odontocare.log"),
			OutputErrorFileName: filepath.Join(dir, "logs", "odontocare_error.log"),
		},
	}
	internalConfig := &config.InternalConfig{App: config.App{Env: constvars.AppEnvProduction}}

	log, err := NewZapLogger(driverConfig, internalConfig)
	require.NoError(t, err)

	log.Info("session restored")
	_ = log.Sync()

	content, err := os.ReadFile(driverConfig.Logger.OutputFileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"session restored"`)
}
