package config

import (
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/utils"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", defaultDataPath("odontocare.log")),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", defaultDataPath("odontocare_error.log")),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
		},
		API: API{
			BaseUrl: utils.GetEnvString("API_BASE_URL", constvars.DefaultAPIBaseURL),
		},
		Session: Session{
			StorageDriver: utils.GetEnvString("SESSION_STORAGE_DRIVER", constvars.SessionStorageDriverFile),
			FilePath:      utils.GetEnvString("SESSION_FILE_PATH", defaultDataPath("session.json")),
			Namespace:     utils.GetEnvString("SESSION_NAMESPACE", constvars.DefaultSessionNamespace),
		},
	}
}

// defaultDataPath places name under ~/.odontocare, or the working directory
// when no home directory is known.
func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".odontocare", name)
}
