package config

type InternalConfig struct {
	App     App     `mapstructure:"app"`
	API     API     `mapstructure:"api"`
	Session Session `mapstructure:"session"`
}

type App struct {
	Env      string `mapstructure:"env"`
	Version  string `mapstructure:"version"`
	Timezone string `mapstructure:"timezone"`
}

type API struct {
	BaseUrl string `mapstructure:"base_url"`
}

// Session selects where the token and identity survive between runs.
type Session struct {
	// StorageDriver is "file", "redis" or "memory"
	StorageDriver string `mapstructure:"storage_driver"`
	FilePath      string `mapstructure:"file_path"`
	Namespace     string `mapstructure:"namespace"`
}
