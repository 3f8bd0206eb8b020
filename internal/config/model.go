package config

// Config is the resolved runtime configuration for the client.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Host    HostConfig    `mapstructure:"host"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig points the client at the marketplace backend.
type APIConfig struct {
	// BaseURL is the backend origin without the versioned prefix.
	BaseURL string `mapstructure:"base_url"`
	// Prefix is the versioned path prepended to every request.
	Prefix string `mapstructure:"prefix"`
}

// HostConfig carries the embedding host's hand-off surface. When the process
// is launched by the embedding host these arrive through the environment;
// when launched standalone they stay empty and the null bridge is selected.
type HostConfig struct {
	InitData    string `mapstructure:"init_data"`
	ThemeParams string `mapstructure:"theme_params"`
	ColorScheme string `mapstructure:"color_scheme"`
	Platform    string `mapstructure:"platform"`
}

// SessionConfig controls where the bearer credential is persisted.
type SessionConfig struct {
	// Path overrides the session file location. Empty means the default
	// slot under the user's config directory.
	Path string `mapstructure:"path"`
}

// LoggingConfig controls logrus level and format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (c *Config) GetAPIBaseURL() string {
	return c.API.BaseURL
}

func (c *Config) GetAPIPrefix() string {
	return c.API.Prefix
}

// SetAPIBaseURL applies a command-line override of the backend origin.
func (c *Config) SetAPIBaseURL(baseURL string) {
	if len(baseURL) > 0 {
		c.API.BaseURL = baseURL
	}
}
