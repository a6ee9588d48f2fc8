package config

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Feed       FeedConfig     `mapstructure:"feed"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// FeedConfig controls the paginated all-employees feed.
type FeedConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Feed:     FeedConfig{PageSize: DefaultPageSize},
		Log:      LogConfig{Level: "warn"},
	}
}

const DefaultPageSize = 5

// EffectivePageSize falls back to the default when the configured size is unusable.
func (c *Config) EffectivePageSize() int {
	if c.Feed.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.Feed.PageSize
}
