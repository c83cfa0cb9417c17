package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Data DataConfig `mapstructure:"data"`
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
}

// DataConfig names the default dataset source.
type DataConfig struct {
	Path  string `mapstructure:"path"`  // dataset file (.csv/.json/.toml)
	DB    string `mapstructure:"db"`    // sqlite database, used when Path is empty
	Table string `mapstructure:"table"` // table to load from DB
}

// UIConfig holds view settings.
type UIConfig struct {
	PageSize   int    `mapstructure:"page_size"`
	Selectable string `mapstructure:"selectable"` // none | single | multiple
}

// LogConfig controls the debug log; the terminal belongs to the UI so logs
// go to a file.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// JASKGRID_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("data.path", "")
	v.SetDefault("data.db", "")
	v.SetDefault("data.table", "")
	v.SetDefault("ui.page_size", 10)
	v.SetDefault("ui.selectable", "none")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKGRID_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskgrid"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKGRID")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.PageSize < 1 {
		c.UI.PageSize = 10
	}
	return c, nil
}
