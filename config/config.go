package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigName = "calcbot"
	EnvPrefix  = "CALCBOT"
)

type ShowdownConfig struct {
	ServerURL string   `mapstructure:"serverUrl"`
	ActionURL string   `mapstructure:"actionUrl"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Rooms     []string `mapstructure:"rooms"`
}

type BotConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// DataConfig points at Showdown data exports. Empty paths are skipped.
type DataConfig struct {
	Pokedex string `mapstructure:"pokedex"`
	Moves   string `mapstructure:"moves"`
	Items   string `mapstructure:"items"`
}

type Config struct {
	LogLevel string         `mapstructure:"logLevel"`
	Showdown ShowdownConfig `mapstructure:"showdown"`
	Bot      BotConfig      `mapstructure:"bot"`
	Data     DataConfig     `mapstructure:"data"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("showdown.serverUrl", "wss://sim3.psim.us/showdown/websocket")
	viper.SetDefault("showdown.actionUrl", "https://play.pokemonshowdown.com/api/login")
	viper.SetDefault("showdown.username", "")
	viper.SetDefault("showdown.password", "")
	viper.SetDefault("showdown.rooms", []string{"lobby"})

	viper.SetDefault("bot.prefix", "!")

	viper.SetDefault("data.pokedex", "")
	viper.SetDefault("data.moves", "")
	viper.SetDefault("data.items", "")
}

// Load reads calcbot.yaml from configDir if present, applies CALCBOT_* environment
// overrides and defaults, and returns the result. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetConfigName(ConfigName)
	viper.SetConfigType("yaml")
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Bot.Prefix == "" {
		return nil, errors.New("bot.prefix must not be empty")
	}
	return &cfg, nil
}
