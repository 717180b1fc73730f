package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/vdobler/statvis"
)

// configName is the config file name without extension.
const configName = ".statvis"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for statvis settings.
const envPrefix = "STATVIS"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	cfg.Widget.Theme = statvis.DefaultTheme

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("log.level", DefaultLogLevel)

	viperCfg.SetDefault("widget.num_dividers", widgetDefaults.NumDividers)
	viperCfg.SetDefault("widget.group_size", widgetDefaults.GroupSize)
	viperCfg.SetDefault("widget.start_indices", []int{})
	viperCfg.SetDefault("widget.bin_count", widgetDefaults.BinCount)
	viperCfg.SetDefault("widget.color_palette", widgetDefaults.ColorPalette)
	viperCfg.SetDefault("widget.width", widgetDefaults.Width)
	viperCfg.SetDefault("widget.height", widgetDefaults.Height)
	viperCfg.SetDefault("widget.padding", widgetDefaults.Padding)
	viperCfg.SetDefault("widget.bar_color", widgetDefaults.BarColor)
	viperCfg.SetDefault("widget.slider_color", widgetDefaults.SliderColor)
	viperCfg.SetDefault("widget.bar_offset_ratio", widgetDefaults.BarOffsetRatio)
	viperCfg.SetDefault("widget.fences", widgetDefaults.Fences)
}
