// Package config provides configuration types and defaults for ds9region.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/signalsfoundry/ds9-regions/regionfile"
)

// EnvPrefix is prepended to every environment override, e.g. REGIONS_COLOR.
const EnvPrefix = "REGIONS"

// Config holds every option of an export run.
type Config struct {
	Color      string  `mapstructure:"color"`
	Width      int     `mapstructure:"width"`
	FontType   string  `mapstructure:"fonttype"`
	FontSize   float64 `mapstructure:"fontsize"`
	FontWeight string  `mapstructure:"fontweight"`
	FontFamily string  `mapstructure:"fontfamily"`

	OutName string `mapstructure:"outname"`
	Search  string `mapstructure:"search"`
	Catalog string `mapstructure:"catalog"` // empty selects the built-in sample

	Workers     int    `mapstructure:"workers"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	style := regionfile.DefaultStyle()
	return Config{
		Color:      style.Color,
		Width:      style.Width,
		FontType:   style.Font.Type,
		FontSize:   style.Font.Size,
		FontWeight: style.Font.Weight,
		FontFamily: style.Font.Family,
		OutName:    "sample.reg",
		Search:     "Benson",
		Workers:    1,
	}
}

// SetDefaults registers Defaults() on v so that unmarshalling and env
// lookups see every key.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("color", d.Color)
	v.SetDefault("width", d.Width)
	v.SetDefault("fonttype", d.FontType)
	v.SetDefault("fontsize", d.FontSize)
	v.SetDefault("fontweight", d.FontWeight)
	v.SetDefault("fontfamily", d.FontFamily)
	v.SetDefault("outname", d.OutName)
	v.SetDefault("search", d.Search)
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("metrics_file", d.MetricsFile)
}

// Load reads the optional config file named by configFile, applies REGIONS_*
// environment overrides and unmarshals the result. Flags must already be
// bound on v. A file may spell the search option as searchString.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	// Registered after reading so a file value under the alias moves to search.
	v.RegisterAlias("searchString", "search")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a usable region file.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("fontsize must be positive, got %g", c.FontSize))
	}
	if strings.TrimSpace(c.Color) == "" {
		errs = append(errs, errors.New("color must not be empty"))
	}
	if strings.TrimSpace(c.OutName) == "" {
		errs = append(errs, errors.New("outname must not be empty"))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	return errors.Join(errs...)
}

// Style converts the display settings to a region-file style.
func (c Config) Style() regionfile.Style {
	return regionfile.Style{
		Color: c.Color,
		Width: c.Width,
		Font: regionfile.Font{
			Type:   c.FontType,
			Size:   c.FontSize,
			Weight: c.FontWeight,
			Family: c.FontFamily,
		},
	}
}
