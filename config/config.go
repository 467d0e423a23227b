package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the scraper.
type Config struct {
	OpenFoodFacts OpenFoodFactsConfig
	FDC           FDCConfig
	HTTP          HTTPConfig
	Pacing        PacingConfig
	Output        OutputConfig
}

// OpenFoodFactsConfig holds tier-1 API configuration.
type OpenFoodFactsConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// FDCConfig holds USDA FoodData Central (tier-2) configuration.
// An empty APIKey is valid and disables the tier.
type FDCConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// HTTPConfig holds settings shared by both API clients.
type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// PacingConfig holds the courtesy delay applied between records.
type PacingConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Path string `mapstructure:"path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable settings
	v.SetEnvPrefix("INSTACART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The tier-2 credential is conventionally supplied as USDA_API_KEY.
	if err := v.BindEnv("fdc.api_key", "INSTACART_FDC_API_KEY", "USDA_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding api key env: %w", err)
	}

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Nutrition API defaults
	v.SetDefault("openfoodfacts.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("fdc.base_url", "https://api.nal.usda.gov/fdc")

	// HTTP defaults
	v.SetDefault("http.timeout", "9s")
	v.SetDefault("http.user_agent", "InstacartCalorieBot/0.1 (+https://github.com/haasonsaas/instacart-calorie-scraper)")

	// Courtesy pacing between records
	v.SetDefault("pacing.interval", "500ms")

	// Output defaults
	v.SetDefault("output.path", "instacart_with_calories.csv")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OpenFoodFacts.BaseURL == "" {
		return fmt.Errorf("OpenFoodFacts base URL is required")
	}

	if config.FDC.BaseURL == "" {
		return fmt.Errorf("FDC base URL is required")
	}

	if config.HTTP.Timeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive, got: %s", config.HTTP.Timeout)
	}

	if config.Pacing.Interval < 0 {
		return fmt.Errorf("pacing interval must not be negative, got: %s", config.Pacing.Interval)
	}

	return nil
}
