package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort     string `mapstructure:"SERVER_PORT"`
	ClientOrigin   string `mapstructure:"CLIENT_ORIGIN"`
	VendorAgentURL string `mapstructure:"VENDOR_AGENT_URL"`

	// Default search radius applied when the client omits radius_km.
	DefaultRadiusKm float64 `mapstructure:"DEFAULT_RADIUS_KM"`

	// Simulated order flow timings. Zero values fall back to the demo
	// defaults (3s accept, 2s prepare, 2s dispatch, 1s tracking, 2s tick).
	AcceptDelay   time.Duration `mapstructure:"ORDER_ACCEPT_DELAY"`
	PrepareDelay  time.Duration `mapstructure:"ORDER_PREPARE_DELAY"`
	DispatchDelay time.Duration `mapstructure:"ORDER_DISPATCH_DELAY"`
	TrackingDelay time.Duration `mapstructure:"ORDER_TRACKING_DELAY"`
	TickInterval  time.Duration `mapstructure:"TRACKING_TICK_INTERVAL"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("DEFAULT_RADIUS_KM", 2.0)

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No .env file found.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
