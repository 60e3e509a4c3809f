package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application's configuration values.
type Config struct {
	HostIP       string `mapstructure:"HOST_IP"`            // Host IP for the server
	RESTPort     int    `mapstructure:"REST_PORT"`          // Port for the REST API
	GinMode      string `mapstructure:"GIN_MODE"`           // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret    string `mapstructure:"JWT_SECRET"`         // Secret key for JWT signing; empty disables protected routes
	JWTIssuer    string `mapstructure:"JWT_ISSUER"`         // Issuer claim for JWTs
	MaxDimension int    `mapstructure:"MAZE_MAX_DIMENSION"` // Largest rows or columns value accepted over HTTP
	DefaultSpeed int    `mapstructure:"MAZE_DEFAULT_SPEED"` // Animation speed, 1 (slow) to 10 (fast), 0 for none
}

// envKeys lists the environment variables read by Load.
var envKeys = []string{
	"HOST_IP",
	"REST_PORT",
	"GIN_MODE",
	"JWT_SECRET",
	"JWT_ISSUER",
	"MAZE_MAX_DIMENSION",
	"MAZE_DEFAULT_SPEED",
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		HostIP:       "0.0.0.0",
		RESTPort:     8080,
		GinMode:      "release",
		JWTIssuer:    "vinom-mazegen",
		MaxDimension: 100,
		DefaultSpeed: 5,
	}
}

// Load initializes and returns the application configuration.
// It loads environment variables from the given .env files (".env" when none
// is given), then overlays every set variable on the defaults.
func Load(envFiles ...string) (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	raw := make(map[string]interface{}, len(envKeys))
	for _, key := range envKeys {
		if value, exists := os.LookupEnv(key); exists {
			raw[key] = value
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.RESTPort <= 0 || c.RESTPort > 65535 {
		return fmt.Errorf("%w: REST_PORT %d out of range", ErrInvalidConfig, c.RESTPort)
	}
	if c.MaxDimension < 1 {
		return fmt.Errorf("%w: MAZE_MAX_DIMENSION must be at least 1", ErrInvalidConfig)
	}
	if c.DefaultSpeed < 0 || c.DefaultSpeed > 10 {
		return fmt.Errorf("%w: MAZE_DEFAULT_SPEED must be between 0 and 10", ErrInvalidConfig)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: unknown GIN_MODE %q", ErrInvalidConfig, c.GinMode)
	}
	return nil
}

// Addr returns the REST listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}
