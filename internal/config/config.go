// Package config loads the process configuration from POSEIDON_* environment
// variables.
package config

import (
	"time"

	"github.com/poseidoncompute/poseidonstore/internal/pkg/validator"
	"github.com/poseidoncompute/poseidonstore/internal/txstore"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "poseidon"

// Config is the process configuration.
type Config struct {
	// Fingerprint names the wallet namespace: 64 lowercase hex characters.
	Fingerprint string `envconfig:"FINGERPRINT" required:"true" validate:"required,fingerprint"`

	// BaseDir is the directory holding PoseidonStore/. Defaults to the home directory.
	BaseDir string `envconfig:"BASE_DIR" validate:"required"`

	// Solana RPC access. RPCRetries counts attempts per fetch, the first included.
	RPCEndpoint   string        `envconfig:"RPC_ENDPOINT" default:"https://api.mainnet-beta.solana.com" validate:"required,url"`
	RPCTimeout    time.Duration `envconfig:"RPC_TIMEOUT" default:"10s" validate:"gt=0"`
	RPCRetries    uint          `envconfig:"RPC_RETRIES" default:"3" validate:"gte=1"`
	RPCCommitment string        `envconfig:"RPC_COMMITMENT" default:"confirmed" validate:"oneof=processed confirmed finalized"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	TelemetryEnabled  bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	TelemetryEndpoint string `envconfig:"TELEMETRY_ENDPOINT"`
	TelemetryInsecure bool   `envconfig:"TELEMETRY_INSECURE" default:"false"`
	ServiceName       string `envconfig:"SERVICE_NAME" default:"poseidonstore" validate:"required"`
}

// Load reads the configuration from the environment, fills the base
// directory with the home directory when unset and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.BaseDir == "" {
		home, err := txstore.HomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.BaseDir = home
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
