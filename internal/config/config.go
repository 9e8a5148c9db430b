// Package config loads the CLI configuration: default signature scheme,
// SS58 network prefix and dev-phrase policy. The key core itself takes
// explicit parameters and never reads configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	addresscodec "github.com/substratekit/gosubd/internal/codec/address-codec"
	"github.com/substratekit/gosubd/internal/crypto"
)

// Config holds the tool-level settings.
type Config struct {
	// Scheme is the default signature scheme for commands that do not pass
	// --scheme: "sr25519", "ed25519" or "secp256k1".
	Scheme string `toml:"scheme" mapstructure:"scheme"`

	// Network is the SS58 network prefix used when rendering addresses.
	Network uint16 `toml:"network" mapstructure:"network"`

	// AllowDevPhrase permits an empty URI base to resolve to the well-known
	// development phrase. Disable on anything that touches real funds.
	AllowDevPhrase bool `toml:"allow_dev_phrase" mapstructure:"allow_dev_phrase"`
}

// Load reads configuration in priority order: defaults, then the optional
// config file, then GOSUBD_-prefixed environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("scheme", crypto.KeyTypeSr25519.String())
	v.SetDefault("network", int(addresscodec.SubstratePrefix))
	v.SetDefault("allow_dev_phrase", true)

	if path != "" {
		v.SetConfigFile(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("GOSUBD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded settings.
func Validate(cfg *Config) error {
	if _, err := crypto.ParseKeyType(cfg.Scheme); err != nil {
		return err
	}
	if cfg.Network > addresscodec.MaxPrefix {
		return fmt.Errorf("network prefix %d exceeds the 14-bit maximum", cfg.Network)
	}
	return nil
}

// KeyType returns the configured default scheme as a KeyType.
func (c *Config) KeyType() crypto.KeyType {
	kt, _ := crypto.ParseKeyType(c.Scheme)
	return kt
}
