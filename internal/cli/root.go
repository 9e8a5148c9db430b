// Package cli implements the gosubd command-line interface: key generation,
// secret-URI inspection, signing and verification.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/substratekit/gosubd/internal/config"
	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/derivation"
)

var (
	// Global flags
	configFile string
	schemeName string
	network    uint16
	password   string

	// Loaded configuration state
	allowDevPhrase bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gosubd",
	Short: "gosubd - Substrate-family key management in Go",
	Long: `gosubd manages asymmetric key pairs for a Substrate-family blockchain
client: sr25519, ed25519 and secp256k1 schemes, hierarchical derivation via
secret URIs (phrase//hard/soft///password), and SS58 address encoding.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&schemeName, "scheme", "", "signature scheme: sr25519, ed25519 or secp256k1")
	rootCmd.PersistentFlags().Uint16Var(&network, "network", 0, "SS58 network prefix for addresses")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "derivation password, overrides any ///-embedded one")
}

// resolveSettings merges flags over the loaded configuration and returns the
// effective scheme and network prefix.
func resolveSettings() (crypto.KeyType, uint16, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return crypto.KeyTypeUnknown, 0, err
	}

	kt := cfg.KeyType()
	if schemeName != "" {
		kt, err = crypto.ParseKeyType(schemeName)
		if err != nil {
			return crypto.KeyTypeUnknown, 0, err
		}
	}

	prefix := cfg.Network
	if rootCmd.PersistentFlags().Changed("network") {
		prefix = network
	}
	allowDevPhrase = cfg.AllowDevPhrase
	return kt, prefix, nil
}

// ensureDevPhraseAllowed rejects URIs with an empty base when the
// configuration forbids falling back to the well-known dev phrase.
func ensureDevPhraseAllowed(uri string) error {
	if allowDevPhrase {
		return nil
	}
	path, err := derivation.ParseURI(uri)
	if err != nil {
		return err
	}
	if path.Phrase == "" {
		return fmt.Errorf("empty phrase resolves to the dev phrase, which is disabled by configuration")
	}
	return nil
}
