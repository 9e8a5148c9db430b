package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/keyring"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <secret-uri>",
	Short: "Inspect the key pair behind a secret URI",
	Long: `Resolve a secret URI (phrase, hex seed or empty for the dev phrase,
followed by derivation junctions) and print the resulting public key and
SS58 address. Example:

  gosubd inspect "//Alice"
  gosubd inspect "bottom drive obey lake curtain smoke basket hold race lonely fit walk//polkadot/0"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kt, prefix, err := resolveSettings()
		if err != nil {
			return err
		}

		if err := ensureDevPhraseAllowed(args[0]); err != nil {
			return err
		}
		pair, err := keyring.FromURI(kt, args[0], password)
		if err != nil {
			return err
		}

		accountID := crypto.AccountID(pair.Public())
		fmt.Printf("Secret URI:     %s\n", args[0])
		fmt.Printf("Scheme:         %s\n", kt)
		if seed := pair.Seed(); seed != nil {
			fmt.Printf("Seed:           0x%s\n", hex.EncodeToString(seed))
		}
		fmt.Printf("Public key:     0x%s\n", hex.EncodeToString(pair.Public().Bytes()))
		fmt.Printf("Account ID:     0x%s\n", hex.EncodeToString(accountID[:]))
		fmt.Printf("SS58 address:   %s\n", pair.Public().SS58(prefix))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
