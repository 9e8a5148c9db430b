package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/keyring"
	"github.com/substratekit/gosubd/internal/crypto/mnemonic"
)

var generateWords int

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new random key pair",
	Long: `Generate a fresh mnemonic phrase and print the derived key pair:
secret phrase, seed, public key and SS58 address.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kt, prefix, err := resolveSettings()
		if err != nil {
			return err
		}

		phrase, err := mnemonic.Generate(generateWords)
		if err != nil {
			return err
		}
		pair, err := keyring.FromPhrase(kt, phrase, password)
		if err != nil {
			return err
		}

		accountID := crypto.AccountID(pair.Public())
		fmt.Printf("Secret phrase:  %s\n", phrase)
		fmt.Printf("Scheme:         %s\n", kt)
		fmt.Printf("Seed:           0x%s\n", hex.EncodeToString(pair.Seed()))
		fmt.Printf("Public key:     0x%s\n", hex.EncodeToString(pair.Public().Bytes()))
		fmt.Printf("Account ID:     0x%s\n", hex.EncodeToString(accountID[:]))
		fmt.Printf("SS58 address:   %s\n", pair.Public().SS58(prefix))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateWords, "words", 12, "mnemonic length: 12, 15, 18, 21 or 24 words")
	rootCmd.AddCommand(generateCmd)
}
