package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/substratekit/gosubd/internal/crypto"
	"github.com/substratekit/gosubd/internal/crypto/keyring"
)

var verifyHex bool

var verifyCmd = &cobra.Command{
	Use:   "verify <address-or-pubkey> <message> <signature>",
	Short: "Verify a signature against an address or public key",
	Long: `Check a hex signature over a message against an SS58 address or a
0x-prefixed hex public key. Exits non-zero when the signature is invalid.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kt, _, err := resolveSettings()
		if err != nil {
			return err
		}

		pub, err := publicKeyArg(kt, args[0])
		if err != nil {
			return err
		}

		signHex = verifyHex
		msg, err := messageBytes(args[1])
		if err != nil {
			return err
		}

		sigBytes, err := hex.DecodeString(strings.TrimPrefix(args[2], "0x"))
		if err != nil {
			return fmt.Errorf("invalid hex signature: %w", err)
		}
		sig, err := crypto.NewSignature(kt, sigBytes)
		if err != nil {
			return err
		}

		if !pub.Verify(msg, sig) {
			return fmt.Errorf("signature is invalid")
		}
		fmt.Println("Signature is valid.")
		return nil
	},
}

func publicKeyArg(kt crypto.KeyType, arg string) (crypto.PublicKey, error) {
	if raw, ok := strings.CutPrefix(arg, "0x"); ok {
		b, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid hex public key: %w", err)
		}
		return keyring.PublicKeyFromBytes(kt, b)
	}
	pub, _, err := keyring.PublicKeyFromSS58(kt, arg)
	return pub, err
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyHex, "hex", false, "treat the message as hex bytes")
	rootCmd.AddCommand(verifyCmd)
}
