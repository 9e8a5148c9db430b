package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/substratekit/gosubd/internal/crypto/keyring"
)

var signHex bool

var signCmd = &cobra.Command{
	Use:   "sign <secret-uri> <message>",
	Short: "Sign a message with the key behind a secret URI",
	Long: `Sign a message and print the scheme-tagged signature as hex.
The message is taken as a UTF-8 string, or as hex bytes with --hex.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kt, _, err := resolveSettings()
		if err != nil {
			return err
		}

		msg, err := messageBytes(args[1])
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
		sig, err := pair.Sign(msg)
		if err != nil {
			return err
		}

		fmt.Printf("Scheme:     %s\n", sig.Type())
		fmt.Printf("Signature:  0x%s\n", hex.EncodeToString(sig.Bytes()))
		return nil
	},
}

func messageBytes(arg string) ([]byte, error) {
	if !signHex {
		return []byte(arg), nil
	}
	msg, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex message: %w", err)
	}
	return msg, nil
}

func init() {
	signCmd.Flags().BoolVar(&signHex, "hex", false, "treat the message as hex bytes")
	rootCmd.AddCommand(signCmd)
}
