package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substratekit/gosubd/internal/crypto/keyring"
	"github.com/substratekit/gosubd/internal/keystore"
)

var keystorePath string

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the on-disk keystore",
}

var keysAddCmd = &cobra.Command{
	Use:   "add <secret-uri>",
	Short: "Resolve a secret URI and store the resulting key pair",
	Args:  cobra.ExactArgs(1),
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

		ks, err := keystore.Open(keystorePath)
		if err != nil {
			return err
		}
		defer ks.Close()

		if err := ks.Insert(pair); err != nil {
			return err
		}
		fmt.Printf("Stored %s key %s\n", kt, pair.Public().SS58(prefix))
		return nil
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored public keys of the selected scheme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kt, prefix, err := resolveSettings()
		if err != nil {
			return err
		}

		ks, err := keystore.Open(keystorePath)
		if err != nil {
			return err
		}
		defer ks.Close()

		keys, err := ks.List(kt)
		if err != nil {
			return err
		}
		for _, pub := range keys {
			fmt.Printf("%s  0x%s\n", pub.SS58(prefix), hex.EncodeToString(pub.Bytes()))
		}
		return nil
	},
}

var keysRemoveCmd = &cobra.Command{
	Use:   "remove <address-or-hex>",
	Short: "Remove a stored key pair",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kt, _, err := resolveSettings()
		if err != nil {
			return err
		}

		pub, err := publicKeyArg(kt, args[0])
		if err != nil {
			return err
		}

		ks, err := keystore.Open(keystorePath)
		if err != nil {
			return err
		}
		defer ks.Close()

		return ks.Remove(kt, pub.Bytes())
	},
}

var keysSignCmd = &cobra.Command{
	Use:   "sign <address-or-hex> <message>",
	Short: "Sign a message with a stored key pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kt, _, err := resolveSettings()
		if err != nil {
			return err
		}

		pub, err := publicKeyArg(kt, args[0])
		if err != nil {
			return err
		}

		ks, err := keystore.Open(keystorePath)
		if err != nil {
			return err
		}
		defer ks.Close()

		pair, err := ks.Get(kt, pub.Bytes())
		if err != nil {
			return err
		}

		sig, err := pair.Sign([]byte(args[1]))
		if err != nil {
			return err
		}
		fmt.Printf("0x%s\n", hex.EncodeToString(sig.Bytes()))
		return nil
	},
}

func init() {
	keysCmd.PersistentFlags().StringVar(&keystorePath, "keystore", "keystore", "keystore directory path")
	keysCmd.AddCommand(keysAddCmd)
	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysRemoveCmd)
	keysCmd.AddCommand(keysSignCmd)
	rootCmd.AddCommand(keysCmd)
}
