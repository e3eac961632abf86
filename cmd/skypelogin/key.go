// cmd/skypelogin/key.go
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OsbornePro/skypelogin/internal/credential"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the code key kept in the OS keyring",
}

var keySetCmd = &cobra.Command{
	Use:   "set [hex-key]",
	Short: "Store a 32-byte hex key; a random one is generated when omitted",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var k string
		if len(args) == 1 {
			k = args[0]
		} else {
			b := make([]byte, credential.KeySize)
			if _, err := rand.Read(b); err != nil {
				return err
			}
			k = hex.EncodeToString(b)
		}
		if err := credential.StoreKey(k); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "key stored; codes made with the old key no longer decode")
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored key and go back to the built-in one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := credential.ClearKey(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "key cleared")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd, keyClearCmd)
}
