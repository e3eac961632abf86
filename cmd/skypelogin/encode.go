// cmd/skypelogin/encode.go
package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OsbornePro/skypelogin/internal/config"
	"github.com/OsbornePro/skypelogin/internal/credential"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print a --code for the given --account and --password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadEnvFile(flagEnvFile); err != nil {
			return err
		}
		p := credential.Pair{
			Account:  firstNonEmpty(flagAccount, config.EnvAccount),
			Password: firstNonEmpty(flagPassword, config.EnvPassword),
		}
		if !p.Valid() {
			return errNoCredentials
		}
		key, stored, err := credential.LoadKey()
		if err != nil {
			return err
		}
		code, err := credential.Encode(p, key, rand.Reader)
		if err != nil {
			return err
		}
		if !stored {
			fmt.Fprintln(cmd.ErrOrStderr(), "note: using the built-in key; run 'skypelogin key set' for a private one")
		}
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}
