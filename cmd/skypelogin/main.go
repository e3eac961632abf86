// cmd/skypelogin/main.go
// skypelogin – launches Skype for Desktop and signs in an account by
// posting clicks and keystrokes to its window.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/OsbornePro/skypelogin/internal/dialog"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// exitFailure is the status for every failed run.
const exitFailure = 2

var rootCmd = &cobra.Command{
	Use:           "skypelogin",
	Short:         "Launch Skype for Desktop and sign in an account",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLogin,
}

func init() {
	addRunFlags(rootCmd)
	rootCmd.AddCommand(runCmd, encodeCmd, keyCmd, windowsCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "stop.")
			os.Exit(exitFailure)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		if !noDialog {
			dialog.Error(err.Error())
		}
		os.Exit(exitFailure)
	}
}
