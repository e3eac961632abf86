// cmd/skypelogin/windows.go
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OsbornePro/skypelogin/internal/win32"
	"github.com/OsbornePro/skypelogin/internal/window"
)

var flagAll bool

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List top-level windows, highlighting the ones taken for Skype",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		m, err := window.NewMatcher(cfg.TitlePattern, cfg.ClassPattern)
		if err != nil {
			return err
		}
		all, err := win32.TopLevelWindows()
		if err != nil {
			return err
		}

		hit := color.New(color.FgGreen, color.Bold)
		out := cmd.OutOrStdout()
		matched := 0
		for _, w := range all {
			line := fmt.Sprintf("%-12s %-32q %s", w.Handle, w.Title, w.Class)
			switch {
			case m.Match(w):
				matched++
				hit.Fprintln(out, line)
			case flagAll:
				fmt.Fprintln(out, line)
			}
		}
		fmt.Fprintf(out, "%d matching of %d windows\n", matched, len(all))
		return nil
	},
}

func init() {
	windowsCmd.Flags().BoolVar(&flagAll, "all", false, "also list windows that do not match")
}
