package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the current version of configreader. It can be overridden at
// build time via -ldflags "-X configreader/internal/cmd.Version=1.2.3".
var Version = "0.4.0"

func newVersionCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if provider.jsonOutput() {
				app := &App{Out: provider.Out}
				return app.printJSON(map[string]string{
					"version": Version,
				})
			}
			fmt.Fprintf(provider.Out, "configreader version %s\n", Version)
			return nil
		},
	}
	return cmd
}
