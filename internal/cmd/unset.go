package cmd

import (
	"fmt"

	"configreader/internal/configreader"
	"configreader/internal/literal"

	"github.com/spf13/cobra"
)

// newUnsetCmd creates the unset command.
func newUnsetCmd(provider *AppProvider) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a key",
		Long: `Remove a key and save the file.

Removing a key that is not set is not an error.

Examples:
  configreader unset count
  configreader unset host --in db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			removed, err := app.Reader.RemoveKey(section, key, configreader.WithCommit())
			if err != nil {
				return err
			}

			if app.JSON {
				return app.printJSON(literal.MapOf(
					"section", sectionLabel(app, section),
					"key", key,
					"removed", removed,
				))
			}

			if removed {
				fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("Removed"), key)
			} else {
				fmt.Fprintf(app.Out, "%s %s\n", key, app.WarnColor("(not set)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "in", "", "Section to edit (default: the default section)")

	return cmd
}
