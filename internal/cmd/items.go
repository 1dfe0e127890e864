package cmd

import (
	"fmt"

	"configreader/internal/literal"

	"github.com/spf13/cobra"
)

// newItemsCmd creates the items command.
func newItemsCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items [section]",
		Short: "List the keys and values of a section",
		Long: `List every key of a section with its decoded value.

Without an argument the default section is listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			var section string
			if len(args) == 1 {
				section = args[0]
			}

			items, err := app.Reader.Items(section)
			if err != nil {
				return err
			}

			if app.JSON {
				return app.printJSON(items)
			}
			items.Each(func(key string, v any) {
				fmt.Fprintf(app.Out, "%s = %s\n", key, literal.Encode(v))
			})
			return nil
		},
	}
	return cmd
}
