package cmd

import (
	"fmt"

	"configreader/internal/configreader"
	"configreader/internal/literal"

	"github.com/spf13/cobra"
)

// newSetCmd creates the set command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "set <key> <value> [<key> <value>...]",
		Short: "Set one or more values",
		Long: `Set one or more key/value pairs and save the file.

Values are stored as given and decoded when read, so 15 reads back as
an integer and ['a', 'b'] as a list.

Examples:
  configreader set count 15
  configreader set host localhost port 5432 --in db`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expected key/value pairs, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			values := literal.NewMap()
			for i := 0; i < len(args); i += 2 {
				values.Set(args[i], args[i+1])
			}
			if err := app.Reader.SetMany(section, values, configreader.WithCommit()); err != nil {
				return err
			}

			if app.JSON {
				return app.printJSON(literal.MapOf(
					"section", sectionLabel(app, section),
					"values", values,
				))
			}

			values.Each(func(key string, v any) {
				fmt.Fprintf(app.Out, "%s %s = %s\n", app.SuccessColor("Set"), key, v)
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "in", "", "Section to write (default: the default section)")

	return cmd
}
