package cmd

import (
	"configreader/internal/preview"

	"github.com/spf13/cobra"
)

// newShowCmd creates the show command.
func newShowCmd(provider *AppProvider) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every section",
		Long: `Show every section with its decoded values.

By default a framed preview is printed. Use --yaml for a YAML document
or the global --json flag for a JSON one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if app.JSON {
				return app.Reader.ToJSON(app.Out)
			}
			if asYAML {
				snapshot, err := app.Reader.Show()
				if err != nil {
					return err
				}
				return preview.RenderYAML(app.Out, snapshot)
			}
			_, err = app.Reader.Print(app.Out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output as YAML")

	return cmd
}
