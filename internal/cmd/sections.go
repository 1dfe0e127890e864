package cmd

import (
	"fmt"

	"configreader/internal/configreader"
	"configreader/internal/literal"

	"github.com/spf13/cobra"
)

// newSectionsCmd creates the sections command.
func newSectionsCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List sections",
		Long: `List section names in file order.

The default section is always listed first, even when it is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			sections, err := app.Reader.Sections()
			if err != nil {
				return err
			}

			if app.JSON {
				return app.printJSON(sections)
			}
			for _, s := range sections {
				fmt.Fprintln(app.Out, s)
			}
			return nil
		},
	}
	return cmd
}

// newRemoveSectionCmd creates the remove-section command.
func newRemoveSectionCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-section <name>",
		Short: "Remove a section and its keys",
		Long: `Remove a section and save the file.

The default section cannot be removed; its keys are cleared instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			name := args[0]
			removed, err := app.Reader.RemoveSection(name, configreader.WithCommit())
			if err != nil {
				return err
			}

			if app.JSON {
				return app.printJSON(literal.MapOf(
					"section", name,
					"removed", removed,
				))
			}

			if removed {
				fmt.Fprintf(app.Out, "%s [%s]\n", app.SuccessColor("Removed"), name)
			} else {
				fmt.Fprintf(app.Out, "[%s] %s\n", name, app.WarnColor("(not present)"))
			}
			return nil
		},
	}
	return cmd
}
