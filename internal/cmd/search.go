package cmd

import (
	"fmt"

	"configreader/internal/literal"
	"configreader/internal/sectionstore"

	"github.com/spf13/cobra"
)

// newSearchCmd creates the search command.
func newSearchCmd(provider *AppProvider) *cobra.Command {
	var (
		ignoreCase bool
		fuzzy      bool
		threshold  float64
	)

	cmd := &cobra.Command{
		Use:   "search <value>",
		Short: "Find the first key holding a value",
		Long: `Find the first key, in file order, whose value matches.

Values are compared as text after expansion. With --fuzzy the first
value whose similarity ratio reaches --threshold matches.

Examples:
  configreader search localhost
  configreader search NAIROBI --ignore-case
  configreader search nairobbi --fuzzy --threshold 0.8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			match, found, err := app.Reader.SearchWith(args[0], sectionstore.SearchOptions{
				IgnoreCase: ignoreCase,
				Fuzzy:      fuzzy,
				Threshold:  threshold,
			})
			if err != nil {
				return err
			}

			if app.JSON {
				result := literal.MapOf("found", found)
				if found {
					result.Set("section", match.Section)
					result.Set("key", match.Key)
					result.Set("value", match.Value)
				}
				return app.printJSON(result)
			}

			if !found {
				fmt.Fprintln(app.Out, "No match found")
				return nil
			}
			fmt.Fprintf(app.Out, "[%s] %s = %s\n", match.Section, match.Key, match.Value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Compare without regard to case")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "Match on similarity instead of equality")
	cmd.Flags().Float64Var(&threshold, "threshold", sectionstore.DefaultThreshold, "Minimum similarity ratio for --fuzzy (0 to 1)")

	return cmd
}
