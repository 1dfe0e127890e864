package cmd

import (
	"fmt"

	"configreader/internal/literal"
	"configreader/internal/sectionstore"

	"github.com/spf13/cobra"
)

// newGetCmd creates the get command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	var (
		section       string
		raw           bool
		defaultValue  string
		commitDefault bool
	)

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a value",
		Long: `Get the value of a key.

The stored text is decoded into a typed value unless --raw is given.
When the key is missing and --default is given, the default is printed
instead; --commit-default also writes it to the file.

Examples:
  configreader get count
  configreader get host --in db
  configreader get port --default 8080 --commit-default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			opts := sectionstore.GetOptions{
				Section:       section,
				Raw:           raw,
				UseDefault:    cmd.Flags().Changed("default"),
				CommitDefault: commitDefault,
			}
			if opts.UseDefault {
				opts.Default = defaultValue
			}

			hadKey := app.Reader.Store().HasKey(section, key)
			value, err := app.Reader.Get(key, opts)
			if err != nil {
				return err
			}
			if commitDefault && !hadKey {
				if err := app.Reader.Save(); err != nil {
					return err
				}
			}

			if app.JSON {
				return app.printJSON(literal.MapOf(
					"section", sectionLabel(app, section),
					"key", key,
					"value", value,
				))
			}

			fmt.Fprintln(app.Out, literal.Encode(value))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "in", "", "Section to read (default: the default section)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the stored text without decoding it")
	cmd.Flags().StringVar(&defaultValue, "default", "", "Value to use when the key is missing")
	cmd.Flags().BoolVar(&commitDefault, "commit-default", false, "Write the default to the file when it is used")

	return cmd
}

// sectionLabel names the section a command operated on.
func sectionLabel(app *App, section string) string {
	if section == "" {
		return app.Reader.Store().DefaultSection()
	}
	return section
}
