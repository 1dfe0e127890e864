package cmd

import (
	"fmt"

	"configreader/internal/configreader"
	"configreader/internal/envbridge"
	"configreader/internal/jsonbridge"

	"github.com/spf13/cobra"
)

// newImportCmd creates the import command with subcommands.
func newImportCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import values from JSON or environment variables",
		Long: `Import values into the file and save it.

Subcommands:
  json  Load the top-level members of a JSON object
  env   Load environment variables`,
	}

	cmd.AddCommand(newImportJSONCmd(provider))
	cmd.AddCommand(newImportEnvCmd(provider))

	return cmd
}

// newImportJSONCmd creates the "import json" subcommand.
func newImportJSONCmd(provider *AppProvider) *cobra.Command {
	var (
		target     string
		identifier string
		encoding   string
	)

	cmd := &cobra.Command{
		Use:   "json <file>",
		Short: "Load the top-level members of a JSON object",
		Long: `Load the top-level members of a JSON object as keys.

Members are written to --target (default: the default section). With
--identifier, members whose name starts with it must be objects and
become sections named without the identifier.

Examples:
  configreader import json data.json --target json_data
  configreader import json data.json --identifier @`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			path := args[0]
			err = app.Reader.LoadJSONFile(path, jsonbridge.LoadOptions{
				Section:    target,
				Identifier: identifier,
				Encoding:   encoding,
			}, configreader.WithCommit())
			if err != nil {
				return err
			}
			app.Log.Info().Str("file", path).Msg("imported json")

			if app.JSON {
				return app.printJSON(map[string]string{"imported": path})
			}
			fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("Imported"), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Section for plain members (default: the default section)")
	cmd.Flags().StringVar(&identifier, "identifier", "", "Prefix marking members that become sections")
	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "Text encoding of the document")

	return cmd
}

// newImportEnvCmd creates the "import env" subcommand.
func newImportEnvCmd(provider *AppProvider) *cobra.Command {
	var (
		target string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Load environment variables",
		Long: `Load environment variables into the file.

Variables whose name already is a key in any section, ignoring case,
are skipped. The rest are written to --target (default: the default
section). With --prefix only variables named PREFIX_* are loaded, without
the prefix, into --target or a section named after the prefix.

Examples:
  configreader import env
  configreader import env --prefix myapp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			n, err := app.Reader.LoadEnv(app.Env, envbridge.LoadOptions{
				Section: target,
				Prefix:  prefix,
			}, configreader.WithCommit())
			if err != nil {
				return err
			}
			app.Log.Info().Int("count", n).Str("prefix", prefix).Msg("imported environment")

			if app.JSON {
				return app.printJSON(map[string]int{"imported": n})
			}
			fmt.Fprintf(app.Out, "%s %d variables\n", app.SuccessColor("Imported"), n)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Section to write (default: the default section)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only load variables named PREFIX_*")

	return cmd
}
