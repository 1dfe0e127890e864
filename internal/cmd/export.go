package cmd

import (
	"fmt"
	"strings"

	"configreader/internal/envbridge"
	"configreader/internal/jsonbridge"

	"github.com/spf13/cobra"
)

// newExportCmd creates the export command with subcommands.
func newExportCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export values to JSON or environment variables",
		Long: `Export values to another format.

Subcommands:
  json  Write every section as a JSON document
  env   Print every key as an environment variable assignment`,
	}

	cmd.AddCommand(newExportJSONCmd(provider))
	cmd.AddCommand(newExportEnvCmd(provider))

	return cmd
}

// newExportJSONCmd creates the "export json" subcommand.
func newExportJSONCmd(provider *AppProvider) *cobra.Command {
	var (
		output   string
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Write every section as a JSON document",
		Long: `Write every section as a JSON object keyed by section name.

Without --output the document is written to stdout.

Examples:
  configreader export json
  configreader export json --output settings.json --encoding utf-16`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if output != "" {
				if err := app.Reader.ToJSONFile(output, encoding); err != nil {
					return err
				}
				if app.JSON {
					return app.printJSON(map[string]string{"output": output})
				}
				fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("Exported to"), output)
				return nil
			}

			w, err := jsonbridge.EncodeTo(app.Out, encoding)
			if err != nil {
				return err
			}
			if err := app.Reader.ToJSON(w); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default: stdout)")
	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "Text encoding of the document")

	return cmd
}

// newExportEnvCmd creates the "export env" subcommand.
func newExportEnvCmd(provider *AppProvider) *cobra.Command {
	var noPrefix bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print every key as an environment variable assignment",
		Long: `Print every key as NAME=value, sorted by name.

Names are SECTION_KEY in upper case; --no-prefix drops the section.
Later sections win when two keys map to the same name.

Examples:
  eval "$(configreader export env)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			vars := envbridge.MapEnv{}
			if err := app.Reader.ToEnv(vars, !noPrefix); err != nil {
				return err
			}

			if app.JSON {
				return app.printJSON(map[string]string(vars))
			}
			fmt.Fprint(app.Out, strings.Join(vars.Environ(), "\n"))
			if len(vars) > 0 {
				fmt.Fprintln(app.Out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noPrefix, "no-prefix", false, "Use the bare key as the variable name")

	return cmd
}
