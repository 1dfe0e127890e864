package cmd

import (
	"io"
	"os"
	"sync"

	"configreader/internal/config"
	"configreader/internal/configreader"
	"configreader/internal/envbridge"
	"configreader/internal/logger"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Settings captured from flags before Execute()
	Flags config.Settings

	// Environ supplies CONFIGREADER_* settings. Nil means the process
	// environment.
	Environ map[string]string

	Env envbridge.Namespace
	Out io.Writer
	Err io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands against a temporary file.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app:   app,
		Flags: app.Settings,
		Env:   app.Env,
		Out:   app.Out,
		Err:   app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	settings, err := config.Resolve(p.Flags, p.Environ)
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	env := p.Env
	if env == nil {
		env = envbridge.OSEnv{}
	}

	newLogger := logger.New
	if settings.LogFormat == config.LogFormatJSON {
		newLogger = logger.NewJSON
	}
	log, err := newLogger(errOut, settings.LogLevel)
	if err != nil {
		return nil, err
	}

	seeds, err := settings.SeedValues()
	if err != nil {
		return nil, err
	}
	reader, err := configreader.Open(settings.File, configreader.Options{
		Options:  settings.StoreOptions(),
		Defaults: seeds,
		Logger:   log,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Reader:   reader,
		Settings: settings,
		Log:      log,
		Env:      env,
		Out:      out,
		Err:      errOut,
		JSON:     settings.JSON,
	}, nil
}

// jsonOutput reports whether JSON output was requested, without opening
// the file.
func (p *AppProvider) jsonOutput() bool {
	if p.app != nil {
		return p.app.JSON
	}
	if p.Flags.JSON {
		return true
	}
	s, err := config.FromEnv(p.Environ)
	return err == nil && s.JSON
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Env: envbridge.OSEnv{},
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "configreader",
		Short: "Read and edit INI configuration files",
		Long: `configreader reads, edits and converts INI configuration files.

Values are stored as text and read back as typed literals: 15 is an
integer, True a boolean, ['a', 'b'] a list. Changes are written back to
the file by the commands that modify it.

Settings can also come from CONFIGREADER_FILE, CONFIGREADER_SECTION,
CONFIGREADER_CASE_SENSITIVE, CONFIGREADER_INTERPOLATE,
CONFIGREADER_EXPAND_ENV, CONFIGREADER_LOG_LEVEL, CONFIGREADER_LOG_FORMAT,
CONFIGREADER_JSON and CONFIGREADER_DEFAULTS (comma-separated). Flags take
precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&provider.Flags.File, "file", "f", "", "INI file to use (default: settings.ini)")
	flags.StringVarP(&provider.Flags.Section, "section", "s", "", "Default section (default: main)")
	flags.BoolVar(&provider.Flags.JSON, "json", false, "Output in JSON format")
	flags.BoolVar(&provider.Flags.CaseSensitive, "case-sensitive", false, "Keep the case of key names")
	flags.BoolVar(&provider.Flags.Interpolate, "interpolate", false, "Expand %(key)s references in values")
	flags.BoolVar(&provider.Flags.ExpandEnv, "expand-env", false, "Expand $VAR references in values")
	flags.StringVar(&provider.Flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error (default: warn)")
	flags.StringVar(&provider.Flags.LogFormat, "log-format", "", "Log format: text or json (default: text)")
	flags.StringArrayVar(&provider.Flags.Defaults, "defaults", nil, "Value used when the file lacks it, as [section.]key=value (repeatable)")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newUnsetCmd(provider))
	rootCmd.AddCommand(newSectionsCmd(provider))
	rootCmd.AddCommand(newItemsCmd(provider))
	rootCmd.AddCommand(newRemoveSectionCmd(provider))
	rootCmd.AddCommand(newSearchCmd(provider))
	rootCmd.AddCommand(newShowCmd(provider))
	rootCmd.AddCommand(newExportCmd(provider))
	rootCmd.AddCommand(newImportCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
