// Package cmd implements the configreader command-line interface.
package cmd

import (
	"encoding/json"
	"io"
	"os"

	"configreader/internal/config"
	"configreader/internal/configreader"
	"configreader/internal/envbridge"
	"configreader/internal/logger"

	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	Reader   *configreader.Reader
	Settings config.Settings
	Log      *logger.Logger
	Env      envbridge.Namespace // target of export env, source of import env
	Out      io.Writer
	Err      io.Writer
	JSON     bool // output in JSON format
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	if a.isTerminal() {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// WarnColor returns the string wrapped in orange ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) WarnColor(s string) string {
	if a.isTerminal() {
		return "\033[38;5;214m" + s + "\033[0m"
	}
	return s
}

func (a *App) isTerminal() bool {
	f, ok := a.Out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printJSON writes v to stdout as one JSON document.
func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.Out)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
