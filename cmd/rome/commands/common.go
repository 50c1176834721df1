package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rome/config"
	"github.com/teranos/rome/display"
	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
)

// ErrSilent is returned after a command has already reported its failures;
// main exits non-zero without printing it again.
var ErrSilent = errors.New("command failed")

// loadConfig loads the layered configuration and validates it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// outputFormat resolves --json/--format against the configured default
func outputFormat(cmd *cobra.Command, cfg *config.Config) string {
	return display.ResolveFormat(cmd, cfg.GetFormat())
}

// addOutputFlags registers --json and --format on cmd
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	cmd.Flags().String("format", "", "Output format: text, json, yaml, toml (default from output.format)")
}

// ReportError prints err and its hints to w
func ReportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrSilent) {
		return
	}
	pterm.Error.WithWriter(w).Println(err.Error())
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.WithWriter(w).Println(hint)
	}
}

// errorMessage is the text stored in structured results
func errorMessage(err error) (msg, hint string) {
	if err == nil {
		return "", ""
	}
	return err.Error(), errors.Hint(err)
}

// unrecognized reports input that classifies as neither notation
func unrecognized(input string) error {
	err := errors.MarkInvalidInput(errors.Newf("%q is neither a Roman numeral nor an integer", input))
	return errors.WithHint(err, "use the letters I, V, X, L, C, D, M (optionally overlined) or the digits 0-9")
}

// verbose reports whether the -v count enables category
func verbose(cmd *cobra.Command, category logger.OutputCategory) bool {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	return logger.ShouldOutput(verbosity, category)
}

// detail prints a verbose-only line to stderr, tagged with its category
func detail(cmd *cobra.Command, category logger.OutputCategory, format string, args ...interface{}) {
	if !verbose(cmd, category) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", logger.CategoryName(category), fmt.Sprintf(format, args...))
}
