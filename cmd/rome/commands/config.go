package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rome/config"
	"github.com/teranos/rome/display"
	"github.com/teranos/rome/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and manage rome configuration",
		Long: `Display and manage rome configuration settings.

Configuration sources (later overrides earlier):
1. Built-in defaults
2. System config (/etc/rome/config.toml)
3. User config (~/.rome/config.toml)
4. Project config (./rome.toml, searched up directories)
5. Environment variables (ROME_* prefix, e.g. ROME_DISPLAY_LOCALE=de)

Examples:
  rome config show                   # Show current configuration
  rome config show --format json     # Show configuration in JSON format
  rome config get display.locale     # Get specific config value
  rome config set display.locale de  # Persist a value in the user config
  rome config validate               # Validate current configuration
  rome config where                  # Show which files are loaded`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the merged rome configuration from all sources",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	show.Flags().String("format", display.FormatTOML, "Output format: toml, json, yaml")

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., display.locale, watch.debounce_ms)",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a configuration value in the user config",
		Long: `Write a value to ~/.rome/config.toml.

The value is converted to the type of the setting and the resulting file is
validated before it is written. The previous file is kept as a rotating
backup (config.toml.back1 .. back3).`,
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigValidate,
	}

	where := &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long: `Show the configuration cascade and which files were checked.

Lists all configuration sources in order of precedence, showing
which files exist and which are missing.`,
		Args: cobra.NoArgs,
		RunE: runConfigWhere,
	}

	cmd.AddCommand(show, get, set, validate, where)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format, _ := cmd.Flags().GetString("format")
	if !display.IsStructured(format) {
		return errors.WithHint(errors.Newf("unsupported format: %s", format), "supported: toml, json, yaml")
	}
	if format != display.FormatJSON {
		fmt.Fprintln(cmd.OutOrStdout(), "# rome configuration")
	}
	return display.Write(cmd.OutOrStdout(), format, cfg)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])

	v, err := config.GetViper()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if !v.IsSet(key) {
		return errors.WithHint(errors.Newf("configuration key %q not found", key),
			"run 'rome config show' to list every key")
	}

	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path, err := config.SetUserValue(args[0], args[1])
	if err != nil {
		return err
	}
	config.Reset()

	pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln("Set %s = %s in %s", strings.ToLower(args[0]), args[1], path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	reports, err := config.CheckLoadedFiles()
	if err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	for _, report := range reports {
		for _, key := range report.UnknownKeys {
			pterm.Warning.WithWriter(cmd.ErrOrStderr()).Printfln("%s: unknown key %s is ignored", report.Path, key)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	for i, src := range config.Sources() {
		fmt.Fprintf(out, "  %d. %-10s %s\n", i+2, "["+string(src.Kind)+"]", describeSource(src))
	}

	env := envOverrides()
	fmt.Fprintf(out, "  %d. %-10s %s\n", len(config.Sources())+2, "["+string(config.SourceEnv)+"]", describeEnv(env))
	for _, kv := range env {
		fmt.Fprintf(out, "       %s\n", kv)
	}
	return nil
}

func describeSource(src config.Source) string {
	switch {
	case src.Path == "":
		return "(no " + config.ProjectConfigName + " found)"
	case src.Exists:
		return src.Path + " ✓"
	default:
		return src.Path + " (missing)"
	}
}

func describeEnv(env []string) string {
	if len(env) == 0 {
		return config.EnvPrefix + "_* environment variables (none set)"
	}
	return fmt.Sprintf("%s_* environment variables (%d set)", config.EnvPrefix, len(env))
}

// envOverrides returns the ROME_* variables currently set, sorted
func envOverrides() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, config.EnvPrefix+"_") {
			env = append(env, kv)
		}
	}
	sort.Strings(env)
	return env
}
