package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/rome/config"
	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
	"github.com/teranos/rome/observe"
	"github.com/teranos/rome/render"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Describe every line of a file, again on each change",
		Long: `Print a status line for each non-empty line of a file and repeat
whenever the file is saved, until interrupted.

Each line is cleaned the same way an interactive input is: everything
except Roman letters, digits and the overline is dropped. Edits to the
user config file (~/.rome/config.toml) are picked up too, so changing
display.locale re-renders with the new grouping.

Examples:
  rome watch numbers.txt
  rome watch --once numbers.txt     # render once and exit
  rome watch --debounce 50ms numbers.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
	cmd.Flags().Bool("once", false, "Render once and exit")
	cmd.Flags().Duration("debounce", 0, "Quiet period before re-rendering (default from watch.debounce_ms)")
	cmd.Flags().StringP("locale", "l", "", "Locale for digit grouping (default from display.locale)")
	return cmd
}

// fileRenderer renders one file; the locale may change while watching
type fileRenderer struct {
	path string
	out  io.Writer
	cmd  *cobra.Command

	mu     sync.Mutex
	locale string
}

func (r *fileRenderer) setLocale(locale string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locale = locale
}

// render is an observe.ChangeCallback
func (r *fileRenderer) render(string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	detail(r.cmd, logger.OutputWatchEvent, "rendering %s (locale %s)", r.path, r.locale)
	if verbose(r.cmd, logger.OutputDataDump) {
		if data, err := os.ReadFile(r.path); err == nil {
			detail(r.cmd, logger.OutputDataDump, "%q", data)
		}
	}
	lines, err := DescribeFile(r.path, r.locale)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	locale := cfg.GetLocale()
	if l, _ := cmd.Flags().GetString("locale"); l != "" {
		locale = l
	}
	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	if f := cmd.Flags().Lookup("debounce"); f != nil && f.Changed {
		debounce, _ = cmd.Flags().GetDuration("debounce")
	}

	r := &fileRenderer{path: args[0], out: cmd.OutOrStdout(), cmd: cmd, locale: locale}
	if err := r.render(r.path); err != nil {
		return err
	}
	if once, _ := cmd.Flags().GetBool("once"); once {
		return nil
	}

	fileWatcher, err := observe.New(r.path,
		observe.WithDebounce(debounce),
		observe.WithRateLimit(cfg.Watch.MaxRendersPerMinute))
	if err != nil {
		return err
	}
	fileWatcher.OnChange(r.render)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// An explicit --locale pins the locale; otherwise follow the user config.
	if !cmd.Flags().Changed("locale") {
		if configWatcher := watchUserConfig(r); configWatcher != nil {
			go func() {
				if err := configWatcher.Start(ctx); err != nil {
					logger.Warnw("Config watcher stopped", logger.FieldError, err)
				}
			}()
			defer configWatcher.Stop()
		}
	}

	pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln("Watching %s (Ctrl+C to stop)", fileWatcher.Path())
	return fileWatcher.Start(ctx)
}

// watchUserConfig returns a watcher that reloads the locale when the user
// config file changes, or nil when there is no user config directory.
func watchUserConfig(r *fileRenderer) *observe.Watcher {
	path := config.UserConfigPath()
	if path == "" {
		return nil
	}
	w, err := observe.New(path, observe.WithIgnore(config.IsBackupFile))
	if err != nil {
		logger.Debugw("Not watching user config", logger.FieldFile, path, logger.FieldError, err)
		return nil
	}
	w.OnChange(func(string) error {
		config.Reset()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger.Infow("Config changed, re-rendering", logger.FieldLocale, cfg.GetLocale())
		r.setLocale(cfg.GetLocale())
		return r.render(r.path)
	})
	return w
}

// DescribeFile returns render.Describe for every non-empty line of path
func DescribeFile(path, locale string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%s\t%s", line, render.Describe(render.CleanInput(line), locale)))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return out, nil
}
