package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/rome/config"
	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
)

// NewRootCmd assembles the rome command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rome",
		Short: "rome - Roman numeral converter with vinculum notation",
		Long: `rome converts between Roman numerals and integers from 1 to 3,999,999.

Values above 3999 use vinculum notation: an overline (U+0305) after a
letter multiplies it by 1000, so MV̅ is 4000 and M̅ is 1,000,000.

Available commands:
  convert  - Convert values between Roman and Arabic notation
  classify - Tell Roman numerals, integers and other text apart
  range    - Show the supported range
  step     - Increment or decrement a value in its own notation
  render   - Render a value for display (locale-aware)
  watch    - Describe the lines of a file whenever it changes
  config   - Manage rome configuration

Examples:
  rome convert MCMXCIV          # 1994
  rome convert 4000             # MV̅
  rome render --roman M̅ -l de   # 1.000.000
  rome step --down MV̅           # MMMCMXCIX`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			cfg, err := loadConfig()
			if err != nil {
				// config and version stay usable with a broken config
				if cmd.Name() == "version" || (cmd.Parent() != nil && cmd.Parent().Name() == "config") {
					return initLogger(false, verbosity)
				}
				return err
			}
			if err := initLogger(cfg.Log.JSON, verbosity); err != nil {
				return err
			}
			detail(cmd, logger.OutputConfig, "verbosity %s", logger.LevelName(verbosity))
			if files := config.LoadedFiles(); len(files) > 0 {
				detail(cmd, logger.OutputConfig, "loaded %s", strings.Join(files, ", "))
			} else {
				detail(cmd, logger.OutputConfig, "no config files, using defaults")
			}
			return nil
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newRangeCmd())
	root.AddCommand(newStepCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func initLogger(jsonOutput bool, verbosity int) error {
	if err := logger.Initialize(jsonOutput, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	return nil
}
