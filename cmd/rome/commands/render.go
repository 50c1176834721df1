package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/rome/display"
	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
	"github.com/teranos/rome/render"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a value in Roman or locale-formatted Arabic notation",
		Long: `Render a value given as --arabic or --roman.

With --mode auto (the default from display.mode) an Arabic source renders
as a Roman numeral and a Roman source renders as a locale-formatted
integer. Either source accepts the keywords min and max. A value that
cannot be read renders as "Not a number".

Examples:
  rome render --arabic 1994                 # MCMXCIV
  rome render --roman MV̅                    # 4,000
  rome render --roman MV̅ --locale de        # 4.000
  rome render --arabic max --mode arabic    # 3,999,999`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}
	cmd.Flags().String("arabic", "", "Arabic source value (or min/max)")
	cmd.Flags().String("roman", "", "Roman source value (or min/max)")
	cmd.Flags().StringP("mode", "m", "", "Render mode: auto, roman, arabic (default from display.mode)")
	cmd.Flags().StringP("locale", "l", "", "Locale for digit grouping (default from display.locale)")
	cmd.MarkFlagsMutuallyExclusive("arabic", "roman")
	addOutputFlags(cmd)
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	elem := render.Element{RenderNumber: cfg.GetMode()}
	elem.ArabicNumber, _ = cmd.Flags().GetString("arabic")
	elem.RomanNumber, _ = cmd.Flags().GetString("roman")
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		elem.RenderNumber = mode
	}

	locale := cfg.GetLocale()
	if l, _ := cmd.Flags().GetString("locale"); l != "" {
		locale = l
	}

	res, ok := render.Render(elem, locale)
	if !ok {
		return errors.WithHint(errors.New("nothing to render"), "pass --arabic or --roman")
	}
	logger.Debugw("Rendered element",
		logger.FieldMode, string(res.Mode),
		logger.FieldLocale, locale,
		logger.FieldValue, res.Text)

	format := outputFormat(cmd, cfg)
	if display.IsStructured(format) {
		return display.Write(cmd.OutOrStdout(), format, res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return nil
}
