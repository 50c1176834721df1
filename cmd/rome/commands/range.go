package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/rome/display"
	"github.com/teranos/rome/numeral"
)

// Bounds is the supported range in both notations
type Bounds struct {
	Min      int    `json:"min" yaml:"min" toml:"min"`
	Max      int    `json:"max" yaml:"max" toml:"max"`
	MinRoman string `json:"min_roman" yaml:"min_roman" toml:"min_roman"`
	MaxRoman string `json:"max_roman" yaml:"max_roman" toml:"max_roman"`
}

func newRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Show the smallest and largest convertible values",
		Long: `Show the inclusive range of values rome converts.

Values above 3999 use vinculum notation: an overline (U+0305) after a
letter multiplies it by 1000.

Examples:
  rome range            # 1 3999999
  rome range --roman    # I M̅M̅M̅C̅M̅X̅C̅MX̅CMXCIX`,
		Args: cobra.NoArgs,
		RunE: runRange,
	}
	cmd.Flags().BoolP("roman", "r", false, "Print the bounds as Roman numerals")
	addOutputFlags(cmd)
	return cmd
}

func runRange(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lo, hi := numeral.Range()
	bounds := Bounds{Min: lo, Max: hi, MinRoman: numeral.MinNumeral(), MaxRoman: numeral.MaxNumeral()}

	format := outputFormat(cmd, cfg)
	if display.IsStructured(format) {
		return display.Write(cmd.OutOrStdout(), format, bounds)
	}

	if roman, _ := cmd.Flags().GetBool("roman"); roman {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bounds.MinRoman, bounds.MaxRoman)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", bounds.Min, bounds.Max)
	return nil
}
