package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
	"github.com/teranos/rome/numeral"
	"github.com/teranos/rome/render"
)

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step <value>",
		Short: "Increment or decrement a value, keeping its notation",
		Long: `Add one to (or, with --down, subtract one from) a Roman or Arabic value.

The result is written in the same notation as the input and never leaves
the supported range: stepping past either bound leaves the value unchanged.

Examples:
  rome step XIV              # XV
  rome step --down 1         # 1
  rome step --count 5 IX     # XIV
  rome step --down MV̅        # MMMCMXCIX`,
		Args: cobra.ExactArgs(1),
		RunE: runStep,
	}
	cmd.Flags().BoolP("down", "d", false, "Decrement instead of increment")
	cmd.Flags().IntP("count", "n", 1, "Number of steps")
	return cmd
}

func runStep(cmd *cobra.Command, args []string) error {
	down, _ := cmd.Flags().GetBool("down")
	count, _ := cmd.Flags().GetInt("count")
	if count < 0 {
		return errors.WithHint(errors.Newf("invalid --count %d", count), "use a count of zero or more")
	}

	input := render.CleanInput(args[0])
	if numeral.Classify(input) == numeral.Invalid {
		return unrecognized(args[0])
	}

	direction := render.Up
	if down {
		direction = render.Down
	}

	value := StepN(input, direction, count)
	logger.Debugw("Stepped value",
		logger.FieldInput, input,
		logger.FieldDirection, direction.String(),
		logger.FieldCount, count,
		logger.FieldValue, value)

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// StepN applies render.Step count times, stopping early at a range bound.
func StepN(input string, d render.Direction, count int) string {
	value := input
	for i := 0; i < count; i++ {
		next := render.Step(value, d)
		if next == value {
			break
		}
		value = next
	}
	return value
}
