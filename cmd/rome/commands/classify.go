package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/rome/display"
	"github.com/teranos/rome/numeral"
)

// Classification pairs an input with its format tag
type Classification struct {
	Input  string         `json:"input" yaml:"input" toml:"input"`
	Format numeral.Notation `json:"format" yaml:"format" toml:"format"`
}

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <text...>",
		Short: "Tell whether text is a Roman numeral, an integer, or neither",
		Long: `Print roman, arabic or invalid for every argument.

The check is lexical only: IIII is roman even though it does not convert.

Examples:
  rome classify XIV 42 hello   # roman, arabic, invalid`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}
	addOutputFlags(cmd)
	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results := make([]Classification, 0, len(args))
	for _, arg := range args {
		results = append(results, Classification{Input: arg, Format: numeral.Classify(arg)})
	}

	format := outputFormat(cmd, cfg)
	if display.IsStructured(format) {
		return display.Write(cmd.OutOrStdout(), format, struct {
			Results []Classification `json:"results" yaml:"results" toml:"results"`
		}{results})
	}

	for _, c := range results {
		if len(results) == 1 {
			fmt.Fprintln(cmd.OutOrStdout(), c.Format)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Input, c.Format)
	}
	return nil
}
