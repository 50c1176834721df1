package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/rome/display"
	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
	"github.com/teranos/rome/numeral"
)

// Conversion is the result of converting one input
type Conversion struct {
	Input  string         `json:"input" yaml:"input" toml:"input"`
	Format numeral.Notation `json:"format" yaml:"format" toml:"format"`
	Roman  string         `json:"roman,omitempty" yaml:"roman,omitempty" toml:"roman,omitempty"`
	Arabic int            `json:"arabic,omitempty" yaml:"arabic,omitempty" toml:"arabic,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	Hint   string         `json:"hint,omitempty" yaml:"hint,omitempty" toml:"hint,omitempty"`

	err error
}

// Err returns the conversion failure, if any
func (c Conversion) Err() error {
	return c.err
}

// Output returns the converted value in the notation opposite to the input
func (c Conversion) Output() string {
	if c.Format == numeral.Roman {
		return strconv.Itoa(c.Arabic)
	}
	return c.Roman
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [value...]",
		Short: "Convert Roman numerals to integers and back",
		Long: `Convert each value to the other notation.

Roman numerals (case-insensitive, vinculum overlines allowed) become
integers; integers become Roman numerals. With no arguments, values are
read from standard input, one per line.

Examples:
  rome convert XIV            # 14
  rome convert 1994           # MCMXCIV
  rome convert 4000           # MV̅
  rome convert XIV 42 --json
  seq 1 10 | rome convert`,
		RunE: runConvert,
	}
	addOutputFlags(cmd)
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readLines(cmd)
		if err != nil {
			return err
		}
	}

	results := make([]Conversion, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		c := Convert(input)
		detail(cmd, logger.OutputConversion, "%s is %s", input, c.Format)
		if c.Format == numeral.Roman {
			detail(cmd, logger.OutputNormalized, "%s normalized to %s", input, numeral.Normalize(input))
		}
		if c.err != nil {
			failed++
		}
		results = append(results, c)
	}

	format := outputFormat(cmd, cfg)
	if display.IsStructured(format) {
		if err := display.Write(cmd.OutOrStdout(), format, struct {
			Results []Conversion `json:"results" yaml:"results" toml:"results"`
		}{results}); err != nil {
			return err
		}
	} else {
		for _, c := range results {
			if c.err != nil {
				ReportError(cmd.ErrOrStderr(), c.err)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Output())
		}
	}

	if failed > 0 {
		return ErrSilent
	}
	return nil
}

// Convert classifies input and converts it to the other notation
func Convert(input string) Conversion {
	trimmed := strings.TrimSpace(input)
	c := Conversion{Input: input, Format: numeral.Classify(trimmed)}
	logger.Debugw("Classified input", logger.FieldInput, input, logger.FieldFormat, c.Format.String())

	var err error
	switch c.Format {
	case numeral.Roman:
		c.Arabic, err = numeral.Parse(trimmed)
		if err == nil {
			c.Roman, err = numeral.Format(c.Arabic)
		}
	case numeral.Arabic:
		c.Roman, err = numeral.FormatValue(trimmed)
		if err == nil {
			c.Arabic, err = numeral.Parse(c.Roman)
		}
	default:
		err = unrecognized(input)
	}
	if err != nil {
		c.Roman, c.Arabic = "", 0
		c.err = err
		c.Error, c.Hint = errorMessage(err)
		logger.Debugw("Conversion failed", logger.FieldInput, input, logger.FieldError, err)
	}
	return c
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read standard input")
	}
	return lines, nil
}
