package config

import (
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/teranos/rome/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := language.Parse(c.GetLocale()); err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "display.locale %q is not a valid language tag", c.Display.Locale),
			"use a BCP 47 tag such as en, de-CH or fr")
	}

	if !slices.Contains(DisplayModes, c.GetMode()) {
		return errors.Newf("display.mode must be one of %s, got %q",
			strings.Join(DisplayModes, ", "), c.Display.Mode)
	}

	if !slices.Contains(OutputFormats, c.GetFormat()) {
		return errors.Newf("output.format must be one of %s, got %q",
			strings.Join(OutputFormats, ", "), c.Output.Format)
	}

	// 0 = no debounce, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	if c.Watch.MaxRendersPerMinute < 0 {
		return errors.Newf("watch.max_renders_per_minute must be >= 0, got %d", c.Watch.MaxRendersPerMinute)
	}

	return nil
}
