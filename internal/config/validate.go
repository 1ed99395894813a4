package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/semtools/semmeta/internal/instrument"
	"github.com/semtools/semmeta/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateExtract(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateView(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateExtract() error {
	if _, err := instrument.ParseFinalLinePolicy(c.Extract.FinalLinePolicy); err != nil {
		return fmt.Errorf("extract.final_line_policy: %w", err)
	}
	if _, err := instrument.LookupEncoding(c.Extract.TextEncoding); err != nil {
		return fmt.Errorf("extract.text_encoding: %w", err)
	}
	if c.Extract.InstrumentTag < 1 || c.Extract.InstrumentTag > math.MaxUint16 {
		return fmt.Errorf("extract.instrument_tag: %d is not a valid tag id", c.Extract.InstrumentTag)
	}
	if c.Extract.Workers < 0 {
		return errors.New("extract.workers must be zero (auto) or positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !strings.HasSuffix(c.Output.Suffix, ".json") {
		return fmt.Errorf("output.suffix: %q must end with .json", c.Output.Suffix)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 16 {
		return fmt.Errorf("output.indent: %d must be between 0 and 16", c.Output.Indent)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateView() error {
	if c.View.FallbackLimit < 0 {
		return errors.New("view.fallback_limit must be zero or positive")
	}
	return nil
}
