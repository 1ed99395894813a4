package config

import (
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeExtract()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeView()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeExtract() {
	c.Extract.FinalLinePolicy = strings.ToLower(strings.TrimSpace(c.Extract.FinalLinePolicy))
	if c.Extract.FinalLinePolicy == "" {
		c.Extract.FinalLinePolicy = defaultFinalLinePolicy
	}
	c.Extract.TextEncoding = strings.ToLower(strings.TrimSpace(c.Extract.TextEncoding))
	if c.Extract.TextEncoding == "" {
		c.Extract.TextEncoding = defaultTextEncoding
	}
	if c.Extract.InstrumentTag == 0 {
		c.Extract.InstrumentTag = defaultInstrumentTag
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Output.Dir = strings.TrimSpace(c.Output.Dir); c.Output.Dir != "" {
		if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
			return err
		}
	}
	c.Index.Path = strings.TrimSpace(c.Index.Path)
	if c.Index.Path == "" {
		c.Index.Path = defaultIndexPath()
	}
	if c.Index.Path, err = expandPath(c.Index.Path); err != nil {
		return err
	}
	c.Output.Suffix = strings.TrimSpace(c.Output.Suffix)
	if c.Output.Suffix == "" {
		c.Output.Suffix = defaultSuffix
	}
	return nil
}

func (c *Config) normalizeView() {
	features := c.View.Features[:0]
	for _, f := range c.View.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	c.View.Features = features
	if len(c.View.Features) == 0 {
		c.View.Features = append([]string(nil), DefaultFeatures...)
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
