package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/semtools/semmeta"
	"github.com/semtools/semmeta/internal/config"
	"github.com/semtools/semmeta/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				if !logging.ValidLevel(level) {
					c.configErr = fmt.Errorf("--log-level: unsupported value %q", level)
					return
				}
				cfg.Logging.Level = level
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// baseLogger returns the logger described by the loaded configuration. A
// logger that cannot be built falls back to a no-op logger.
func (c *commandContext) baseLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		c.logger = logging.NewNop()
		cfg, err := c.ensureConfig()
		if err != nil {
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			return
		}
		c.logger = logger
	})
	return c.logger
}

// extractSettings are the per-invocation overrides of the [extract] section.
type extractSettings struct {
	finalLine string
	encoding  string
	strict    bool
	workers   int
}

func (s *extractSettings) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.finalLine, "final-line", "", "Trailing line policy: synthesize or discard")
	cmd.Flags().StringVar(&s.encoding, "encoding", "", "Charset of the instrument text block")
	cmd.Flags().BoolVar(&s.strict, "strict", false, "Fail an image on any warning")
	cmd.Flags().IntVarP(&s.workers, "workers", "j", 0, "Images processed in parallel")
}

// extractOptions merges the configuration with command-line overrides.
func (c *commandContext) extractOptions(s extractSettings, logger *slog.Logger) ([]semmeta.Option, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	policyName := cfg.Extract.FinalLinePolicy
	if s.finalLine != "" {
		policyName = s.finalLine
	}
	policy, err := semmeta.ParseFinalLinePolicy(policyName)
	if err != nil {
		return nil, fmt.Errorf("--final-line: %w", err)
	}

	encoding := cfg.Extract.TextEncoding
	if s.encoding != "" {
		encoding = s.encoding
	}

	opts := []semmeta.Option{
		semmeta.WithFinalLinePolicy(policy),
		semmeta.WithTextEncoding(encoding),
		semmeta.WithInstrumentTag(semmeta.TagID(cfg.Extract.InstrumentTag)),
		semmeta.WithLogger(logger),
	}
	if cfg.Extract.Strict || s.strict {
		opts = append(opts, semmeta.WithStrictParsing())
	}
	workers := cfg.Extract.Workers
	if s.workers > 0 {
		workers = s.workers
	}
	if workers > 0 {
		opts = append(opts, semmeta.WithConcurrency(workers))
	}
	return opts, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
