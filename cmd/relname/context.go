package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"relname/internal/catalog"
	"relname/internal/config"
	"relname/internal/logging"
	"relname/internal/release"
	"relname/internal/store"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
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
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the logger once, writing console lines to stderr.
func (c *commandContext) ensureLogger(stderr io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, stderr)
	})
	return c.logger, c.loggerErr
}

// parser returns a parser whose catalogue includes configured exceptions.
func (c *commandContext) parser(cmd *cobra.Command) (*release.Parser, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	cat := catalog.Default()
	if len(cfg.Exceptions) > 0 {
		records := make([]catalog.ExceptionRecord, 0, len(cfg.Exceptions))
		for _, ex := range cfg.Exceptions {
			records = append(records, catalog.ExceptionRecord{
				Title:     ex.Title,
				Field:     ex.Field,
				Value:     ex.Value,
				Corrected: ex.Corrected,
			})
		}
		if cat, err = cat.WithExceptions(records...); err != nil {
			return nil, fmt.Errorf("configured exceptions: %w", err)
		}
	}
	return release.NewParser(cat, logger), nil
}

func (c *commandContext) parseOptions() release.Options {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		return release.DefaultOptions()
	}
	return release.Options{
		Standardise:   cfg.Parse.Standardise,
		CoherentTypes: cfg.Parse.CoherentTypes,
	}
}

func (c *commandContext) withStore(fn func(*config.Config, *store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open library index: %w", err)
	}
	defer st.Close()
	return fn(cfg, st)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
