package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateExceptions(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "auto", "table", "json":
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q (want auto, table or json)", c.Output.Format)
	}
}

func (c *Config) validateLibrary() error {
	if c.Library.Workers > 64 {
		return fmt.Errorf("library.workers: %d exceeds the limit of 64", c.Library.Workers)
	}
	if len(c.Library.Extensions) == 0 {
		return errors.New("library.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateExceptions() error {
	for i, ex := range c.Exceptions {
		switch {
		case ex.Title == "":
			return fmt.Errorf("exceptions[%d].title must be set", i)
		case ex.Field == "":
			return fmt.Errorf("exceptions[%d].field must be set", i)
		case ex.Corrected == "":
			return fmt.Errorf("exceptions[%d].corrected must be set", i)
		}
	}
	return nil
}
