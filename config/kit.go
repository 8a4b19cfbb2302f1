package config

import (
	"fmt"
	"strings"

	"github.com/kbukum/obtkit/errors"
	"github.com/kbukum/obtkit/logger"
	"github.com/kbukum/obtkit/util"
	"github.com/kbukum/obtkit/validation"
)

// KitConfig contains the settings obtkit reads for an application.
type KitConfig struct {
	Name        string              `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string              `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config       `yaml:"logging" mapstructure:"logging"`
	BoolWords   map[string][]string `yaml:"bool_words" mapstructure:"bool_words" validate:"dive,min=2"`
}

// ApplyDefaults applies default values to the configuration.
func (c *KitConfig) ApplyDefaults(serviceName string) {
	c.Name = util.Coalesce(c.Name, serviceName)
	c.Environment = util.Coalesce(strings.ToLower(c.Environment), "development")
	c.Logging.ApplyDefaults()
}

// Validate checks struct tags, then the logging section's own rules.
func (c *KitConfig) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return errors.Wrapf(err, "config %q is invalid", c.Name)
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Wrap(err, "config.logging")
	}
	return nil
}

// Words returns the configured bool word tables keyed by language.
func (c *KitConfig) Words() (map[string]util.BoolWords, error) {
	out := make(map[string]util.BoolWords, len(c.BoolWords))
	for lang, options := range c.BoolWords {
		w, err := util.NewBoolWords(options)
		if err != nil {
			return nil, errors.Wrapf(err, "config.bool_words.%s", lang)
		}
		out[lang] = w
	}
	return out, nil
}

// Register publishes the configured bool word tables to util.
func (c *KitConfig) Register() error {
	words, err := c.Words()
	if err != nil {
		return err
	}
	for lang, w := range words {
		util.RegisterBoolWords(lang, w)
	}
	return nil
}

// Logger builds a logger from the logging section.
func (c *KitConfig) Logger() *logger.Logger {
	return logger.New(&c.Logging, c.Name)
}

func (c *KitConfig) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Environment)
}
