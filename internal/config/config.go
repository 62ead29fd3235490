// Package config loads the jsxcond configuration from file, env vars
// and defaults.
package config

import (
	"errors"

	"github.com/jsxcond/jsxcond/pkg/jsxcond"
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Tags   TagsConfig  `mapstructure:"tags"`
	Attrs  AttrsConfig `mapstructure:"attrs"`
	Coerce string      `mapstructure:"coerce"`
}

// TagsConfig names the pseudo-element tags the transform recognizes.
type TagsConfig struct {
	Condition string `mapstructure:"condition"`
	Switch    string `mapstructure:"switch"`
	Case      string `mapstructure:"case"`
}

// AttrsConfig names the pseudo-element attributes.
type AttrsConfig struct {
	Test         string `mapstructure:"test"`
	Else         string `mapstructure:"else"`
	ShortCircuit string `mapstructure:"short_circuit"`
}

// ErrTagCollision reports two pseudo-element roles configured with the
// same tag name.
var ErrTagCollision = errors.New("pseudo-element tags must be distinct")

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	tags := []string{c.Tags.Condition, c.Tags.Switch, c.Tags.Case}
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if seen[tag] {
			return ErrTagCollision
		}
		seen[tag] = true
	}
	return nil
}

// Options converts the configuration into engine options. Empty fields
// stay empty; the engine substitutes its defaults.
func (c *Config) Options() jsxcond.Options {
	return jsxcond.Options{
		ConditionTag:     c.Tags.Condition,
		SwitchTag:        c.Tags.Switch,
		CaseTag:          c.Tags.Case,
		TestAttr:         c.Attrs.Test,
		ElseAttr:         c.Attrs.Else,
		ShortCircuitAttr: c.Attrs.ShortCircuit,
		CoerceFunc:       c.Coerce,
	}
}
