// Package cfg holds the CLI-level configuration shared by petvet commands.
package cfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// Config adds petvet-specific configuration fields with the common
// RegisterFlags/Validate shape.
type Config struct {
	RulesFile  string
	JSONOutput bool
	Species    string
}

// RegisterFlags binds Config fields to the given FlagSet with defaults inline.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.RulesFile, "rules-file", "", "path to a YAML ruleset overriding the built-in triage tables")
	fs.BoolVar(&c.JSONOutput, "json", false, "print triage results as JSON")
	fs.StringVar(&c.Species, "species", "dog", "pet species used for wellness task suggestions")
}

// Validate checks all configuration fields for correctness.
// It returns an error if any field is invalid, or nil if all fields are valid.
func (c *Config) Validate() error {
	var errs []error

	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); err != nil {
			errs = append(errs, fmt.Errorf("rules file %q: %w", c.RulesFile, err))
		}
	}
	if c.Species == "" {
		errs = append(errs, errors.New("species must not be empty"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
