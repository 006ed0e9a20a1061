package config

import (
	"fmt"

	"github.com/docker/go-units"

	"github.com/modoterra/stampline/pkg/processor"
	"github.com/modoterra/stampline/pkg/stamp"
)

// MaxLineLimit caps max_line so a single line cannot exhaust memory.
const MaxLineLimit = 1 << 30

// Validate checks the configuration for correctness.
func Validate(c *Config) []error {
	var errs []error

	if n, err := c.MaxLineBytes(); err != nil {
		errs = append(errs, err)
	} else if n <= 0 {
		errs = append(errs, fmt.Errorf("max_line must be positive, got %q", c.MaxLine))
	} else if n > MaxLineLimit {
		errs = append(errs, fmt.Errorf("max_line must be at most %s, got %q", units.BytesSize(MaxLineLimit), c.MaxLine))
	}

	if _, err := processor.ParseOverlong(c.Overlong); err != nil {
		errs = append(errs, err)
	}

	if _, err := stamp.ParseColorMode(c.Color); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errs
}
