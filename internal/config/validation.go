package config

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/seacanal/pattern"
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Search.MaxLength < 0 {
		return fmt.Errorf("%w: search.max_length must be ≥ 0, got %d", ErrInvalidConfig, c.Search.MaxLength)
	}
	if c.Search.Parallelism < 0 {
		return fmt.Errorf("%w: search.parallelism must be ≥ 0, got %d", ErrInvalidConfig, c.Search.Parallelism)
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	if f := c.Logging.Format; f != "text" && f != "json" && f != "" {
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, f)
	}
	if _, err := c.Relations(); err != nil {
		return err
	}
	return nil
}

// relationPattern matches "^k", "root k" and "%m".
var relationPattern = regexp.MustCompile(`^\s*(?:\^(\d+)|root\s+(\d+)|%(-?\d+))\s*$`)

// Relations parses search.relations into custom relations, in order.
// A relation listed twice (e.g. in the file and again on the command line)
// is registered once.
func (c *Config) Relations() ([]*pattern.Relation, error) {
	rels := make([]*pattern.Relation, 0, len(c.Search.Relations))
	seen := make(map[string]bool, len(c.Search.Relations))
	for _, label := range c.Search.Relations {
		r, err := ParseRelation(label)
		if err != nil {
			return nil, err
		}
		if seen[r.Label()] {
			continue
		}
		seen[r.Label()] = true
		rels = append(rels, r)
	}
	return rels, nil
}

// ParseRelation turns a label such as "^4", "root 4" or "%3" into a relation.
func ParseRelation(label string) (*pattern.Relation, error) {
	m := relationPattern.FindStringSubmatch(label)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRelation, label)
	}

	switch {
	case m[1] != "" || m[2] != "":
		digits := m[1] + m[2]
		k, err := strconv.Atoi(digits)
		if err != nil || k < 2 {
			return nil, fmt.Errorf("%w: exponent in %q must be ≥ 2", ErrUnknownRelation, label)
		}
		if m[1] != "" {
			return pattern.Power(k), nil
		}
		return pattern.Root(k), nil
	default:
		mod, err := strconv.ParseInt(m[3], 10, 64)
		if err != nil || mod == 0 {
			return nil, fmt.Errorf("%w: modulus in %q must be non-zero", ErrUnknownRelation, label)
		}
		return pattern.Modulo(mod), nil
	}
}
