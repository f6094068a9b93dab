package config

import "errors"

var (
	// ErrInvalidConfig is returned by Validate for out-of-range settings.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownRelation is returned for a relation label that cannot be parsed.
	ErrUnknownRelation = errors.New("config: unknown relation")
)
