package config

import (
	"github.com/cockroachdb/errors"

	"github.com/leetao/qqbot/internal/logging"
)

// ErrInvalidLogFormat indicates an unrecognized log format.
var ErrInvalidLogFormat = errors.New("invalid log format")

// Validate checks Settings for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(s *Settings) []error {
	if s == nil {
		return []error{errors.New("settings are nil")}
	}

	var errs []error

	switch logging.Format(s.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, errors.Wrapf(ErrInvalidLogFormat, "%q (valid: text, json)", s.LogFormat))
	}

	return errs
}
