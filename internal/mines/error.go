package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

type ConfigError struct {
	Params GameParams
	reason string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidConfiguration, e.reason, e.Params)
}

func (e ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
