package config

import "errors"

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("invalid settings")
