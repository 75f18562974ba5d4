package model

import "errors"

// Common errors used across the application
var (
	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrUnknownPreset        = errors.New("unknown preset")
)
