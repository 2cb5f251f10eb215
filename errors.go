package fumosay

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a configuration value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrFileNotFound indicates the message file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileRead indicates the message file exists but could not be read
	// or is not valid UTF-8.
	ErrFileRead = errors.New("error reading file")
)
