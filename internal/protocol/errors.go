package protocol

import "errors"

// Validation errors. All are detected before any frame byte is computed;
// callers can match them with errors.Is.
var (
	// ErrInvalidMode reports an unrecognized mode tag.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidTemperature reports a temperature outside [TempMin, TempMax]
	// for a mode that requires one.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidFanSpeed reports a fan speed outside the mode's allowed set.
	ErrInvalidFanSpeed = errors.New("invalid fan speed")
)
