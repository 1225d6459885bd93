package angle

import "errors"

// Sentinel errors returned by normalization, the sexagesimal codec and the
// string scanner. Call sites add context with fmt.Errorf and %w, so these
// match with errors.Is.
var (
	// ErrInvalidRange means a normalization range with lower >= upper, or
	// one that is neither symmetric about zero nor zero-based
	ErrInvalidRange = errors.New("invalid normalization range")

	// ErrInvalidSign means a sexagesimal sign other than +1 or -1
	ErrInvalidSign = errors.New("sign must be +1 or -1")

	// ErrConflictingSign means more than one part of a sexagesimal string
	// carried a negative sign
	ErrConflictingSign = errors.New("only one number can be negative")

	// ErrInvalidSexagesimal means the scanner could not read the string
	ErrInvalidSexagesimal = errors.New("invalid sexagesimal string")

	// ErrInvalidPosition means a position string without exactly 2 or 6
	// numbers
	ErrInvalidPosition = errors.New("position must contain either 2 or 6 numbers")
)
