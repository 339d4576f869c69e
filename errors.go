package colorcube

import "errors"

// Sentinel errors for the colorcube package.
var (
	// Construction errors
	ErrInvalidSize   = errors.New("colorcube: invalid cube size")
	ErrInvalidLength = errors.New("colorcube: invalid facelet data length")

	// Parsing errors
	ErrInvalidNotation = errors.New("colorcube: invalid move notation")
	ErrInvalidColor    = errors.New("colorcube: invalid color code")

	// Scramble errors
	ErrInvalidCount = errors.New("colorcube: invalid rotation count")
)
