package sectionstore

import "errors"

var (
	// ErrMissingOption is returned when a key is not present in a section.
	ErrMissingOption = errors.New("option not found")

	// ErrMissingSection is returned by operations that need an existing section.
	ErrMissingSection = errors.New("section not found")

	// ErrSectionNameNotAllowed is returned for section names the INI format
	// reserves or cannot represent.
	ErrSectionNameNotAllowed = errors.New("section name not allowed")

	// ErrInvalidKey is returned for empty or multi-line key names.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidThreshold is returned when a fuzzy search threshold is
	// outside [0, 1].
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

	// ErrInterpolationSyntax is returned by Set for a "%(" reference that is
	// not closed by ")s".
	ErrInterpolationSyntax = errors.New("bad interpolation syntax")

	// ErrInterpolationMissing is returned when a reference names an unknown key.
	ErrInterpolationMissing = errors.New("interpolation reference not found")

	// ErrInterpolationDepth is returned when references nest too deeply,
	// which includes reference cycles.
	ErrInterpolationDepth = errors.New("interpolation too deep")
)
