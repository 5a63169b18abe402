package affordance

import "errors"

var (
	// ErrInvalidState is returned for a StateIndex outside [0, StateCount).
	// It indicates a programming error in the caller.
	ErrInvalidState = errors.New("affordance: invalid state index")

	// ErrMissingConfiguration is returned by Enable when a receiver lacks a
	// provider, theme or sink. The receiver stays disabled.
	ErrMissingConfiguration = errors.New("affordance: missing configuration")

	// ErrThemeAsset is returned when a theme document cannot be decoded or
	// fails validation.
	ErrThemeAsset = errors.New("affordance: invalid theme asset")
)
