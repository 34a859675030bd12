package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing history server address
	// or a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidRenderConfigs indicates a non-positive size or wait window,
	// or an unknown recovery level.
	ErrInvalidRenderConfigs = errors.New("invalid render configuration")
	// ErrInvalidAppConfigs indicates that no usable identity was given
	// (neither a positive user id nor a session token).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPreviewConfigs indicates an unparsable browser front end
	// address.
	ErrInvalidPreviewConfigs = errors.New("invalid preview configuration")
)
