package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrRenderSurfaceNotFound = errors.New("qr render surface not found")
	ErrNoRenderer            = errors.New("renderer returned no completion")
)
