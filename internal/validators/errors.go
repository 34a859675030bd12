package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText        = errors.New("text is required")
	ErrInvalidSize      = errors.New("invalid qr size")
	ErrInvalidFilename  = errors.New("invalid qr image filename")
	ErrInvalidImage     = errors.New("invalid qr image")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrTextTooLong      = errors.New("text does not fit into a qr code")
	ErrImageNotBase64   = errors.New("qr image is not base64")
	ErrImageWithDataURL = errors.New("qr image must not carry a data URL prefix")
)
