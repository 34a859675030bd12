package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-qr-history/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldText          = "text"
	FieldSize          = "size"
	FieldImageFilename = "qr_code_image_filename"
	FieldImageBase64   = "qr_code_image_base64"
	FieldUserID        = "user_id"
)

// MaxTextLength is the byte capacity of a version 40 symbol at the lowest
// recovery level.
const MaxTextLength = 2953

var imageFilenamePattern = regexp.MustCompile(`^qr_code_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}\.\d{3}Z\.png$`)

type QRValidator struct {
}

func NewQRValidator() Validator {
	return &QRValidator{}
}

func (v *QRValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.QRRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.QRRequest:
		return v.validateRequest(ctx, *value, fields...)

	case models.QRUploadRecord:
		return v.validateUploadRecord(ctx, value, fields...)
	case *models.QRUploadRecord:
		return v.validateUploadRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *QRValidator) validateRequest(_ context.Context, req models.QRRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if err := validateText(req.Text); err != nil {
				return err
			}
		case FieldSize:
			if req.Width <= 0 || req.Height <= 0 {
				return fmt.Errorf("%w: %dx%d", ErrInvalidSize, req.Width, req.Height)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QRValidator) validateUploadRecord(_ context.Context, record models.QRUploadRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldImageFilename, FieldImageBase64, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if err := validateText(record.Text); err != nil {
				return err
			}
		case FieldImageFilename:
			if !imageFilenamePattern.MatchString(record.ImageFilename) {
				return fmt.Errorf("%w: %q", ErrInvalidFilename, record.ImageFilename)
			}
		case FieldImageBase64:
			if err := validateImage(record.ImageBase64); err != nil {
				return err
			}
		case FieldUserID:
			if record.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: %d bytes", ErrTextTooLong, len(text))
	}
	return nil
}

func validateImage(image string) error {
	if image == "" {
		return ErrInvalidImage
	}
	if strings.HasPrefix(image, "data:") {
		return ErrImageWithDataURL
	}
	if _, err := base64.StdEncoding.DecodeString(image); err != nil {
		return fmt.Errorf("%w: %v", ErrImageNotBase64, err)
	}
	return nil
}
