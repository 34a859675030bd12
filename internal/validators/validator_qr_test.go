// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-qr-history/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRecord() models.QRUploadRecord {
	return models.QRUploadRecord{
		Text:          "hello",
		ImageFilename: "qr_code_2024-05-01T10-20-30.123Z.png",
		ImageBase64:   "iVBORw0KGgo=",
		UserID:        1,
	}
}

func TestNewQRValidator(t *testing.T) {
	v := NewQRValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewQRValidator()
	ctx := context.Background()

	rec := validRecord()
	req := models.QRRequest{Text: "hello", Width: 180, Height: 180}

	assert.NoError(t, v.Validate(ctx, rec))
	assert.NoError(t, v.Validate(ctx, &rec))
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.ErrorIs(t, v.Validate(ctx, "hello"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// QRUploadRecord
// ---------------------------------------------------------------------------

func TestValidate_UploadRecord(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.QRUploadRecord)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.QRUploadRecord) {}},
		{name: "blank text", mutate: func(r *models.QRUploadRecord) { r.Text = "  " }, wantErr: ErrEmptyText},
		{name: "text too long", mutate: func(r *models.QRUploadRecord) { r.Text = strings.Repeat("a", MaxTextLength+1) }, wantErr: ErrTextTooLong},
		{name: "filename with colons", mutate: func(r *models.QRUploadRecord) { r.ImageFilename = "qr_code_2024-05-01T10:20:30.123Z.png" }, wantErr: ErrInvalidFilename},
		{name: "filename wrong ext", mutate: func(r *models.QRUploadRecord) { r.ImageFilename = "qr_code_2024-05-01T10-20-30.123Z.jpg" }, wantErr: ErrInvalidFilename},
		{name: "empty image", mutate: func(r *models.QRUploadRecord) { r.ImageBase64 = "" }, wantErr: ErrInvalidImage},
		{name: "data url image", mutate: func(r *models.QRUploadRecord) { r.ImageBase64 = "data:image/png;base64,iVBORw0KGgo=" }, wantErr: ErrImageWithDataURL},
		{name: "not base64", mutate: func(r *models.QRUploadRecord) { r.ImageBase64 = "%%%" }, wantErr: ErrImageNotBase64},
		{name: "zero user", mutate: func(r *models.QRUploadRecord) { r.UserID = 0 }, wantErr: ErrInvalidUserID},
		{
			name:   "scoped to user id ignores bad image",
			mutate: func(r *models.QRUploadRecord) { r.ImageBase64 = "" },
			fields: []string{FieldUserID},
		},
		{name: "unknown field", mutate: func(*models.QRUploadRecord) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	v := NewQRValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := v.Validate(context.Background(), rec, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// QRRequest
// ---------------------------------------------------------------------------

func TestValidate_Request(t *testing.T) {
	tests := []struct {
		name    string
		req     models.QRRequest
		wantErr error
	}{
		{name: "valid", req: models.QRRequest{Text: "x", Width: 1, Height: 1}},
		{name: "empty text", req: models.QRRequest{Width: 180, Height: 180}, wantErr: ErrEmptyText},
		{name: "zero width", req: models.QRRequest{Text: "x", Height: 180}, wantErr: ErrInvalidSize},
		{name: "negative height", req: models.QRRequest{Text: "x", Width: 180, Height: -1}, wantErr: ErrInvalidSize},
	}

	v := NewQRValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
