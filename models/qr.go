// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default display size of a rendered QR code, in pixels.
const (
	DefaultQRWidth  = 180
	DefaultQRHeight = 180
)

// QRRequest describes a single render of text into the display container.
// It is created per invocation and discarded once drawing finishes.
type QRRequest struct {
	// Text is the content encoded into the QR symbol. Never empty.
	Text string

	// Width and Height are the exact pixel size of the produced surface.
	Width  int
	Height int
}

// QRUploadRecord is the history record sent to the server after a
// successful render. It is sent once, never retried and not kept locally.
type QRUploadRecord struct {
	// Text is the original input text.
	Text string `json:"text"`

	// ImageFilename has the form qr_code_<timestamp>.png.
	ImageFilename string `json:"qr_code_image_filename"`

	// ImageBase64 is the standard base64 encoding of the PNG bytes,
	// without a data URL prefix.
	ImageBase64 string `json:"qr_code_image_base64"`

	// UserID attributes the record to the current user.
	UserID int64 `json:"user_id"`
}

// QRHistoryResponse is the decoded JSON body returned by the history
// endpoint. The server owns its shape, so it is kept generic.
type QRHistoryResponse map[string]any
