// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the QR history server.
//
// [ServerAdapter] decouples the render-and-upload handler from the transport.
// The package ships an HTTP/JSON implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-history/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the QR history server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every following request.
	// An empty token disables the Authorization header.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// SaveQRHistory submits one history record. On a 2xx status the JSON
	// response body is decoded and returned. Any other status, a transport
	// failure or an undecodable body yields an error.
	SaveQRHistory(ctx context.Context, record models.QRUploadRecord) (models.QRHistoryResponse, error)
}
