// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidRequestBody is returned when a JSON body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrNoQRCode is returned when the container shows nothing.
	ErrNoQRCode = errors.New("no qr code is displayed")
)
