// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// browser front end handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as a generate request.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoQRCode is returned when the QR image is requested while the
	// display container is hidden or empty.
	MsgNoQRCode = "no qr code is displayed"

	// MsgRenderFailed is returned when the QR code could not be drawn from
	// the submitted text.
	MsgRenderFailed = "qr code could not be rendered"

	// MsgTextTooLong is returned when the submitted text does not fit into
	// a QR code.
	MsgTextTooLong = "text does not fit into a qr code"

	// MsgRenderSuperseded is returned when a newer generate request replaced
	// the render this request was waiting for.
	MsgRenderSuperseded = "qr code was replaced by a newer request"

	// MsgRenderTimeout is returned when the render did not finish before
	// the request deadline.
	MsgRenderTimeout = "qr code rendering timed out"
)
