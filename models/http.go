// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerateRequest is the body of POST /api/qr/generate on the browser front end.
type GenerateRequest struct {
	Text string `json:"text"`
}

// GenerateResponse reports the state of the display container after a
// generate call.
type GenerateResponse struct {
	// Visible mirrors the container visibility.
	Visible bool `json:"visible"`

	// Image is the rendered surface as a data URL, empty when hidden.
	Image string `json:"image,omitempty"`
}
