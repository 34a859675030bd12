// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render draws QR codes into a display container.
//
// Rendering runs off the caller's goroutine. Instead of making callers guess
// how long drawing takes, Render hands back a [Completion] that is closed
// once the surface is in the container (or drawing failed).
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/MKhiriev/go-qr-history/internal/display"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/models"
	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
)

//go:generate mockgen -source=renderer.go -destination=../mock/renderer_mock.go -package=mock

// Renderer draws the QR code described by req into target.
type Renderer interface {
	Render(target display.Target, req models.QRRequest) *Completion
}

// QRRenderer renders with skip2/go-qrcode at a fixed recovery level.
type QRRenderer struct {
	level  qrcode.RecoveryLevel
	logger *logger.Logger
}

// NewQRRenderer returns a renderer for the named recovery level.
func NewQRRenderer(recoveryLevel string, logger *logger.Logger) (*QRRenderer, error) {
	level, err := ParseRecoveryLevel(recoveryLevel)
	if err != nil {
		return nil, err
	}

	return &QRRenderer{level: level, logger: logger}, nil
}

// ParseRecoveryLevel maps low, medium, high and highest to go-qrcode
// levels. Matching is case-insensitive.
func ParseRecoveryLevel(name string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low":
		return qrcode.Low, nil
	case "medium", "":
		return qrcode.Medium, nil
	case "high":
		return qrcode.High, nil
	case "highest":
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRecoveryLevel, name)
	}
}

// Render implements [Renderer]. Drawing happens on a new goroutine; the
// returned Completion reports when it is done.
func (r *QRRenderer) Render(target display.Target, req models.QRRequest) *Completion {
	c := newCompletion()

	go func() {
		surface, err := r.draw(req)
		if err != nil {
			r.logger.Error().Err(err).Int("text_len", len(req.Text)).Msg("qr render failed")
			c.finish(err)
			return
		}

		if !target.Draw(surface) {
			c.finish(ErrSuperseded)
			return
		}

		r.logger.Debug().
			Int("width", req.Width).
			Int("height", req.Height).
			Msg("qr rendered")
		c.finish(nil)
	}()

	return c
}

func (r *QRRenderer) draw(req models.QRRequest) (*qrSurface, error) {
	if req.Text == "" {
		return nil, ErrEmptyText
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, req.Width, req.Height)
	}

	side := min(req.Width, req.Height)

	q, err := r.encode(req.Text, false)
	if err != nil {
		return nil, err
	}

	// go-qrcode grows the image instead of dropping modules when the
	// symbol needs more pixels than asked for. Give up the quiet zone
	// first; a symbol that still does not fit keeps its native size.
	img := q.Image(side)
	if img.Bounds().Dx() > side {
		if q, err = r.encode(req.Text, true); err != nil {
			return nil, err
		}
		img = q.Image(side)
	}
	if n := img.Bounds().Dx(); n > side {
		r.logger.Warn().
			Int("symbol_px", n).
			Int("width", req.Width).
			Int("height", req.Height).
			Msg("qr symbol larger than render size")
	}

	// Modules stay square: the symbol is centered on a white canvas.
	if b := img.Bounds(); b.Dx() != req.Width || b.Dy() != req.Height {
		canvas := imaging.New(max(req.Width, b.Dx()), max(req.Height, b.Dy()), color.White)
		img = imaging.PasteCenter(canvas, img)
	}

	return &qrSurface{img: img, bitmap: q.Bitmap()}, nil
}

// encode builds a fresh symbol. A QRCode caches its symbol on first use, so
// toggling DisableBorder afterwards has no effect.
func (r *QRRenderer) encode(text string, noBorder bool) (*qrcode.QRCode, error) {
	q, err := qrcode.New(text, r.level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	q.DisableBorder = noBorder

	return q, nil
}
