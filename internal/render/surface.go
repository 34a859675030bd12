package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

const dataURLPrefix = "data:image/png;base64,"

// qrSurface is the drawn result of one render.
type qrSurface struct {
	img    image.Image
	bitmap [][]bool
}

func (s *qrSurface) Image() image.Image {
	return s.img
}

func (s *qrSurface) Bitmap() [][]bool {
	return s.bitmap
}

func (s *qrSurface) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *qrSurface) EncodeBase64() (string, error) {
	raw, err := s.EncodePNG()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func (s *qrSurface) DataURL() (string, error) {
	encoded, err := s.EncodeBase64()
	if err != nil {
		return "", err
	}
	return dataURLPrefix + encoded, nil
}
