package service

import (
	"strings"
	"time"
)

const (
	qrImageFilenamePrefix = "qr_code_"
	qrImageFilenameExt    = ".png"

	// ISO-8601 in UTC with millisecond precision.
	isoMillisLayout = "2006-01-02T15:04:05.000Z"
)

// QRImageFilename names the snapshot uploaded at t, for example
// qr_code_2024-05-01T10-20-30.123Z.png. Colons are replaced so the name is
// safe on every filesystem.
func QRImageFilename(t time.Time) string {
	stamp := strings.ReplaceAll(t.UTC().Format(isoMillisLayout), ":", "-")
	return qrImageFilenamePrefix + stamp + qrImageFilenameExt
}
