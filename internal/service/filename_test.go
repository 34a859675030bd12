package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQRImageFilename(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "utc with millis",
			at:   time.Date(2024, time.May, 1, 10, 20, 30, 123_000_000, time.UTC),
			want: "qr_code_2024-05-01T10-20-30.123Z.png",
		},
		{
			name: "zero millis are kept",
			at:   time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC),
			want: "qr_code_2025-01-02T03-04-05.000Z.png",
		},
		{
			name: "sub-millisecond precision is truncated",
			at:   time.Date(2025, time.January, 2, 3, 4, 5, 999_999_999, time.UTC),
			want: "qr_code_2025-01-02T03-04-05.999Z.png",
		},
		{
			name: "local time is converted to utc",
			at:   time.Date(2024, time.May, 1, 13, 20, 30, 0, time.FixedZone("MSK", 3*60*60)),
			want: "qr_code_2024-05-01T10-20-30.000Z.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QRImageFilename(tt.at)

			assert.Equal(t, tt.want, got)
			assert.Regexp(t, filenamePattern, got)
			assert.False(t, strings.Contains(got, ":"))
			assert.True(t, strings.HasSuffix(got, ".png"))
		})
	}
}
