package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: выход")

	return b.String()
}

// renderQRBitmap draws two module rows per text line with half blocks.
func renderQRBitmap(bitmap [][]bool) string {
	if len(bitmap) == 0 {
		return ""
	}

	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		top := bitmap[y]
		var bottom []bool
		if y+1 < len(bitmap) {
			bottom = bitmap[y+1]
		}

		for x := range top {
			upper := top[x]
			lower := x < len(bottom) && bottom[x]
			switch {
			case upper && lower:
				b.WriteString("█")
			case upper:
				b.WriteString("▀")
			case lower:
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		if y+2 < len(bitmap) {
			b.WriteString("\n")
		}
	}

	return b.String()
}
