// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-qr-history/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	info = info.WithDefaults()

	var b strings.Builder

	b.WriteString("Название приложения: go-qr-history\n")
	b.WriteString("Версия: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.BuildCommit())

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
